package interp

import (
	"math"

	"github.com/vektorraum/gospline"
)

// degreeZeroSpline builds the single-point, degree-0 spline that spec §4.6
// falls back to when only one (or one unique) sample point is given.
func degreeZeroSpline(point []float64) (*gospline.Spline, error) {
	return gospline.NewWithControlPoints(1, len(point), 0, gospline.BezierStyle, point)
}

// dedupeConsecutive collapses runs of consecutive points within epsilon of
// one another down to their first member, per spec §4.6's Catmull-Rom
// deduplication step.
func dedupeConsecutive(points [][]float64, epsilon float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && tupleDistance(out[len(out)-1], p) <= epsilon {
			continue
		}
		out = append(out, p)
	}
	return out
}

func tupleDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
