package interp

import (
	"fmt"
	"math"

	"github.com/vektorraum/gospline"
)

// InterpolateCatmullRom builds a degree-3 spline passing through every
// (deduplicated) point in points via a Catmull-Rom-to-Bézier conversion,
// parametrized by alpha: 0 is the classical uniform Catmull-Rom, 0.5 is
// centripetal (recommended — avoids cusps and self-intersections on
// unevenly spaced points), 1 is chordal.
//
// Consecutive points within epsilon of one another are first collapsed to
// their first member. If only one unique point remains, the result is a
// degree-0 spline holding that point.
//
// first and last, if non-nil, are used directly as the phantom points
// before the first and after the last (deduplicated) sample, overriding
// the default linear extrapolation 2*near-far; this lets a caller pin the
// tangent at an open curve's ends.
//
// Fails with ErrNumPoints if no points are given, or ErrLCtrlpDimMismatch
// if the points disagree on dimension.
func InterpolateCatmullRom(points [][]float64, alpha float64, first, last []float64, epsilon float64) (*gospline.Spline, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: need at least 1 point to interpolate, got 0", gospline.ErrNumPoints)
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("%w: point %d has %d coordinate(s), want %d", gospline.ErrLCtrlpDimMismatch, i, len(p), d)
		}
	}

	points = dedupeConsecutive(points, epsilon)
	if len(points) == 1 {
		return degreeZeroSpline(points[0])
	}
	m := len(points)

	extended := make([][]float64, m+2)
	if first != nil {
		extended[0] = first
	} else {
		extended[0] = phantom(points[0], points[1], d)
	}
	copy(extended[1:m+1], points)
	if last != nil {
		extended[m+1] = last
	} else {
		extended[m+1] = phantom(points[m-1], points[m-2], d)
	}

	t := make([]float64, m+2)
	for k := 1; k < len(extended); k++ {
		step := chordStep(extended[k], extended[k-1], alpha)
		t[k] = t[k-1] + step
	}

	ctrlp := make([]float64, 0, (3*(m-1)+1)*d)
	for i := 0; i < m-1; i++ {
		j := i + 1 // extended-index of points[i]
		p0, p1, p2, p3 := extended[j-1], extended[j], extended[j+1], extended[j+2]
		t0, t1, t2, t3 := t[j-1], t[j], t[j+1], t[j+2]
		d1, d2, d3 := t1-t0, t2-t1, t3-t2

		b1 := make([]float64, d)
		b2 := make([]float64, d)
		for c := 0; c < d; c++ {
			if d1+d2 > 0 {
				b1[c] = p1[c] + (p2[c]-p0[c])*d2/(3*(d1+d2))
			} else {
				b1[c] = p1[c]
			}
			if d2+d3 > 0 {
				b2[c] = p2[c] - (p3[c]-p1[c])*d2/(3*(d2+d3))
			} else {
				b2[c] = p2[c]
			}
		}
		if i == 0 {
			ctrlp = append(ctrlp, p1...)
		}
		ctrlp = append(ctrlp, b1...)
		ctrlp = append(ctrlp, b2...)
		ctrlp = append(ctrlp, p2...)
	}

	n := 3*(m-1) + 1
	degree := 3
	order := degree + 1
	dmin, dmax := t[1], t[m]
	knots := make([]float64, 0, n+order)
	for i := 0; i < order; i++ {
		knots = append(knots, dmin)
	}
	for i := 1; i < m-1; i++ {
		u := t[i+1]
		for k := 0; k < degree; k++ {
			knots = append(knots, u)
		}
	}
	for i := 0; i < order; i++ {
		knots = append(knots, dmax)
	}

	s, err := gospline.NewWithControlPoints(n, d, degree, gospline.Clamped, ctrlp)
	if err != nil {
		return nil, err
	}
	if err := s.SetKnots(knots); err != nil {
		return nil, err
	}
	tracer().Debugf("InterpolateCatmullRom: %d unique point(s), alpha=%.2g -> %d control points", m, alpha, n)
	return s, nil
}

// phantom linearly extrapolates a point before/after the curve's end from
// its two nearest samples: 2*near - far.
func phantom(near, far []float64, d int) []float64 {
	out := make([]float64, d)
	for c := 0; c < d; c++ {
		out[c] = 2*near[c] - far[c]
	}
	return out
}

// chordStep computes the alpha-parametrized knot-interval step between two
// consecutive points. alpha==0 gives the uniform parametrization
// regardless of spacing; otherwise it is |p-q|^alpha (0.5 = centripetal,
// 1 = chordal). Points reaching this point have already survived
// deduplication, so distances here are assumed strictly positive.
func chordStep(p, q []float64, alpha float64) float64 {
	if alpha == 0 {
		return 1
	}
	var sum float64
	for i := range p {
		diff := p[i] - q[i]
		sum += diff * diff
	}
	return math.Pow(math.Sqrt(sum), alpha)
}
