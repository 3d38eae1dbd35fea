package interp

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/vektorraum/gospline"
)

func tracer() tracing.Trace {
	return tracing.Select("gospline.interp")
}

// InterpolateCubicNatural builds a degree-3 spline passing through every
// point in points, using the classical natural cubic spline (zero second
// derivative at both ends), parametrized uniformly (u_i = i). Each segment
// is converted to its Bézier control points and the segments are
// assembled into one composite spline sharing one control point at every
// breakpoint (interior knots of multiplicity 3, C0 in the representation).
// gospline.ToBeziers uses a different layout: interior knots of
// multiplicity 4 and no control points shared between segments.
//
// If exactly one point is given, the result is a degree-0 spline holding
// that point. Fails with ErrNumPoints if no points are given, or
// ErrLCtrlpDimMismatch if the points disagree on dimension.
func InterpolateCubicNatural(points [][]float64) (*gospline.Spline, error) {
	m := len(points)
	if m == 0 {
		return nil, fmt.Errorf("%w: need at least 1 point to interpolate, got 0", gospline.ErrNumPoints)
	}
	d := len(points[0])
	if d == 0 {
		return nil, fmt.Errorf("%w: points must have at least 1 coordinate", gospline.ErrDimZero)
	}
	for i, p := range points {
		if len(p) != d {
			return nil, fmt.Errorf("%w: point %d has %d coordinate(s), want %d", gospline.ErrLCtrlpDimMismatch, i, len(p), d)
		}
	}
	if m == 1 {
		return degreeZeroSpline(points[0])
	}

	h := make([]float64, m-1)
	for i := range h {
		h[i] = 1 // uniform parametrization: u_i = i
	}

	moments := naturalMoments(points, h, d)

	// Every segment's Bézier control points; segment i contributes 4
	// points (P0..P3), sharing P0==previous segment's P3.
	ctrlp := make([]float64, 0, (3*(m-1)+1)*d)
	for i := 0; i < m-1; i++ {
		p0 := points[i]
		p3 := points[i+1]
		p1 := make([]float64, d)
		p2 := make([]float64, d)
		hi := h[i]
		for c := 0; c < d; c++ {
			mi, mi1 := moments[i][c], moments[i+1][c]
			derivAtStart := -mi*hi/2 + (p3[c]-p0[c])/hi - hi*(mi1-mi)/6
			derivAtEnd := mi1*hi/2 + (p3[c]-p0[c])/hi - hi*(mi1-mi)/6
			p1[c] = p0[c] + hi/3*derivAtStart
			p2[c] = p3[c] - hi/3*derivAtEnd
		}
		if i == 0 {
			ctrlp = append(ctrlp, p0...)
		}
		ctrlp = append(ctrlp, p1...)
		ctrlp = append(ctrlp, p2...)
		ctrlp = append(ctrlp, p3...)
	}

	n := 3*(m-1) + 1
	degree := 3
	order := degree + 1
	knots := make([]float64, 0, n+order)
	for i := 0; i < order; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i < m-1; i++ {
		u := float64(i)
		for k := 0; k < degree; k++ {
			knots = append(knots, u)
		}
	}
	last := float64(m - 1)
	for i := 0; i < order; i++ {
		knots = append(knots, last)
	}

	s, err := gospline.NewWithControlPoints(n, d, degree, gospline.Clamped, ctrlp)
	if err != nil {
		return nil, err
	}
	if err := s.SetKnots(knots); err != nil {
		return nil, err
	}
	tracer().Debugf("InterpolateCubicNatural: %d points -> %d control points", m, n)
	return s, nil
}

// naturalMoments solves for the second derivative ("moment") at every
// parameter value, including the clamped-to-zero natural endpoints, via
// the Thomas algorithm (tridiagonal forward elimination + back
// substitution), generalized to a d-dimensional right-hand side.
func naturalMoments(points [][]float64, h []float64, d int) [][]float64 {
	m := len(points)
	moments := make([][]float64, m)
	for i := range moments {
		moments[i] = make([]float64, d)
	}
	size := m - 2
	if size <= 0 {
		return moments
	}

	a := make([]float64, size) // sub-diagonal
	b := make([]float64, size) // diagonal
	c := make([]float64, size) // super-diagonal
	rhs := make([][]float64, size)
	for idx := 0; idx < size; idx++ {
		i := idx + 1 // interior point index, 1..m-2
		a[idx] = h[i-1]
		b[idx] = 2 * (h[i-1] + h[i])
		c[idx] = h[i]
		row := make([]float64, d)
		for comp := 0; comp < d; comp++ {
			row[comp] = 6 * ((points[i+1][comp]-points[i][comp])/h[i] - (points[i][comp]-points[i-1][comp])/h[i-1])
		}
		rhs[idx] = row
	}

	cPrime := make([]float64, size)
	rhsPrime := make([][]float64, size)
	cPrime[0] = c[0] / b[0]
	rhsPrime[0] = make([]float64, d)
	for comp := 0; comp < d; comp++ {
		rhsPrime[0][comp] = rhs[0][comp] / b[0]
	}
	for idx := 1; idx < size; idx++ {
		denom := b[idx] - a[idx]*cPrime[idx-1]
		cPrime[idx] = c[idx] / denom
		rhsPrime[idx] = make([]float64, d)
		for comp := 0; comp < d; comp++ {
			rhsPrime[idx][comp] = (rhs[idx][comp] - a[idx]*rhsPrime[idx-1][comp]) / denom
		}
	}

	sol := make([][]float64, size)
	sol[size-1] = rhsPrime[size-1]
	for idx := size - 2; idx >= 0; idx-- {
		row := make([]float64, d)
		for comp := 0; comp < d; comp++ {
			row[comp] = rhsPrime[idx][comp] - cPrime[idx]*sol[idx+1][comp]
		}
		sol[idx] = row
	}
	for idx := 0; idx < size; idx++ {
		moments[idx+1] = sol[idx]
	}
	return moments
}
