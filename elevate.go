package gospline

// ElevateDegree returns a spline of degree+times representing the same
// curve as s, by repeatedly decomposing into Bézier segments, elevating
// each segment's degree by one (the classical Bézier degree-elevation
// recurrence), and reassembling a composite spline that keeps interior
// breakpoints at multiplicity degree (C0) and the domain ends clamped.
//
// The reassembled knot vector is not reduced to minimal multiplicity
// (no knot removal pass runs afterward); the curve is exact but the
// control polygon is not the shortest one expressing it.
func ElevateDegree(s *Spline, times int) (*Spline, error) {
	if times < 0 {
		return nil, newErr(DegGeNCtrlp, "elevation count must be >= 0, got %d", times)
	}
	cur := s
	for t := 0; t < times; t++ {
		next, err := elevateOnce(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func elevateOnce(s *Spline) (*Spline, error) {
	d := s.dim
	degree := s.degree
	order := s.Order()
	newDegree := degree + 1
	newOrder := newDegree + 1

	clone := s.Clone()
	dmin, dmax := clone.Domain()
	eps := clone.cfg.KnotEpsilon

	var breakpoints []float64
	orig := s.KnotsSlice()
	for idx := 0; idx < len(orig); {
		v := orig[idx]
		j := idx
		for j < len(orig) && knotEqual(orig[j], v, eps) {
			j++
		}
		if !knotEqual(v, dmin, eps) && !knotEqual(v, dmax, eps) {
			if need := degree - (j - idx); need > 0 {
				if _, err := InsertKnot(clone, v, need); err != nil {
					return nil, err
				}
			}
			breakpoints = append(breakpoints, v)
		}
		idx = j
	}

	if degree == 0 {
		return degreeZeroElevate(s, d, newDegree, newOrder)
	}

	if (clone.n-1)%degree != 0 {
		return nil, newErr(NumKnots, "internal: decomposition left n=%d, not of the form segments*degree+1", clone.n)
	}
	segments := (clone.n - 1) / degree

	newCtrlp := make([]float64, 0, (segments*newDegree+1)*d)
	for seg := 0; seg < segments; seg++ {
		start := seg * degree
		segPts := clone.ctrlp[start*d : (start+order)*d]
		elevated := elevateBezierOnce(segPts, degree, d)
		if seg == 0 {
			newCtrlp = append(newCtrlp, elevated...)
		} else {
			newCtrlp = append(newCtrlp, elevated[d:]...)
		}
	}
	newN := segments*newDegree + 1

	newKnots := make([]float64, 0, newN+newOrder)
	for i := 0; i < newOrder; i++ {
		newKnots = append(newKnots, dmin)
	}
	for _, u := range breakpoints {
		for i := 0; i < newDegree; i++ {
			newKnots = append(newKnots, u)
		}
	}
	for i := 0; i < newOrder; i++ {
		newKnots = append(newKnots, dmax)
	}

	tracer().Debugf("ElevateDegree: %d -> %d, %d segment(s)", degree, newDegree, segments)
	return &Spline{
		degree: newDegree,
		dim:    d,
		n:      newN,
		ctrlp:  newCtrlp,
		knots:  newKnots,
		cfg:    s.cfg,
	}, nil
}

// degreeZeroElevate handles elevating a degree-0 (piecewise-constant)
// spline: every control point becomes its own degree-1 (linear, constant
// in effect) segment, since there are no interior Bézier segments to merge.
func degreeZeroElevate(s *Spline, d, newDegree, newOrder int) (*Spline, error) {
	newCtrlp := make([]float64, s.n*newOrder*d)
	for i := 0; i < s.n; i++ {
		pt := s.ctrlp[i*d : (i+1)*d]
		for k := 0; k < newOrder; k++ {
			copy(newCtrlp[(i*newOrder+k)*d:(i*newOrder+k+1)*d], pt)
		}
	}
	newN := s.n * newOrder
	knots, err := NewWithControlPoints(newN, d, newDegree, BezierStyle, newCtrlp)
	if err != nil {
		return nil, err
	}
	return knots, nil
}

// elevateBezierOnce raises a single Bézier segment's degree by one via
// Q_i = (i/(degree+1))·P_{i-1} + (1 - i/(degree+1))·P_i, i=0..degree+1.
func elevateBezierOnce(pts []float64, degree, d int) []float64 {
	order := degree + 1
	newOrder := order + 1
	out := make([]float64, newOrder*d)
	for i := 0; i < newOrder; i++ {
		alpha := float64(i) / float64(order)
		for c := 0; c < d; c++ {
			var prev float64
			if i > 0 {
				prev = pts[(i-1)*d+c]
			}
			var cur float64
			if i < order {
				cur = pts[i*d+c]
			}
			out[i*d+c] = alpha*prev + (1-alpha)*cur
		}
	}
	return out
}
