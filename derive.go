package gospline

// Derive returns the times-th derivative of s as a new spline of degree
// degree-times. If component is >=0 the result is 1-dimensional, the
// derivative of that single control-point coordinate; if component is -1
// every coordinate is differentiated together and the result keeps s's
// full dimension.
//
// epsilon bounds the discontinuity check at interior knots with
// multiplicity equal to order (spec §4.5): if the Euclidean gap between
// the two control points straddling such a knot exceeds epsilon, Derive
// fails with ErrUnderivable. A negative epsilon disables the check; the
// derivative control point spanning such a knot is then set to zero.
// Fails with ErrIndex if component is out of range.
func Derive(s *Spline, times, component int, epsilon float64) (*Spline, error) {
	if times < 0 {
		return nil, newErr(DegGeNCtrlp, "derivative order must be >= 0, got %d", times)
	}
	cur := s
	for t := 0; t < times; t++ {
		next, err := deriveOnce(cur, component, epsilon)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// deriveOnce applies the standard B-spline derivative formula once:
// Q_i = degree * (P_{i+1} - P_i) / (knots[i+order] - knots[i+1]), over a
// knot vector with the first and last knot stripped. A zero denominator
// marks an interior knot of full multiplicity (a discontinuity); the gap
// between the two straddling control points is checked against epsilon
// there. For degree 0, the derivative is a point at the origin.
func deriveOnce(s *Spline, component int, epsilon float64) (*Spline, error) {
	if component >= s.dim {
		return nil, newErr(IndexErr, "component %d out of range [0,%d)", component, s.dim)
	}
	d := s.dim
	if component >= 0 {
		d = 1
	}
	if s.degree == 0 {
		dmin, dmax := s.Domain()
		return &Spline{
			degree: 0,
			dim:    d,
			n:      1,
			ctrlp:  make([]float64, d),
			knots:  []float64{dmin, dmax},
			cfg:    s.cfg,
		}, nil
	}
	order := s.Order()
	newDegree := s.degree - 1
	newN := s.n - 1
	newCtrlp := make([]float64, newN*d)
	for i := 0; i < newN; i++ {
		denom := s.knots[i+order] - s.knots[i+1]
		factor := 0.0
		if denom != 0 {
			factor = float64(s.degree) / denom
		} else if epsilon >= 0 {
			gap := distance(s.ctrlp[i*s.dim:(i+1)*s.dim], s.ctrlp[(i+1)*s.dim:(i+2)*s.dim])
			if gap > epsilon {
				return nil, newErr(Underivable, "discontinuity at interior knot (index %d) exceeds epsilon %.6g (gap %.6g)", i+order, epsilon, gap)
			}
		}
		if component >= 0 {
			diff := s.ctrlp[(i+1)*s.dim+component] - s.ctrlp[i*s.dim+component]
			newCtrlp[i] = factor * diff
		} else {
			for c := 0; c < d; c++ {
				diff := s.ctrlp[(i+1)*s.dim+c] - s.ctrlp[i*s.dim+c]
				newCtrlp[i*d+c] = factor * diff
			}
		}
	}
	newKnots := make([]float64, len(s.knots)-2)
	copy(newKnots, s.knots[1:len(s.knots)-1])
	return &Spline{
		degree: newDegree,
		dim:    d,
		n:      newN,
		ctrlp:  newCtrlp,
		knots:  newKnots,
		cfg:    s.cfg,
	}, nil
}
