package gospline

// ToBeziers decomposes s into a single spline whose control-point buffer
// is the concatenation of plain Bézier segments (spec §4.5): every
// interior knot is inserted until its multiplicity equals order, so each
// knot span's basis reduces to a stand-alone Bézier segment of s's
// degree, laid out order control points at a time with no points shared
// across a break. s is left untouched; the decomposition works on a
// clone.
//
// Applying ToBeziers again is idempotent: every interior knot already
// carries multiplicity order, so no further insertion occurs and the
// clone comes back unchanged.
func ToBeziers(s *Spline) (*Spline, error) {
	clone := s.Clone()
	dmin, dmax := clone.Domain()
	eps := clone.cfg.KnotEpsilon
	order := clone.Order()

	orig := s.KnotsSlice()
	for idx := 0; idx < len(orig); {
		v := orig[idx]
		j := idx
		for j < len(orig) && knotEqual(orig[j], v, eps) {
			j++
		}
		mult := j - idx
		if !knotEqual(v, dmin, eps) && !knotEqual(v, dmax, eps) && mult < order {
			if _, err := InsertKnot(clone, v, order-mult); err != nil {
				return nil, err
			}
		}
		idx = j
	}

	if tracingSegments() {
		tracer().Debugf("ToBeziers: %d segment(s) of %d point(s)", clone.n/order, order)
	}
	tracer().Debugf("ToBeziers: %d control point(s)", clone.n)
	return clone, nil
}
