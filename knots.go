package gospline

// Domain returns the parameter interval [knots[degree], knots[n]] over
// which the spline is defined.
func (s *Spline) Domain() (float64, float64) {
	return s.knots[s.degree], s.knots[s.n]
}

// SetKnots replaces the entire knot vector. Fails with ErrNumKnots if
// len(values) != n+order (I5), ErrKnotsDecr if the result is not
// non-decreasing under the knot-epsilon relation (I2), or ErrMultiplicity
// if any knot's multiplicity would exceed order (I3).
func (s *Spline) SetKnots(values []float64) error {
	want := s.n + s.Order()
	if len(values) != want {
		return newErr(NumKnots, "expected %d knots, got %d", want, len(values))
	}
	eps := s.cfg.KnotEpsilon
	order := s.Order()
	run := 1
	for i := 1; i < len(values); i++ {
		if knotLess(values[i], values[i-1], eps) {
			return newErr(KnotsDecr, "knot %d=%.6g precedes knot %d=%.6g", i, values[i], i-1, values[i-1])
		}
		if knotEqual(values[i], values[i-1], eps) {
			run++
			if run > order {
				return newErr(Multiplicity, "knot value %.6g has multiplicity %d > order %d", values[i], run, order)
			}
		} else {
			run = 1
		}
	}
	copy(s.knots, values)
	return nil
}

// findSpan locates the knot span index k such that knots[k] <= u <
// knots[k+1], with the right endpoint of the domain belonging to the last
// non-empty span, per spec §4.3 step 2. u must already be within the
// domain (callers snap/validate via locate).
func findSpan(n, degree int, u float64, knots []float64, eps float64) int {
	last := knots[n]
	if u >= last || knotEqual(u, last, eps) {
		return n - 1
	}
	low, high := degree, n
	mid := (low + high) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// countMultiplicity counts how many knots equal u (under eps), scanning
// outward from span index k in both directions.
func countMultiplicity(knots []float64, k int, u, eps float64) int {
	count := 0
	for i := k; i >= 0 && knotEqual(knots[i], u, eps); i-- {
		count++
	}
	for i := k + 1; i < len(knots) && knotEqual(knots[i], u, eps); i++ {
		count++
	}
	return count
}

// locate snaps u to the domain per spec §4.3 step 1, then finds its span
// index and multiplicity (steps 2-3). Fails with ErrUUndefined if u is
// outside the domain (under the knot-epsilon relation).
func (s *Spline) locate(u float64) (usnapped float64, k, mult int, err error) {
	eps := s.cfg.KnotEpsilon
	dmin, dmax := s.Domain()
	if u < dmin && !knotEqual(u, dmin, eps) {
		return 0, 0, 0, newErr(UUndefined, "u=%.6g below domain min %.6g", u, dmin)
	}
	if u > dmax && !knotEqual(u, dmax, eps) {
		return 0, 0, 0, newErr(UUndefined, "u=%.6g above domain max %.6g", u, dmax)
	}
	switch {
	case knotEqual(u, dmin, eps):
		usnapped = dmin
	case knotEqual(u, dmax, eps):
		usnapped = dmax
	default:
		usnapped = u
	}
	k = findSpan(s.n, s.degree, usnapped, s.knots, eps)
	mult = countMultiplicity(s.knots, k, usnapped, eps)
	return usnapped, k, mult, nil
}

// InsertKnot inserts u num times, via the De Boor knot insertion recurrence.
// Returns the index of the last instance of u in the resulting knot
// vector. Fails with ErrUUndefined if u is outside the domain, or
// ErrMultiplicity if the post-insertion multiplicity would exceed order.
func InsertKnot(s *Spline, u float64, num int) (k int, err error) {
	usnapped, k0, mult, err := s.locate(u)
	if err != nil {
		return 0, err
	}
	order := s.Order()
	if mult+num > order {
		return 0, newErr(Multiplicity, "inserting %.6g %d time(s) would raise multiplicity from %d to %d > order %d",
			u, num, mult, mult+num, order)
	}
	k = k0
	for r := 0; r < num; r++ {
		insertKnotOnce(s, usnapped, k, mult+r)
		k++
	}
	tracer().Debugf("InsertKnot(%.6g, %d): k=%d mult=%d->%d", u, num, k, mult, mult+num)
	return k, nil
}

// insertKnotOnce performs a single round of Boehm's knot insertion
// algorithm: u is inserted once at span k (current multiplicity s), the
// control-point buffer grows by one d-tuple, and order-s-1 affected
// control points are recomputed as affine combinations.
func insertKnotOnce(s *Spline, u float64, k, mult int) {
	p := s.degree
	d := s.dim
	newN := s.n + 1
	newCtrlp := make([]float64, newN*d)
	// control points [0, k-p] are unchanged
	copy(newCtrlp[:(k-p+1)*d], s.ctrlp[:(k-p+1)*d])
	// control points [k-s+1, n] <- [k-s, n-1] (shifted by one), unaffected
	copy(newCtrlp[(k-mult+1)*d:], s.ctrlp[(k-mult)*d:])
	// affected range: i in [k-p+1, k-s]
	for i := k - p + 1; i <= k-mult; i++ {
		alpha := (u - s.knots[i]) / (s.knots[i+p] - s.knots[i])
		for c := 0; c < d; c++ {
			prev := s.ctrlp[(i-1)*d+c]
			cur := s.ctrlp[i*d+c]
			newCtrlp[i*d+c] = (1-alpha)*prev + alpha*cur
		}
	}
	newKnots := make([]float64, len(s.knots)+1)
	copy(newKnots[:k+1], s.knots[:k+1])
	newKnots[k+1] = u
	copy(newKnots[k+2:], s.knots[k+1:])

	s.ctrlp = newCtrlp
	s.knots = newKnots
	s.n = newN
}

// Split inserts u until it reaches multiplicity order, producing a
// discontinuity point suitable for separating Bézier segments. At a domain
// endpoint this is a no-op and k is set to the appropriate boundary index.
func Split(s *Spline, u float64) (k int, err error) {
	usnapped, k0, mult, err := s.locate(u)
	if err != nil {
		return 0, err
	}
	dmin, dmax := s.Domain()
	if knotEqual(usnapped, dmin, s.cfg.KnotEpsilon) || knotEqual(usnapped, dmax, s.cfg.KnotEpsilon) {
		return k0, nil
	}
	return InsertKnot(s, usnapped, s.Order()-mult)
}

// IsClosed reports whether, for every derivative order i in
// [0, degree-1], the Euclidean distance between the i-th derivative
// evaluated at domain.min and at domain.max is <= epsilon.
func IsClosed(s *Spline, epsilon float64) (bool, error) {
	if s.degree == 0 {
		return true, nil
	}
	dmin, dmax := s.Domain()
	cur := s
	for i := 0; i < s.degree; i++ {
		netMin, err := Eval(cur, dmin)
		if err != nil {
			return false, err
		}
		netMax, err := Eval(cur, dmax)
		if err != nil {
			return false, err
		}
		if distance(netMin.Result(), netMax.Result()) > epsilon {
			return false, nil
		}
		if i < s.degree-1 {
			next, err := Derive(cur, 1, -1, -1)
			if err != nil {
				return false, err
			}
			cur = next
		}
	}
	return true, nil
}
