package gospline

// Morph blends two splines of equal dimension and domain into one
// intermediate spline at parameter t (0 yields the aligned a, 1 the
// aligned b): the splines are first Align-ed onto a shared degree (the
// lower-degree one is elevated) and knot vector, then corresponding
// control points are linearly interpolated. Fails with whatever error
// Align returns, or ErrNumPoints if the aligned splines still disagree on
// control point count (should not happen once aligned).
func Morph(a, b *Spline, t float64) (*Spline, error) {
	aa, bb, err := Align(a, b)
	if err != nil {
		return nil, err
	}
	if aa.n != bb.n {
		return nil, newErr(NumPoints, "aligned splines have different control point counts: %d vs %d", aa.n, bb.n)
	}
	out := aa.Clone()
	for i := range out.ctrlp {
		out.ctrlp[i] = (1-t)*aa.ctrlp[i] + t*bb.ctrlp[i]
	}
	tracer().Debugf("Morph: t=%.4g, n=%d", t, out.n)
	return out, nil
}
