package gospline

// Tension returns a clone of s with every interior control point linearly
// interpolated between the straight-line chord point P0 + (i/(n-1))*(Pn-1 -
// P0) (at factor 0) and its original position (at factor 1). Endpoints are
// always on the chord already and are left untouched by construction.
// Values outside [0,1] are permitted: the shape beyond the chord/original
// range is undefined but not an error.
func Tension(s *Spline, factor float64) *Spline {
	out := s.Clone()
	d := s.dim
	last := s.n - 1
	p0 := s.ctrlp[0:d]
	pLast := s.ctrlp[last*d : (last+1)*d]
	for i := 0; i <= last; i++ {
		frac := float64(i) / float64(last)
		for c := 0; c < d; c++ {
			chord := p0[c] + frac*(pLast[c]-p0[c])
			orig := s.ctrlp[i*d+c]
			out.ctrlp[i*d+c] = chord + factor*(orig-chord)
		}
	}
	tracer().Debugf("Tension: factor=%.4g", factor)
	return out
}
