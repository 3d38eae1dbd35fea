package gospline

// Eval computes the point on s at parameter u via De Boor's algorithm and
// returns the full evaluation net (spec §4.3). Fails with ErrUUndefined if
// u is outside the domain.
func Eval(s *Spline, u float64) (*Net, error) {
	net := &Net{}
	if err := evalInto(s, u, net); err != nil {
		return nil, err
	}
	return net, nil
}

// evalInto fills net with the evaluation of s at u, reusing net.Points'
// backing array across calls (see EvalAll).
func evalInto(s *Spline, u float64, net *Net) error {
	usnapped, k, mult, err := s.locate(u)
	if err != nil {
		return err
	}
	order := s.Order()
	d := s.dim
	net.U = usnapped
	net.K = k
	net.S = mult
	net.Dim = d
	net.Points = net.Points[:0]

	if mult == order {
		return evalDiscontinuity(s, net, k, order, mult)
	}

	h := order - 1 - mult
	count0 := order - mult
	row := make([]float64, count0*d)
	for i := 0; i < count0; i++ {
		idx := k - order + 1 + i
		copy(row[i*d:(i+1)*d], s.ctrlp[idx*d:(idx+1)*d])
	}
	net.Points = append(net.Points, row...)
	for r := 1; r <= h; r++ {
		newCount := count0 - r
		newRow := make([]float64, newCount*d)
		for i := 0; i < newCount; i++ {
			knotLo := k - order + 1 + i + r
			knotHi := k + 1 + i
			a := (usnapped - s.knots[knotLo]) / (s.knots[knotHi] - s.knots[knotLo])
			for c := 0; c < d; c++ {
				prev := row[i*d+c]
				cur := row[(i+1)*d+c]
				newRow[i*d+c] = (1-a)*prev + a*cur
			}
		}
		net.Points = append(net.Points, newRow...)
		row = newRow
	}
	net.H = h
	net.NumResult = 1
	tracer().Debugf("Eval(%.6g): k=%d s=%d h=%d", usnapped, k, mult, h)
	return nil
}

// evalDiscontinuity handles the s==order special case of spec §4.3 step 4:
// at a domain endpoint the result is the boundary control point; in the
// interior the spline is genuinely discontinuous and the net holds exactly
// the two control points straddling the jump.
func evalDiscontinuity(s *Spline, net *Net, k, order, mult int) error {
	dmin, dmax := s.Domain()
	eps := s.cfg.KnotEpsilon
	net.H = 0
	switch {
	case knotEqual(net.U, dmin, eps):
		net.Points = append(net.Points, s.ctrlp[0:s.dim]...)
		net.NumResult = 1
	case knotEqual(net.U, dmax, eps):
		last := (s.n - 1) * s.dim
		net.Points = append(net.Points, s.ctrlp[last:last+s.dim]...)
		net.NumResult = 1
	default:
		left := (k - order) * s.dim
		right := (k - mult) * s.dim
		net.Points = append(net.Points, s.ctrlp[left:left+s.dim]...)
		net.Points = append(net.Points, s.ctrlp[right:right+s.dim]...)
		net.NumResult = 2
	}
	return nil
}

// EvalAll evaluates every parameter in us, reusing a single net buffer, and
// returns the first result point of each (single-point semantics, per
// spec §4.3). Fails with ErrUUndefined at the first out-of-domain u.
func EvalAll(s *Spline, us []float64) ([][]float64, error) {
	out := make([][]float64, len(us))
	net := &Net{}
	for i, u := range us {
		if err := evalInto(s, u, net); err != nil {
			return nil, err
		}
		res := net.Result()
		pt := make([]float64, s.dim)
		copy(pt, res[:s.dim])
		out[i] = pt
	}
	return out, nil
}

// Sample picks num parameters uniformly across the domain (inclusive of
// both endpoints when num>=2). num==0 defaults to 30*(n-degree); num==1
// evaluates only domain.min.
func Sample(s *Spline, num int) []float64 {
	if num == 0 {
		num = 30 * (s.n - s.degree)
	}
	dmin, dmax := s.Domain()
	if num == 1 {
		return []float64{dmin}
	}
	out := make([]float64, num)
	for i := 0; i < num; i++ {
		out[i] = dmin + (dmax-dmin)*float64(i)/float64(num-1)
	}
	return out
}
