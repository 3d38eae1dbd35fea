package gospline

// New constructs a zero-initialized spline of degree `degree`, dimension
// `d`, with `n` control points, using the package default Config and the
// given knot Layout over the default domain [0,1].
//
// Fails with ErrDimZero if d==0, ErrDegGeNCtrlp if degree>=n, and
// ErrNumKnots if (for BezierStyle only) (n-order)%order != 0 or (for any
// layout) n+order exceeds the Config's MaxNumKnots.
func New(n, d, degree int, layout Layout) (*Spline, error) {
	return NewWithConfig(n, d, degree, layout, DefaultConfigValue())
}

// NewWithConfig is New with an explicit Config instead of the package
// default.
func NewWithConfig(n, d, degree int, layout Layout, cfg Config) (*Spline, error) {
	if d == 0 {
		return nil, newErr(DimZero, "dimension must be >= 1")
	}
	if degree >= n {
		return nil, newErr(DegGeNCtrlp, "degree %d >= num control points %d", degree, n)
	}
	order := degree + 1
	if layout == BezierStyle && (n-order)%order != 0 {
		return nil, newErr(NumKnots, "bezier-style layout requires (n-order) %% order == 0, got n=%d order=%d", n, order)
	}
	m := n + order
	if m > cfg.MaxNumKnots {
		return nil, newErr(NumKnots, "knot count %d exceeds configured ceiling %d", m, cfg.MaxNumKnots)
	}
	s := &Spline{
		degree: degree,
		dim:    d,
		n:      n,
		ctrlp:  make([]float64, n*d),
		knots:  layoutKnots(n, degree, order, layout),
		cfg:    cfg,
	}
	tracer().Debugf("new spline: n=%d d=%d degree=%d layout=%s", n, d, degree, layout)
	return s, nil
}

// NewWithControlPoints behaves like New, then copies values (exactly n*d
// entries, n contiguous d-tuples) into the control-point buffer.
func NewWithControlPoints(n, d, degree int, layout Layout, values []float64) (*Spline, error) {
	s, err := New(n, d, degree, layout)
	if err != nil {
		return nil, err
	}
	if len(values) != n*d {
		return nil, newErr(LCtrlpDimMismatch, "expected %d control point values, got %d", n*d, len(values))
	}
	copy(s.ctrlp, values)
	return s, nil
}

func layoutKnots(n, degree, order int, layout Layout) []float64 {
	m := n + order
	knots := make([]float64, m)
	switch layout {
	case Opened:
		for i := 0; i < m; i++ {
			knots[i] = float64(i) / float64(m-1)
		}
	case Clamped:
		for i := 0; i < order; i++ {
			knots[i] = 0
		}
		for i := 0; i < order; i++ {
			knots[m-1-i] = 1
		}
		interior := n - order
		for j := 0; j < interior; j++ {
			knots[order+j] = float64(j+1) / float64(interior+1)
		}
	case BezierStyle:
		segments := (n-order)/order + 1
		for seg := 0; seg <= segments; seg++ {
			val := float64(seg) / float64(segments)
			for k := 0; k < order; k++ {
				knots[seg*order+k] = val
			}
		}
	}
	return knots
}

// Copy deep-copies src's buffers into dst. A no-op if dst and src are the
// same spline. dst's prior buffers are not released by Copy; callers
// reusing a destination must release it first.
func Copy(dst, src *Spline) {
	if dst == src {
		return
	}
	dst.degree = src.degree
	dst.dim = src.dim
	dst.n = src.n
	dst.cfg = src.cfg
	dst.ctrlp = append([]float64(nil), src.ctrlp...)
	dst.knots = append([]float64(nil), src.knots...)
}

// Clone returns a deep copy of s.
func (s *Spline) Clone() *Spline {
	dst := &Spline{}
	Copy(dst, s)
	return dst
}

// Move transfers ownership of src's buffers to dst and resets src to the
// null handle (zero Spline). dst's prior buffers are not released.
func Move(dst, src *Spline) {
	*dst = *src
	*src = Spline{}
}

// Release resets s to the null handle. A no-op on an already-released
// spline.
func Release(s *Spline) {
	if s == nil {
		return
	}
	*s = Spline{}
}
