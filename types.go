package gospline

// Layout selects the knot-vector family used by New to lay out a fresh
// spline over the default domain [0,1].
type Layout int

const (
	// Opened lays out m evenly spaced knots from 0 to 1 inclusive.
	Opened Layout = iota
	// Clamped pins the first and last `order` knots to 0 and 1
	// respectively, with interior knots uniformly spaced.
	Clamped
	// BezierStyle gives every distinct knot multiplicity order, with
	// distinct interior knots uniformly spaced. Requires (n-order)%order==0.
	BezierStyle
)

func (l Layout) String() string {
	switch l {
	case Opened:
		return "opened"
	case Clamped:
		return "clamped"
	case BezierStyle:
		return "bezier"
	default:
		return "unknown"
	}
}

// Spline is the opaque spline value: degree, dimension, a control-point
// buffer of n d-tuples and a knot vector of m = n+degree+1 values.
//
// The zero Spline is a valid null handle (no buffers, zero fields);
// Release produces one, and evaluating it is undefined. A Spline is not
// internally synchronized: concurrent reads are safe, concurrent writes
// (or a write racing a read) are not.
type Spline struct {
	degree int
	dim    int
	n      int
	ctrlp  []float64 // n*dim values, n contiguous d-tuples
	knots  []float64 // n+degree+1 values
	cfg    Config
}

// Degree returns the spline's polynomial degree.
func (s *Spline) Degree() int { return s.degree }

// Order returns degree+1, the number of basis functions non-zero at any
// parameter.
func (s *Spline) Order() int { return s.degree + 1 }

// Dimension returns the control-point tuple width (for NURBS, including
// the trailing weight component).
func (s *Spline) Dimension() int { return s.dim }

// NumControlPoints returns n, the number of control points.
func (s *Spline) NumControlPoints() int { return s.n }

// NumKnots returns m = n + degree + 1.
func (s *Spline) NumKnots() int { return len(s.knots) }

// Config returns the tolerance configuration this spline was constructed
// with.
func (s *Spline) Config() Config { return s.cfg }

// IsNull reports whether s is a null handle (no buffers).
func (s *Spline) IsNull() bool {
	return s == nil || (s.ctrlp == nil && s.knots == nil)
}

// Net describes the full De Boor computation for one evaluated parameter,
// per spec §3.2.
type Net struct {
	U         float64   // parameter actually used, after epsilon-snapping
	K         int       // knot span index: knots[K] <= U < knots[K+1], or n-1 at the domain max
	S         int       // multiplicity of U
	H         int       // number of affine-combination rounds performed
	Dim       int       // mirrors the spline's dimension
	Points    []float64 // every intermediate point, triangle order
	NumResult int       // 1, or 2 at an interior discontinuity
}

// Result returns the d-tuple(s) at the tip of the triangle: the evaluated
// point, or (at an interior multiplicity-order discontinuity) the two
// points straddling the jump.
func (net *Net) Result() []float64 {
	if net.NumResult == 2 {
		return net.Points[len(net.Points)-2*net.Dim:]
	}
	return net.Points[len(net.Points)-net.Dim:]
}
