package gospline

import (
	"sync"

	"github.com/npillmayer/schuko/gconf"
)

// Precision selects the default control-point epsilon. Storage is always
// float64; this only changes the CtrlPEpsilon value that WithPrecision
// writes into a Config. No operation of this package reads CtrlPEpsilon:
// degree elevation joins segments at their shared junction point, and
// IsClosed and Catmull-Rom deduplication take an explicit epsilon.
type Precision int

const (
	// Float64 uses a tight control-point epsilon (1e-5), appropriate for
	// double-precision geometry.
	Float64 Precision = iota
	// Float32Rounded uses a looser control-point epsilon (1e-3), appropriate
	// for geometry that will eventually be rounded to single precision.
	Float32Rounded
)

// Config holds the numeric tolerances and ceilings described in spec §6.
// The zero Config is not valid; use DefaultConfig.
type Config struct {
	// KnotEpsilon: two knots within this distance are considered identical
	// for multiplicity counting, span lookup and monotonicity checks.
	KnotEpsilon float64
	// MaxNumKnots caps the knot vector length (invariant I6).
	MaxNumKnots int
	// CtrlPEpsilon: the Euclidean distance under which two control points
	// count as coincident. It is carried in the Config only; no operation
	// of this package reads it (see Precision).
	CtrlPEpsilon float64
	Precision    Precision
}

// DefaultConfig returns the library defaults: KnotEpsilon=1e-4,
// MaxNumKnots=10000, CtrlPEpsilon=1e-5 (double precision).
func DefaultConfig() Config {
	return Config{
		KnotEpsilon:  1e-4,
		MaxNumKnots:  10000,
		CtrlPEpsilon: 1e-5,
		Precision:    Float64,
	}
}

// WithPrecision returns a copy of c with CtrlPEpsilon set for the given
// precision (1e-3 for Float32Rounded, 1e-5 for Float64), leaving
// KnotEpsilon and MaxNumKnots untouched.
func (c Config) WithPrecision(p Precision) Config {
	c.Precision = p
	if p == Float32Rounded {
		c.CtrlPEpsilon = 1e-3
	} else {
		c.CtrlPEpsilon = 1e-5
	}
	return c
}

var (
	defaultCfgMu sync.RWMutex
	defaultCfg   = DefaultConfig()
)

// SetDefaultConfig replaces the package-wide default configuration used by
// every constructor that isn't given an explicit Config. The product
// MaxNumKnots * KnotEpsilon should stay close to 1 (see spec §3.3); this is
// not enforced, only documented, since there are legitimate reasons to
// deviate (e.g. a much smaller working domain).
func SetDefaultConfig(c Config) {
	defaultCfgMu.Lock()
	defer defaultCfgMu.Unlock()
	defaultCfg = c
}

// DefaultConfigValue returns the current package-wide default configuration.
func DefaultConfigValue() Config {
	defaultCfgMu.RLock()
	defer defaultCfgMu.RUnlock()
	return defaultCfg
}

// tracingSegments reports whether verbose per-segment tracing has been
// requested through schuko/gconf, following the same opt-in flag idiom as
// the teacher's gconf.IsSet("tracingchoices").
func tracingSegments() bool {
	return gconf.IsSet("gospline.tracesegments")
}
