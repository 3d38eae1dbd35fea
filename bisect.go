package gospline

import "math"

// Bisect performs one-dimensional bisection on parameter u over the full
// domain of s, on the invariant that the index-th control-point component
// of Eval(s, u) is monotone in u (ascending if ascending is true,
// descending otherwise). Each iteration evaluates the midpoint, compares
// its index-th component against value, and halves the interval
// accordingly. Terminates when |component-value| <= |epsilon| (success)
// or maxIter is exhausted; on exhaustion the best-so-far net is returned,
// unless persnickety is set, in which case the call fails with
// ErrNoResult. Fails with ErrIndex if index is out of range.
func Bisect(s *Spline, index int, value, epsilon float64, ascending, persnickety bool, maxIter int) (*Net, error) {
	if index < 0 || index >= s.dim {
		return nil, newErr(IndexErr, "component %d out of range [0,%d)", index, s.dim)
	}
	epsilon = math.Abs(epsilon)
	lo, hi := s.Domain()

	var best *Net
	bestDiff := math.Inf(1)
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		net, err := Eval(s, mid)
		if err != nil {
			return nil, err
		}
		diff := net.Result()[index] - value
		absDiff := math.Abs(diff)
		if absDiff < bestDiff {
			best, bestDiff = net, absDiff
		}
		if absDiff <= epsilon {
			tracer().Debugf("Bisect: converged after %d iteration(s), |diff|=%.6g", i+1, absDiff)
			return net, nil
		}
		if (diff > 0) == ascending {
			hi = mid
		} else {
			lo = mid
		}
	}
	if persnickety {
		return nil, newErr(NoResult, "bisection exhausted after %d iterations without reaching tolerance %.6g (best |diff|=%.6g)", maxIter, epsilon, bestDiff)
	}
	tracer().Debugf("Bisect: exhausted %d iterations, returning best-so-far |diff|=%.6g", maxIter, bestDiff)
	return best, nil
}
