package gospline

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
)

// Align returns clones of a and b sharing identical degree, identical
// control-point count and a common knot vector: every knot value present
// in either ends up in both, at the maximum of the two multiplicities it
// carries. This is the prerequisite for Morph, which walks both
// control-point buffers in lockstep.
//
// Per spec step (1), the lower-degree spline is first elevated to match
// the higher-degree one via ElevateDegree; step (2) then inserts the
// union of interior knots into each side. Knot values are bucketed onto
// the knot-epsilon grid (bucket key = round(u/KnotEpsilon), an int) so an
// ordinary int-keyed treemap gives an epsilon-aware ordered merge for
// free.
//
// Fails with ErrLCtrlpDimMismatch if dimensions differ, or ErrNumKnots if
// domains differ.
func Align(a, b *Spline) (*Spline, *Spline, error) {
	if a.dim != b.dim {
		return nil, nil, newErr(LCtrlpDimMismatch, "dimension mismatch: %d vs %d", a.dim, b.dim)
	}
	eps := a.cfg.KnotEpsilon
	if b.cfg.KnotEpsilon > eps {
		eps = b.cfg.KnotEpsilon
	}
	aMin, aMax := a.Domain()
	bMin, bMax := b.Domain()
	if !knotEqual(aMin, bMin, eps) || !knotEqual(aMax, bMax, eps) {
		return nil, nil, newErr(NumKnots, "domain mismatch: [%.6g,%.6g] vs [%.6g,%.6g]", aMin, aMax, bMin, bMax)
	}

	if a.degree < b.degree {
		elevated, err := ElevateDegree(a, b.degree-a.degree)
		if err != nil {
			return nil, nil, err
		}
		a = elevated
	} else if b.degree < a.degree {
		elevated, err := ElevateDegree(b, a.degree-b.degree)
		if err != nil {
			return nil, nil, err
		}
		b = elevated
	}

	union := treemap.NewWithIntComparator()
	type bucketVal struct {
		u    float64
		mult int
	}
	mergeInto := func(knots []float64) {
		for idx := 0; idx < len(knots); {
			v := knots[idx]
			j := idx
			for j < len(knots) && knotEqual(knots[j], v, eps) {
				j++
			}
			mult := j - idx
			key := int(math.Round(v / eps))
			if existing, found := union.Get(key); found {
				bv := existing.(bucketVal)
				if mult > bv.mult {
					bv.mult = mult
				}
				union.Put(key, bv)
			} else {
				union.Put(key, bucketVal{u: v, mult: mult})
			}
			idx = j
		}
	}
	mergeInto(a.KnotsSlice())
	mergeInto(b.KnotsSlice())

	alignOne := func(s *Spline) (*Spline, error) {
		dst := s.Clone()
		it := union.Iterator()
		for it.Next() {
			bv := it.Value().(bucketVal)
			_, _, haveMult, err := dst.locate(bv.u)
			if err != nil {
				return nil, err
			}
			if bv.mult > haveMult {
				if _, err := InsertKnot(dst, bv.u, bv.mult-haveMult); err != nil {
					return nil, err
				}
			}
		}
		return dst, nil
	}

	dst1, err := alignOne(a)
	if err != nil {
		return nil, nil, err
	}
	dst2, err := alignOne(b)
	if err != nil {
		return nil, nil, err
	}
	if tracingSegments() {
		tracer().Debugf("Align: union has %d distinct knot value(s)", union.Size())
	}
	return dst1, dst2, nil
}
