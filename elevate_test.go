package gospline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevateDegreePreservesCurveSinglePiece(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s, err := NewWithControlPoints(4, 2, 3, Clamped, []float64{0, 0, 1, 1, 2, 1, 3, 0})
	require.NoError(t, err)

	elevated, err := ElevateDegree(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, elevated.Degree())
	assert.Equal(t, 5, elevated.NumControlPoints())

	before, err := Eval(s, 0.5)
	require.NoError(t, err)
	after, err := Eval(elevated, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, before.Result()[0], after.Result()[0], 1e-9)
	assert.InDelta(t, before.Result()[1], after.Result()[1], 1e-9)
}

func TestElevateDegreePreservesEndpointsComposite(t *testing.T) {
	s, err := New(11, 2, 3, Clamped)
	require.NoError(t, err)
	for i := 0; i < s.NumControlPoints(); i++ {
		require.NoError(t, s.SetControlPointAt(i, []float64{float64(i), float64(i) * float64(i)}))
	}

	elevated, err := ElevateDegree(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, elevated.Degree())

	dmin, dmax := s.Domain()
	beforeMin, _ := Eval(s, dmin)
	afterMin, _ := Eval(elevated, dmin)
	assert.InDelta(t, beforeMin.Result()[0], afterMin.Result()[0], 1e-9)

	beforeMax, _ := Eval(s, dmax)
	afterMax, _ := Eval(elevated, dmax)
	assert.InDelta(t, beforeMax.Result()[0], afterMax.Result()[0], 1e-9)
}
