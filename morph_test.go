package gospline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphEndpointsReturnOriginals(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	a, err := NewWithControlPoints(4, 2, 3, Clamped, []float64{0, 0, 1, 1, 2, 1, 3, 0})
	require.NoError(t, err)
	b, err := NewWithControlPoints(4, 2, 3, Clamped, []float64{0, 3, 1, 2, 2, 2, 3, 3})
	require.NoError(t, err)

	atA, err := Morph(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, a.ControlPoints(), atA.ControlPoints())

	atB, err := Morph(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, b.ControlPoints(), atB.ControlPoints())

	mid, err := Morph(a, b, 0.5)
	require.NoError(t, err)
	pt, _ := mid.ControlPointAt(0)
	assert.InDelta(t, 1.5, pt[1], 1e-9)
}
