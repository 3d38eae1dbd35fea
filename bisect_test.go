package gospline

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBisectFindsParameterOnLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s, err := NewWithControlPoints(2, 2, 1, Clamped, []float64{0, 0, 4, 2})
	require.NoError(t, err)

	net, err := Bisect(s, 0, 2, 1e-9, true, false, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2, net.Result()[0], 1e-6)
	assert.InDelta(t, 1, net.Result()[1], 1e-6)
}

func TestBisectRejectsBadIndex(t *testing.T) {
	s, err := NewWithControlPoints(2, 2, 1, Clamped, []float64{0, 0, 4, 2})
	require.NoError(t, err)

	_, err = Bisect(s, 5, 1, 1e-9, true, false, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndex))
}

func TestBisectPersnicketyFailsOnExhaustion(t *testing.T) {
	s, err := NewWithControlPoints(2, 2, 1, Clamped, []float64{0, 0, 4, 2})
	require.NoError(t, err)

	_, err = Bisect(s, 0, 10, 1e-9, true, true, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoResult))
}

func TestBisectReturnsBestSoFarOnExhaustionWithoutPersnickety(t *testing.T) {
	s, err := NewWithControlPoints(2, 2, 1, Clamped, []float64{0, 0, 4, 2})
	require.NoError(t, err)

	net, err := Bisect(s, 0, 10, 1e-9, true, false, 10)
	require.NoError(t, err)
	assert.InDelta(t, 4, net.Result()[0], 1e-2)
}

func TestBisectDescending(t *testing.T) {
	s, err := NewWithControlPoints(2, 2, 1, Clamped, []float64{4, 0, 0, 2})
	require.NoError(t, err)

	net, err := Bisect(s, 0, 2, 1e-9, false, false, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2, net.Result()[0], 1e-6)
}
