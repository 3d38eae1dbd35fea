package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektorraum/gospline"
)

func TestInterpolateCatmullRomPassesThroughPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	points := [][]float64{{0, 0}, {1, 3}, {3, 3}, {4, 0}}
	s, err := InterpolateCatmullRom(points, 0.5, nil, nil, 1e-9)
	require.NoError(t, err)

	dmin, _ := s.Domain()
	net, err := gospline.Eval(s, dmin)
	require.NoError(t, err)
	assert.InDelta(t, points[0][0], net.Result()[0], 1e-6)
	assert.InDelta(t, points[0][1], net.Result()[1], 1e-6)
}

func TestInterpolateCatmullRomUniformLine(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	s, err := InterpolateCatmullRom(points, 0, nil, nil, 1e-9)
	require.NoError(t, err)

	_, dmax := s.Domain()
	net, err := gospline.Eval(s, dmax)
	require.NoError(t, err)
	assert.InDelta(t, 3, net.Result()[0], 1e-6)
	assert.InDelta(t, 3, net.Result()[1], 1e-6)
}

func TestInterpolateCatmullRomDedupesConsecutivePoints(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {1, 1 + 1e-9}, {2, 2}}
	s, err := InterpolateCatmullRom(points, 0.5, nil, nil, 1e-6)
	require.NoError(t, err)

	dmin, dmax := s.Domain()
	netMin, err := gospline.Eval(s, dmin)
	require.NoError(t, err)
	assert.InDelta(t, 0, netMin.Result()[0], 1e-6)
	netMax, err := gospline.Eval(s, dmax)
	require.NoError(t, err)
	assert.InDelta(t, 2, netMax.Result()[0], 1e-6)
}

func TestInterpolateCatmullRomSinglePointAfterDedupeIsDegreeZero(t *testing.T) {
	points := [][]float64{{1, 1}, {1, 1 + 1e-9}, {1 + 1e-9, 1}}
	s, err := InterpolateCatmullRom(points, 0.5, nil, nil, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Degree())
	assert.Equal(t, 1, s.NumControlPoints())
}

func TestInterpolateCatmullRomRejectsZeroPoints(t *testing.T) {
	_, err := InterpolateCatmullRom(nil, 0.5, nil, nil, 1e-9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gospline.ErrNumPoints))
}

func TestInterpolateCatmullRomHonorsExplicitEndTangents(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 0}}
	first := []float64{0, -1}
	last := []float64{2, -1}
	s, err := InterpolateCatmullRom(points, 0.5, first, last, 1e-9)
	require.NoError(t, err)

	dmin, _ := s.Domain()
	net, err := gospline.Eval(s, dmin)
	require.NoError(t, err)
	assert.InDelta(t, 0, net.Result()[0], 1e-6)
	assert.InDelta(t, 0, net.Result()[1], 1e-6)

	// Centripetal steps: 1 to/from the given phantoms, 2^0.25 between
	// samples. The inner Bézier points next to the ends follow the given
	// phantoms, not the default 2*near-far extrapolation.
	w := math.Pow(2, 0.25) / (3 * (1 + math.Pow(2, 0.25)))
	c1, err := s.ControlPointAt(1)
	require.NoError(t, err)
	assert.InDelta(t, w, c1[0], 1e-9)
	assert.InDelta(t, 2*w, c1[1], 1e-9)
	c5, err := s.ControlPointAt(5)
	require.NoError(t, err)
	assert.InDelta(t, 2-w, c5[0], 1e-9)
	assert.InDelta(t, 2*w, c5[1], 1e-9)
}
