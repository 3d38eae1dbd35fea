package gospline

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlPointAccess(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s, err := NewWithControlPoints(4, 2, 3, Clamped, []float64{0, 0, 1, 1, 2, 1, 3, 0})
	require.NoError(t, err)

	pt, err := s.ControlPointAt(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, pt)

	_, err = s.ControlPointAt(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndex))

	require.NoError(t, s.SetControlPointAt(1, []float64{9, 9}))
	pt, _ = s.ControlPointAt(1)
	assert.Equal(t, []float64{9, 9}, pt)

	err = s.SetControlPointAt(1, []float64{9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLCtrlpDimMismatch))
}

func TestKnotAccessAndMultiplicityGuard(t *testing.T) {
	s, err := New(4, 2, 3, Clamped)
	require.NoError(t, err)

	u, err := s.KnotAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u)

	_, err = s.KnotAt(100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndex))

	// knots[0..3] are already 0 (clamped, order 4); setting knots[4] (=1)
	// to 0 would raise the run of zeros to 5 > order 4.
	err = s.SetKnotAt(4, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMultiplicity))
}

func TestControlPointsAndKnotsSliceAreCopies(t *testing.T) {
	s, err := NewWithControlPoints(4, 2, 3, Clamped, []float64{0, 0, 1, 1, 2, 1, 3, 0})
	require.NoError(t, err)

	pts := s.ControlPoints()
	pts[0] = 42
	orig, _ := s.ControlPointAt(0)
	assert.Equal(t, 0.0, orig[0])

	knots := s.KnotsSlice()
	knots[0] = 42
	u, _ := s.KnotAt(0)
	assert.Equal(t, 0.0, u)
}
