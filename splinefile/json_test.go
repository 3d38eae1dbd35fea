package splinefile

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektorraum/gospline"
)

func TestJSONRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	s, err := gospline.NewWithControlPoints(4, 2, 3, gospline.Clamped, []float64{0, 0, 1, 1, 2, 1, 3, 0})
	require.NoError(t, err)

	data, err := ToJSON(s)
	require.NoError(t, err)

	back, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, s.Degree(), back.Degree())
	assert.Equal(t, s.Dimension(), back.Dimension())
	assert.Equal(t, s.ControlPoints(), back.ControlPoints())
	assert.Equal(t, s.KnotsSlice(), back.KnotsSlice())
}

func TestParseJSONRejectsMalformed(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gospline.ErrParse))
}

func TestParseJSONRejectsBadDimension(t *testing.T) {
	_, err := ParseJSON([]byte(`{"degree":3,"dimension":0,"control_points":[],"knots":[]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gospline.ErrDimZero))
}

func TestParseJSONRejectsMismatchedControlPoints(t *testing.T) {
	_, err := ParseJSON([]byte(`{"degree":1,"dimension":2,"control_points":[0,0,1],"knots":[0,0,1,1]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gospline.ErrLCtrlpDimMismatch))
}

func TestParseJSONRejectsWrongKnotCount(t *testing.T) {
	_, err := ParseJSON([]byte(`{"degree":1,"dimension":2,"control_points":[0,0,1,1],"knots":[0,1]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gospline.ErrNumKnots))
}
