package gospline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestKnotEqual(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	assert.True(t, knotEqual(1.0, 1.00001, 1e-4))
	assert.False(t, knotEqual(1.0, 1.1, 1e-4))
}

func TestKnotLess(t *testing.T) {
	assert.True(t, knotLess(0.1, 0.2, 1e-4))
	assert.False(t, knotLess(0.2, 0.1, 1e-4))
	assert.False(t, knotLess(0.1, 0.100001, 1e-4))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, distance([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestFillZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	fillZero(buf)
	assert.Equal(t, []float64{0, 0, 0}, buf)
}
