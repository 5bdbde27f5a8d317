package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestFit_ExactAspect(t *testing.T) {
	p, err := Fit(800, 1200, Label4x6)
	require.NoError(t, err)

	assert.InDelta(t, 0.127, p.Scale, eps)
	assert.InDelta(t, 101.6, p.Width, eps)
	assert.InDelta(t, 152.4, p.Height, eps)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestFit_WideImageCentredVertically(t *testing.T) {
	p, err := Fit(1000, 500, Label4x6)
	require.NoError(t, err)

	assert.InDelta(t, 101.6/1000, p.Scale, eps)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 50.8, p.Height, eps)
	assert.InDelta(t, (152.4-50.8)/2, p.Y, eps)
	assert.InDelta(t, 152.4, p.Y*2+p.Height, eps)
}

func TestFit_TallImageCentredHorizontally(t *testing.T) {
	p, err := Fit(300, 1524, Label4x6)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, p.Scale, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.InDelta(t, 30, p.Width, eps)
	assert.InDelta(t, (101.6-30)/2, p.X, eps)
}

func TestFit_NeverExceedsPage(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {4000, 10}, {10, 4000}, {1234, 5678}} {
		p, err := Fit(dims[0], dims[1], Label4x6)
		require.NoError(t, err)
		assert.LessOrEqual(t, p.Width, Label4x6.WidthMM+eps)
		assert.LessOrEqual(t, p.Height, Label4x6.HeightMM+eps)
		assert.GreaterOrEqual(t, p.X, -eps)
		assert.GreaterOrEqual(t, p.Y, -eps)
	}
}

func TestFit_RejectsEmptySizes(t *testing.T) {
	_, err := Fit(0, 100, Label4x6)
	assert.Error(t, err)
	_, err = Fit(100, 100, PageSize{})
	assert.Error(t, err)
}
