package scenery

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleHeight(t *testing.T) {
	heights := testHeights()

	tests := []struct {
		name     string
		u, v     float64
		expected float64
	}{
		{"top_left", 0, 0, 0},
		{"top_right", 0.75, 0.25, 85.0 / 255},
		{"bottom_left", 0.25, 0.75, 170.0 / 255},
		{"bottom_right", 0.75, 0.99, 1},
		{"far_corner_clamped", 1, 1, 1},
		{"negative_clamped", -0.1, -0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleHeight(heights, tt.u, tt.v)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestHeightMapFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(10, 10, 13, 11))
	img.SetGray(12, 10, color.Gray{Y: 51})

	hm := HeightMapFromImage(img)

	assert.Equal(t, 3, hm.Width())
	assert.Equal(t, 1, hm.Height())
	assert.InDelta(t, 0.2, hm.At(0, 2), 1e-12)
	assert.Zero(t, hm.At(0, 0))
}

func TestNewHeightMap(t *testing.T) {
	hm, err := NewHeightMap(2, 1, []float64{0.1, 0.9})
	require.NoError(t, err)
	assert.Equal(t, 0.9, hm.At(0, 1))

	_, err = NewHeightMap(2, 2, []float64{0.1})
	assert.True(t, errors.Is(err, ErrMalformedGeometry))
}

func TestSampleHeight_Empty(t *testing.T) {
	hm, err := NewHeightMap(0, 0, nil)
	require.NoError(t, err)

	_, err = SampleHeight(hm, 0.5, 0.5)
	assert.ErrorIs(t, err, ErrEmptyHeightMap)
}

func TestSampleHeight_NilMap(t *testing.T) {
	var hm *HeightMap

	_, err := SampleHeight(hm, 0.5, 0.5)
	assert.ErrorIs(t, err, ErrEmptyHeightMap)
}
