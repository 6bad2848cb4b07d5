package scenery

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// HeightSource is a grid of normalized heights, addressed row-major from the top-left.
type HeightSource interface {
	Width() int
	Height() int
	At(row, col int) float64
}

// HeightMap is an in-memory HeightSource.
type HeightMap struct {
	width, height int
	values        []float64
}

// NewHeightMap wraps a row-major grid of heights.
func NewHeightMap(width, height int, values []float64) (*HeightMap, error) {
	if width < 0 || height < 0 || len(values) != width*height {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrMalformedGeometry, len(values), width, height)
	}
	return &HeightMap{width: width, height: height, values: values}, nil
}

// HeightMapFromImage reads heights from the red channel of img, scaled to [0, 1].
func HeightMapFromImage(img image.Image) *HeightMap {
	bounds := img.Bounds()
	hm := &HeightMap{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		values: make([]float64, bounds.Dx()*bounds.Dy()),
	}
	for row := 0; row < hm.height; row++ {
		for col := 0; col < hm.width; col++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+col, bounds.Min.Y+row)).(color.NRGBA)
			hm.values[row*hm.width+col] = float64(c.R) / 255
		}
	}
	return hm
}

// Width and Height report zero on a nil map, so SampleHeight rejects it as empty.
func (h *HeightMap) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

func (h *HeightMap) Height() int {
	if h == nil {
		return 0
	}
	return h.height
}

func (h *HeightMap) At(row, col int) float64 {
	return h.values[row*h.width+col]
}

// SampleHeight returns the height under normalized coordinates (u, v). The cell is
// chosen by flooring and clamped to the grid, so u or v of exactly 1 reads the last cell.
func SampleHeight(src HeightSource, u, v float64) (float64, error) {
	if src == nil {
		return 0, ErrEmptyHeightMap
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return 0, ErrEmptyHeightMap
	}
	row := cellIndex(v, h)
	col := cellIndex(u, w)
	return src.At(row, col), nil
}

func cellIndex(t float64, n int) int {
	i := int(math.Floor(t * float64(n)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
