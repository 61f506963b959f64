package imaging

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// FitSize scales width x height so that the longer side equals max,
// keeping the aspect ratio.
// The shorter side is at least one pixel.
// A size with a zero or negative side is treated as a square.
func FitSize(width, height, max int) (int, int) {
	if max <= 0 {
		return 0, 0
	}
	if width <= 0 || height <= 0 {
		return max, max
	}

	if width >= height {
		h := int(math.Round(float64(height) * float64(max) / float64(width)))
		return max, atLeastOne(h)
	}
	w := int(math.Round(float64(width) * float64(max) / float64(height)))
	return atLeastOne(w), max
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Resize creates a copy of the given image, scaled to width x height.
func Resize(i image.Image, width, height int) image.Image {
	size := image.Rect(0, 0, width, height)
	dst := image.NewRGBA(size)
	// bilinear smoothes the edges of shapes drawn at a larger scale
	s := draw.BiLinear
	s.Scale(dst, size, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Fill paints the complete image with a single color.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
