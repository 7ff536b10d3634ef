package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// SampleColumns summarises an image into one representative color per
// column, ordered left to right.
//
// Each color is the mean of the column's pixels weighted by alpha, so fully
// transparent pixels do not drag the hue towards black. The resulting alpha
// is the plain mean of the column's alpha values. The result has exactly
// img.Bounds().Dx() entries and is deterministic for identical input.
//
// Columns are processed in parallel; the input image is not modified.
func SampleColumns(img image.Image) []Color {
	src := imaging.Clone(img)
	width := src.Rect.Dx()
	height := src.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	cols := make([]Color, width)
	parallel.Line(width, func(start, end int) {
		for x := start; x < end; x++ {
			cols[x] = averageColumn(src, x, height)
		}
	})
	return cols
}

func averageColumn(src *image.NRGBA, x, height int) Color {
	var sumR, sumG, sumB, sumA uint64
	for y := 0; y < height; y++ {
		i := y*src.Stride + x*4
		a := uint64(src.Pix[i+3])
		sumR += uint64(src.Pix[i]) * a
		sumG += uint64(src.Pix[i+1]) * a
		sumB += uint64(src.Pix[i+2]) * a
		sumA += a
	}
	if sumA == 0 {
		return Color{}
	}
	return Color{
		R: uint8((sumR + sumA/2) / sumA),
		G: uint8((sumG + sumA/2) / sumA),
		B: uint8((sumB + sumA/2) / sumA),
		A: uint8((sumA + uint64(height)/2) / uint64(height)),
	}
}
