package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains a rendered image encoded as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderColumns draws one vertical band per color, left to right, and
// returns the result as a PNG. If width differs from len(colors) the bands
// are resampled to width with a linear filter.
func RenderColumns(colors []Color, width, height int) (*PreviewResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	img := imaging.New(len(colors), height, Color{})
	for x, c := range colors {
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}

	var out image.Image = img
	if width != len(colors) {
		out = imaging.Resize(img, width, height, imaging.Linear)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
