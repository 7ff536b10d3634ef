package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with 8-bit, non-premultiplied components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// Hex returns the color as lowercase "#rrggbb". Alpha is not included.
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// CSS returns the shortest valid CSS color literal: "#rrggbb" for opaque
// colors and "rgba(r, g, b, a)" otherwise, with alpha in [0,1].
func (c Color) CSS() string {
	if c.Opaque() {
		return c.Hex()
	}
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	alpha = strings.TrimRight(strings.TrimRight(alpha, "0"), ".")
	if alpha == "" {
		alpha = "0"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.CSS()
}

// RGBA implements color.Color so a Color can be drawn directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Lerp linearly interpolates between a and b in RGB space. t is clamped to
// [0,1]; t=0 yields a and t=1 yields b.
func Lerp(a, b Color, t float64) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	r, g, bl := a.toColorful().BlendRgb(b.toColorful(), t).Clamped().RGB255()
	alpha := float64(a.A)*(1-t) + float64(b.A)*t
	return Color{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// ColorFrequency represents a color and its weight within an image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#rrggbb"
	Percentage float64 `json:"percentage"` // Share of the image (0-100)
	Color      Color   `json:"rgba"`
}

// DominantColorsResult contains the most prominent colors in an image.
//
// Colors are sorted by weight in descending order.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts up to count prominent colors from an image using
// k-means clustering. Useful as a flat fallback color next to a generated
// gradient.
func DominantColors(img image.Image, count int) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	found := dominantcolor.FindWeight(img, count)

	colors := make([]ColorFrequency, 0, len(found))
	for _, f := range found {
		c := Color{R: f.RGBA.R, G: f.RGBA.G, B: f.RGBA.B, A: 0xff}
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: roundTo(f.Weight*100, 2),
			Color:      c,
		})
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Percentage > colors[j].Percentage
	})

	return &DominantColorsResult{Colors: colors}, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
