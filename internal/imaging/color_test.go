package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createHalvesImage creates an image that is red on the left half and blue
// on the right half
func createHalvesImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func TestColor_CSS(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"pure red", Color{255, 0, 0, 255}, "#ff0000"},
		{"pure green", Color{0, 255, 0, 255}, "#00ff00"},
		{"pure blue", Color{0, 0, 255, 255}, "#0000ff"},
		{"white", Color{255, 255, 255, 255}, "#ffffff"},
		{"black", Color{0, 0, 0, 255}, "#000000"},
		{"gray", Color{128, 128, 128, 255}, "#808080"},
		{"half transparent", Color{255, 128, 64, 128}, "rgba(255, 128, 64, 0.502)"},
		{"transparent", Color{0, 0, 0, 0}, "rgba(0, 0, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.CSS(); got != tt.want {
				t.Errorf("CSS: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Color{255, 0, 0, 255}.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestLerp(t *testing.T) {
	red := Color{255, 0, 0, 255}
	blue := Color{0, 0, 255, 255}

	if got := Lerp(red, blue, 0); got != red {
		t.Errorf("t=0: got %v, want %v", got, red)
	}
	if got := Lerp(red, blue, 1); got != blue {
		t.Errorf("t=1: got %v, want %v", got, blue)
	}
	if got := Lerp(red, blue, -3); got != red {
		t.Errorf("t<0 should clamp to a, got %v", got)
	}

	mid := Lerp(red, blue, 0.5)
	if mid.R != 128 || mid.G != 0 || mid.B != 128 || mid.A != 255 {
		t.Errorf("t=0.5: got %+v, want {128 0 128 255}", mid)
	}
}

func TestDominantColors(t *testing.T) {
	img := createHalvesImage(100, 100)

	result, err := DominantColors(img, 2)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) == 0 {
		t.Fatal("DominantColors returned no colors")
	}
	if len(result.Colors) > 2 {
		t.Errorf("got %d colors, want at most 2", len(result.Colors))
	}
	for i := 1; i < len(result.Colors); i++ {
		if result.Colors[i].Percentage > result.Colors[i-1].Percentage {
			t.Error("colors are not sorted by percentage")
		}
	}
}

func TestDominantColors_InvalidCount(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{1, 2, 3, 255})
	if _, err := DominantColors(img, 0); err == nil {
		t.Error("DominantColors should fail for count 0")
	}
}
