package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// encodeTestImage returns PNG bytes of a solid image.
func encodeTestImage(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return buf.Bytes()
}

// createTestImage writes a solid test image into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-image.png")
	if err := os.WriteFile(path, encodeTestImage(t, width, height, c), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return path
}

func TestLoader_FetchFile(t *testing.T) {
	imgPath := createTestImage(t, 20, 10, color.RGBA{255, 0, 0, 255})
	l := &Loader{}

	data, err := l.Fetch(context.Background(), imgPath)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Fetch returned no bytes")
	}
}

func TestLoader_FetchQuoted(t *testing.T) {
	imgPath := createTestImage(t, 20, 10, color.RGBA{255, 0, 0, 255})
	l := &Loader{}

	for _, src := range []string{`"` + imgPath + `"`, `'` + imgPath + `'`, " " + imgPath + " "} {
		if _, err := l.Fetch(context.Background(), src); err != nil {
			t.Errorf("Fetch(%q) failed: %v", src, err)
		}
	}
}

func TestLoader_FetchRelativeToBaseDir(t *testing.T) {
	imgPath := createTestImage(t, 20, 10, color.RGBA{0, 0, 255, 255})
	l := &Loader{BaseDir: filepath.Dir(imgPath)}

	if _, err := l.Fetch(context.Background(), filepath.Base(imgPath)); err != nil {
		t.Fatalf("Fetch relative path failed: %v", err)
	}
}

func TestLoader_FetchMissingFile(t *testing.T) {
	l := &Loader{}
	_, err := l.Fetch(context.Background(), "/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Fetch should fail for non-existent file")
	}
	if !errors.Is(err, ErrLoad) {
		t.Errorf("error should wrap ErrLoad, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoader_FetchEmpty(t *testing.T) {
	l := &Loader{}
	if _, err := l.Fetch(context.Background(), `""`); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad for empty source, got %v", err)
	}
}

func TestLoader_FetchRemote(t *testing.T) {
	payload := encodeTestImage(t, 8, 8, color.RGBA{0, 255, 0, 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer srv.Close()

	l := &Loader{Timeout: 5 * time.Second}
	data, err := l.Fetch(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("got %d bytes, want %d", len(data), len(payload))
	}
}

func TestLoader_FetchRemoteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := &Loader{}
	_, err := l.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad for 404, got %v", err)
	}
}

func TestLoader_FetchRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	l := &Loader{Timeout: 2 * time.Second}
	_, err := l.Fetch(context.Background(), url)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad for closed server, got %v", err)
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"http://example.com/a.png", true},
		{"HTTPS://example.com/a.png", true},
		{"./img/a.png", false},
		{"/abs/a.png", false},
		{"ftp://example.com/a.png", false},
	}

	for _, tt := range tests {
		if got := IsRemote(tt.source); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	img, format, err := Decode(encodeTestImage(t, 30, 15, color.RGBA{1, 2, 3, 255}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Format: got %s, want png", format)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 15 {
		t.Errorf("unexpected dimensions: got %dx%d, want 30x15", b.Dx(), b.Dy())
	}
}

func TestDecode_InvalidImage(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestLoadImage(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	l := &Loader{}

	img, info, err := LoadImage(context.Background(), l, imgPath)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img == nil {
		t.Fatal("LoadImage returned nil image")
	}
	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.SizeBytes <= 0 {
		t.Error("SizeBytes should be positive")
	}
}

func TestLoadImage_NonExistent(t *testing.T) {
	_, _, err := LoadImage(context.Background(), &Loader{}, "/nonexistent/image.png")
	if !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}
