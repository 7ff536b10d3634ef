package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
	"resty.dev/v3"
)

var (
	// ErrLoad marks failures to obtain image bytes: network errors,
	// non-2xx responses and unreadable or missing files.
	ErrLoad = errors.New("image load failed")

	// ErrDecode marks bytes that cannot be decoded into a pixel grid.
	ErrDecode = errors.New("image decode failed")
)

// Loader resolves an image source to raw bytes.
//
// Sources starting with "http://" or "https://" are downloaded in full;
// everything else is treated as a filesystem path. A Loader holds no state
// between calls: every Fetch uses its own HTTP client and byte buffer, so
// a single Loader may be shared by concurrent callers.
//
// # Example Usage
//
//	loader := &imaging.Loader{BaseDir: "static/css"}
//	data, err := loader.Fetch(ctx, "../img/hero.jpg")
//	if err != nil {
//	    return err
//	}
type Loader struct {
	// BaseDir is joined with relative filesystem paths. Empty means the
	// process working directory.
	BaseDir string

	// Timeout bounds a single remote fetch. Zero means no timeout beyond
	// the caller's context.
	Timeout time.Duration
}

// Fetch returns the full contents of source.
//
// Surrounding quotes are stripped. Remote fetches honour ctx; there are no
// retries. Every failure wraps ErrLoad.
func (l *Loader) Fetch(ctx context.Context, source string) ([]byte, error) {
	source = Unquote(strings.TrimSpace(source))
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrLoad)
	}

	if IsRemote(source) {
		return l.fetchRemote(ctx, source)
	}
	return l.readFile(l.resolvePath(source))
}

func (l *Loader) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	client := resty.New()
	defer client.Close()
	if l.Timeout > 0 {
		client.SetTimeout(l.Timeout)
	}

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrLoad, url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: fetch %s: unexpected status %d", ErrLoad, url, resp.StatusCode())
	}
	return resp.Bytes(), nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return data, nil
}

func (l *Loader) resolvePath(source string) string {
	path := strings.TrimPrefix(source, "file://")
	if l.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.BaseDir, path)
}

// IsRemote reports whether source is an absolute http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Unquote strips one pair of matching single or double quotes.
func Unquote(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Decode decodes image bytes into a pixel grid and reports the format name
// ("png", "jpeg", "gif", "webp", "bmp" or "tiff").
//
// Images with no pixels are rejected: they have no colour profile to
// sample. Every failure wraps ErrDecode.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	return img, format, nil
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that accepted the bytes, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded color model carries alpha.
	HasAlpha bool `json:"has_alpha"`

	// SizeBytes is the size of the encoded image in bytes.
	SizeBytes int `json:"size_bytes"`
}

// LoadImage fetches and decodes source in one step.
func LoadImage(ctx context.Context, l *Loader, source string) (image.Image, *ImageInfo, error) {
	data, err := l.Fetch(ctx, source)
	if err != nil {
		return nil, nil, err
	}
	img, format, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return img, &ImageInfo{
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Format:    format,
		HasAlpha:  hasAlpha,
		SizeBytes: len(data),
	}, nil
}
