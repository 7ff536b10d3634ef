// Package imaging turns image sources into color profiles.
//
// It covers the image side of gradient synthesis: fetching bytes for a
// source string, decoding them into a pixel grid and summarising the grid
// into an ordered sequence of colors, one per column.
//
// # Sources
//
// A source is either an absolute http(s) URL or a filesystem path,
// optionally wrapped in quotes as it appears inside a CSS url(...) call.
// Remote sources are downloaded in full; paths are read from disk,
// relative ones against Loader.BaseDir.
//
// # Formats
//
// PNG, JPEG and GIF are decoded by the standard library; WebP, BMP and TIFF
// by golang.org/x/image.
//
// # Color Representation
//
// Colors are 8-bit non-premultiplied RGBA. They print as "#rrggbb" when
// opaque and as "rgba(r, g, b, a)" otherwise, both valid CSS.
//
// # Error Handling
//
// Every failure to obtain bytes wraps ErrLoad; every failure to decode them
// wraps ErrDecode. Test with errors.Is.
//
// # Thread Safety
//
// Nothing in this package is cached or shared between calls. Loader values
// and all functions are safe for concurrent use.
package imaging
