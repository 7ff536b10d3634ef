package resemble

import (
	"fmt"

	"github.com/ironsheep/css-resemble-image/internal/gradient"
	"github.com/ironsheep/css-resemble-image/internal/imaging"
)

// Fatal error kinds. A matched resemble-image call that fails with any of
// these aborts the whole declaration; no partial gradient is emitted.
var (
	// ErrLoad: network error, non-2xx response or missing file.
	ErrLoad = imaging.ErrLoad
	// ErrDecode: the bytes are not a decodable image.
	ErrDecode = imaging.ErrDecode
	// ErrInvalidFidelity: spacing or fidelity is zero, negative or not a number.
	ErrInvalidFidelity = gradient.ErrInvalidFidelity
	// ErrInvalidGradient: a custom generator returned an unusable stop list.
	ErrInvalidGradient = gradient.ErrInvalidGradient
)

// DeclarationError reports which declaration of a stylesheet failed.
type DeclarationError struct {
	Property string
	Value    string
	Err      error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Property, e.Value, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
