package gradient

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFidelity is returned for spacing or fidelity values that are
// zero, negative or not numeric, whether they come from a resemble-image
// argument or from configuration.
var ErrInvalidFidelity = errors.New("invalid fidelity")

// MaxStops caps the stop count a spacing can produce.
const MaxStops = 1000

// DefaultFidelity is the spacing used when neither the call nor the
// configuration provides one.
const DefaultFidelity = "25%"

var spacingPattern = regexp.MustCompile(`^([+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)(%|[a-zA-Z]*)$`)

// Spacing is the distance between neighbouring gradient stops.
type Spacing struct {
	Value float64
	// Unit is "%" for a share of the image width, any other unit suffix
	// (px, em, ...) or empty for a distance in source pixels.
	Unit string
}

// Percent reports whether the spacing is relative to the image width.
func (s Spacing) Percent() bool {
	return s.Unit == "%"
}

func (s Spacing) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + s.Unit
}

// ParseSpacing parses a percentage, length or bare number. The magnitude
// must be a positive finite number; anything else wraps ErrInvalidFidelity.
func ParseSpacing(raw string) (Spacing, error) {
	s := strings.TrimSpace(raw)
	m := spacingPattern.FindStringSubmatch(s)
	if m == nil {
		return Spacing{}, fmt.Errorf("%w: %q is not a number", ErrInvalidFidelity, raw)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Spacing{}, fmt.Errorf("%w: %q: %w", ErrInvalidFidelity, raw, err)
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return Spacing{}, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidFidelity, raw)
	}

	unit := m[2]
	if unit != "%" {
		unit = strings.ToLower(unit)
	}
	return Spacing{Value: v, Unit: unit}, nil
}

// StopCount converts a spacing into the number of stops for an image whose
// color profile has the given number of columns.
//
// A percentage divides the 0-100% axis: 25% gives 4 stops, 50% gives 2.
// Any other spacing is a distance in source pixels and divides the column
// count, whatever its unit: 100, 100px and 100em all give 10 stops on a
// 1000-pixel-wide image. Fractional results round up. The count is clamped
// to at least 2 and at most min(columns, MaxStops).
func StopCount(sp Spacing, columns int) (int, error) {
	if !(sp.Value > 0) || math.IsInf(sp.Value, 0) {
		return 0, fmt.Errorf("%w: spacing %v must be greater than zero", ErrInvalidFidelity, sp.Value)
	}

	var n float64
	if sp.Percent() {
		n = 100 / sp.Value
	} else {
		n = float64(columns) / sp.Value
	}

	// Clamp before converting: tiny spacings overflow int.
	limit := min(columns, MaxStops)
	count := limit
	if n < float64(limit) {
		count = int(math.Ceil(n - 1e-9))
	}
	if count < 2 {
		count = 2
	}
	return count, nil
}

// Effective parses the spacing in effect for one call: the inline
// argument when given, otherwise the configured fidelity. An empty or
// blank inline argument means "not given".
func Effective(inline, fidelity string) (Spacing, error) {
	raw := fidelity
	if strings.TrimSpace(inline) != "" {
		raw = inline
	}
	return ParseSpacing(raw)
}
