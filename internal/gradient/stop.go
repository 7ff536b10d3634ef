package gradient

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/css-resemble-image/internal/imaging"
)

// ErrInvalidGradient is returned when a stop list cannot be emitted as a
// valid linear-gradient.
var ErrInvalidGradient = errors.New("invalid gradient")

// Stop is one color stop of a linear gradient.
type Stop struct {
	Color    imaging.Color `json:"color"`
	Position float64       `json:"position"` // percent, 0-100
}

// String formats the stop as it appears inside linear-gradient(), e.g.
// "#aabbcc 25%".
func (s Stop) String() string {
	return s.Color.CSS() + " " + FormatPercent(s.Position)
}

// FormatPercent prints a position with at most two decimals.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(round2(p), 'f', -1, 64) + "%"
}

// Validate checks that stops start at 0, end at 100 and strictly increase.
func Validate(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidGradient, len(stops))
	}
	if stops[0].Position != 0 {
		return fmt.Errorf("%w: first stop at %v, want 0", ErrInvalidGradient, stops[0].Position)
	}
	if last := stops[len(stops)-1].Position; last != 100 {
		return fmt.Errorf("%w: last stop at %v, want 100", ErrInvalidGradient, last)
	}
	for i := 1; i < len(stops); i++ {
		prev, cur := round2(stops[i-1].Position), round2(stops[i].Position)
		if math.IsNaN(cur) || cur <= prev {
			return fmt.Errorf("%w: stop %d at %v does not follow %v", ErrInvalidGradient, i, stops[i].Position, stops[i-1].Position)
		}
	}
	return nil
}

// CSS renders stops as a complete linear-gradient function. A non-empty
// direction is emitted as the first argument.
func CSS(stops []Stop, direction string) string {
	parts := make([]string, 0, len(stops)+1)
	if direction != "" {
		parts = append(parts, direction)
	}
	for _, s := range stops {
		parts = append(parts, s.String())
	}
	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}

// Evaluate samples the gradient described by stops at width evenly spaced
// points from 0% to 100%. Stops must be valid.
func Evaluate(stops []Stop, width int) []imaging.Color {
	if len(stops) == 0 || width <= 0 {
		return nil
	}
	out := make([]imaging.Color, width)
	seg := 0
	for x := range out {
		p := 0.0
		if width > 1 {
			p = float64(x) * 100 / float64(width-1)
		}
		for seg < len(stops)-2 && p > stops[seg+1].Position {
			seg++
		}
		a, b := stops[seg], stops[min(seg+1, len(stops)-1)]
		t := 0.0
		if span := b.Position - a.Position; span > 0 {
			t = (p - a.Position) / span
		}
		out[x] = imaging.Lerp(a.Color, b.Color, t)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
