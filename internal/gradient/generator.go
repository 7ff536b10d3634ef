package gradient

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/css-resemble-image/internal/imaging"
)

// Generator turns a sampled color profile into gradient stops.
//
// colors holds one color per image column, left to right; stops is the
// resolved stop count (at least 2). Implementations must be pure and must
// return positions that start at 0, end at 100 and strictly increase.
type Generator interface {
	Generate(colors []imaging.Color, stops int) []Stop
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(colors []imaging.Color, stops int) []Stop

// Generate calls f(colors, stops).
func (f GeneratorFunc) Generate(colors []imaging.Color, stops int) []Stop {
	return f(colors, stops)
}

// Built-in strategies.
var (
	// Default places exactly stops stops evenly from 0% to 100%, each
	// color interpolated between the two nearest columns.
	Default Generator = GeneratorFunc(defaultGradient)

	// Simple emits about half as many stops as Default (never fewer than
	// two) and takes each color from the nearest column without blending.
	Simple Generator = GeneratorFunc(simpleGradient)

	// Complex adds a midpoint between every pair of Default stops, giving
	// 2*stops-1 interpolated stops.
	Complex Generator = GeneratorFunc(complexGradient)
)

var builtins = map[string]Generator{
	"default": Default,
	"simple":  Simple,
	"complex": Complex,
}

// ByName returns the built-in strategy called name. The empty name selects
// Default.
func ByName(name string) (Generator, error) {
	if name == "" {
		return Default, nil
	}
	g, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (want one of %v)", name, Names())
	}
	return g, nil
}

// Names lists the built-in strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func defaultGradient(colors []imaging.Color, stops int) []Stop {
	return evenStops(colors, max(stops, 2), true)
}

func simpleGradient(colors []imaging.Color, stops int) []Stop {
	return evenStops(colors, max((stops+1)/2, 2), false)
}

func complexGradient(colors []imaging.Color, stops int) []Stop {
	return evenStops(colors, 2*max(stops, 2)-1, true)
}

// evenStops spreads n stops over 0-100% and picks a color for each.
func evenStops(colors []imaging.Color, n int, blend bool) []Stop {
	if len(colors) == 0 {
		return nil
	}
	out := make([]Stop, n)
	for i := range out {
		p := round2(float64(i) * 100 / float64(n-1))
		out[i] = Stop{Color: colorAt(colors, p, blend), Position: p}
	}
	return out
}

// colorAt reads the profile at position p percent. Without blending the
// nearest column wins.
func colorAt(colors []imaging.Color, p float64, blend bool) imaging.Color {
	last := len(colors) - 1
	x := p / 100 * float64(last)
	if !blend {
		return colors[int(math.Round(x))]
	}
	lo := int(math.Floor(x))
	if lo >= last {
		return colors[last]
	}
	return imaging.Lerp(colors[lo], colors[lo+1], x-float64(lo))
}
