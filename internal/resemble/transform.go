package resemble

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ironsheep/css-resemble-image/internal/cssvalue"
	"github.com/ironsheep/css-resemble-image/internal/gradient"
	"github.com/ironsheep/css-resemble-image/internal/imaging"
)

// DefaultDirection is the gradient direction matching the left-to-right
// sampling of the image.
const DefaultDirection = "90deg"

// NoDirection disables the leading direction argument, producing
// linear-gradient(<stop>, <stop>, ...).
const NoDirection = "none"

// Fetcher resolves an image source to its bytes. *imaging.Loader is the
// standard implementation.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// Options configures a Transformer.
type Options struct {
	// Fidelity is the default spacing between stops, used when a call has
	// no spacing argument: a percentage of the image width ("25%") or a
	// distance in source pixels ("100", "100px"). Empty means
	// gradient.DefaultFidelity. It must be a positive number.
	Fidelity string

	// Generator places the stops. Nil means gradient.Default.
	Generator gradient.Generator

	// Direction is emitted as the first linear-gradient argument. Empty
	// means DefaultDirection; NoDirection omits it.
	Direction string
}

// Transformer rewrites resemble-image calls. It holds only immutable
// configuration, so one Transformer may serve concurrent declarations.
type Transformer struct {
	fidelity  string
	generator gradient.Generator
	direction string
	fetcher   Fetcher
}

// New validates opts and returns a Transformer that loads images through
// fetcher. A nil fetcher means a zero imaging.Loader.
//
// An invalid fidelity is a configuration error wrapping ErrInvalidFidelity.
func New(opts Options, fetcher Fetcher) (*Transformer, error) {
	if opts.Fidelity == "" {
		opts.Fidelity = gradient.DefaultFidelity
	}
	if _, err := gradient.ParseSpacing(opts.Fidelity); err != nil {
		return nil, fmt.Errorf("fidelity: %w", err)
	}
	if opts.Generator == nil {
		opts.Generator = gradient.Default
	}
	switch opts.Direction {
	case "":
		opts.Direction = DefaultDirection
	case NoDirection:
		opts.Direction = ""
	}
	if fetcher == nil {
		fetcher = &imaging.Loader{}
	}

	return &Transformer{
		fidelity:  opts.Fidelity,
		generator: opts.Generator,
		direction: opts.Direction,
		fetcher:   fetcher,
	}, nil
}

// TransformValue rewrites every resemble-image call in a property value.
//
// When no call matches, value is returned unchanged and changed is false.
// Otherwise each call is loaded, sampled and replaced in order; the first
// failure aborts the whole value and nothing is returned.
func (t *Transformer) TransformValue(ctx context.Context, value string) (out string, changed bool, err error) {
	tree := cssvalue.Parse(value)
	calls := Locate(tree)
	if len(calls) == 0 {
		return value, false, nil
	}

	log := zerolog.Ctx(ctx)
	for _, call := range calls {
		stops, err := t.Gradient(ctx, call.Source, call.Spacing)
		if err != nil {
			return "", false, fmt.Errorf("%s(%s): %w", call.Name, tree.Text(call.Args[0]), err)
		}
		log.Debug().
			Str("source", call.Source).
			Str("spacing", call.Spacing).
			Int("stops", len(stops)).
			Msg("rewrote resemble-image call")
		Rewrite(tree, call, stops, t.direction)
	}
	return tree.String(), true, nil
}

// Gradient runs the load, sample, resolve and generate steps for one
// source. spacing is the inline spacing argument; empty falls back to the
// configured fidelity.
func (t *Transformer) Gradient(ctx context.Context, source, spacing string) ([]gradient.Stop, error) {
	sp, err := gradient.Effective(spacing, t.fidelity)
	if err != nil {
		return nil, err
	}

	cols, err := t.Profile(ctx, source)
	if err != nil {
		return nil, err
	}

	n, err := gradient.StopCount(sp, len(cols))
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().
		Stringer("spacing", sp).
		Int("columns", len(cols)).
		Int("count", n).
		Msg("resolved stop count")
	stops := t.generator.Generate(cols, n)
	if err := gradient.Validate(stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// Profile loads source and returns one color per image column.
func (t *Transformer) Profile(ctx context.Context, source string) ([]imaging.Color, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("source", source).Msg("loading image")

	data, err := t.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	img, format, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}

	cols := imaging.SampleColumns(img)
	log.Debug().
		Str("source", source).
		Str("format", format).
		Int("columns", len(cols)).
		Msg("sampled image")
	return cols, nil
}

// Direction returns the direction argument emitted before the stops, or
// the empty string when none is emitted.
func (t *Transformer) Direction() string {
	return t.direction
}
