package resemble

import (
	"context"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/rs/zerolog"
)

// TransformStylesheet rewrites resemble-image calls in every declaration of
// a stylesheet, including those nested in at-rules such as @media.
//
// Declarations are processed one at a time in document order. The first
// failing declaration aborts the stylesheet with a *DeclarationError. When
// nothing matched, src is returned as is. Otherwise the new values are
// written over the old ones in src, so comments and formatting survive;
// only if a value cannot be found in src is the stylesheet re-serialised.
func (t *Transformer) TransformStylesheet(ctx context.Context, src string) (string, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	var edits []valueEdit
	if err := t.transformRules(ctx, sheet.Rules, &edits); err != nil {
		return "", err
	}
	log := zerolog.Ctx(ctx)
	log.Debug().Int("declarations", len(edits)).Msg("stylesheet transformed")
	if len(edits) == 0 {
		return src, nil
	}

	out, ok := splice(src, edits)
	if !ok {
		log.Warn().Msg("declaration not found in source, re-serialising stylesheet")
		return sheet.String(), nil
	}
	return out, nil
}

// valueEdit is one rewritten declaration value.
type valueEdit struct {
	old, new string
}

// transformRules appends an edit for every declaration it rewrites.
func (t *Transformer) transformRules(ctx context.Context, rules []*css.Rule, edits *[]valueEdit) error {
	for _, rule := range rules {
		for _, decl := range rule.Declarations {
			out, changed, err := t.TransformValue(ctx, decl.Value)
			if err != nil {
				return &DeclarationError{Property: decl.Property, Value: decl.Value, Err: err}
			}
			if changed {
				*edits = append(*edits, valueEdit{old: decl.Value, new: out})
				decl.Value = out
			}
		}

		if err := t.transformRules(ctx, rule.Rules, edits); err != nil {
			return err
		}
	}
	return nil
}

// splice replaces each edit's old value in src, in document order. A match
// must sit in declaration position: after a ':' and before ';', '}' or
// '!important', and not inside a comment. It reports false when some edit
// has no such match.
func splice(src string, edits []valueEdit) (string, bool) {
	comments := commentSpans(src)

	var b strings.Builder
	pos := 0
	for _, e := range edits {
		start := findValue(src, e.old, pos, comments)
		if start < 0 {
			return "", false
		}
		b.WriteString(src[pos:start])
		b.WriteString(e.new)
		pos = start + len(e.old)
	}
	b.WriteString(src[pos:])
	return b.String(), true
}

func findValue(src, value string, from int, comments [][2]int) int {
	for from <= len(src) {
		i := strings.Index(src[from:], value)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(value)
		if !insideComment(start, comments) && declarationBounds(src, start, end) {
			return start
		}
		from = start + 1
	}
	return -1
}

func declarationBounds(src string, start, end int) bool {
	const ws = " \t\r\n\f"
	if !strings.HasSuffix(strings.TrimRight(src[:start], ws), ":") {
		return false
	}
	rest := strings.TrimLeft(src[end:], ws)
	return rest == "" || rest[0] == ';' || rest[0] == '}' || rest[0] == '!'
}

func insideComment(i int, comments [][2]int) bool {
	for _, c := range comments {
		if i > c[0] && i < c[1] {
			return true
		}
	}
	return false
}

// commentSpans returns the byte ranges of the comments in src.
func commentSpans(src string) [][2]int {
	var spans [][2]int
	s := scanner.New(src)
	off := 0
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			return spans
		}
		if tok.Type == scanner.TokenComment {
			spans = append(spans, [2]int{off, off + len(tok.Value)})
		}
		off += len(tok.Value)
	}
}
