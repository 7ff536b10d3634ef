package cssvalue

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// Parse tokenizes a CSS property value into a Tree.
//
// Parsing never fails. Input the tokenizer rejects (an unterminated string
// or comment) is kept as a trailing Word so that serialising the tree always
// reproduces s exactly.
func Parse(s string) *Tree {
	t := &Tree{}
	var open []int // indices of functions awaiting ")"
	consumed := 0

	link := func(i int) {
		if len(open) == 0 {
			t.Root = append(t.Root, i)
			return
		}
		parent := &t.Nodes[open[len(open)-1]]
		parent.Children = append(parent.Children, i)
	}

	sc := scanner.New(s)
	for {
		tok := sc.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			if rest := s[consumed:]; rest != "" {
				link(t.Add(Node{Kind: Word, Value: rest}))
			}
			break
		}
		consumed += len(tok.Value)

		switch tok.Type {
		case scanner.TokenFunction:
			i := t.Add(Node{Kind: Function, Value: strings.TrimSuffix(tok.Value, "("), Unclosed: true})
			link(i)
			open = append(open, i)
		case scanner.TokenURI:
			link(t.addURI(tok.Value))
		case scanner.TokenString:
			link(t.Add(Node{Kind: String, Quote: tok.Value[0], Value: tok.Value[1 : len(tok.Value)-1]}))
		case scanner.TokenS:
			link(t.Add(Node{Kind: Space, Value: tok.Value}))
		case scanner.TokenComment:
			link(t.Add(Node{Kind: Comment, Value: tok.Value}))
		case scanner.TokenChar:
			switch tok.Value {
			case "(":
				// Bare parentheses group like a function with no name.
				i := t.Add(Node{Kind: Function, Unclosed: true})
				link(i)
				open = append(open, i)
			case ")":
				if len(open) > 0 {
					t.Nodes[open[len(open)-1]].Unclosed = false
					open = open[:len(open)-1]
					continue
				}
				link(t.Add(Node{Kind: Word, Value: tok.Value}))
			case ",", "/", ":":
				link(t.Add(Node{Kind: Div, Value: tok.Value}))
			default:
				link(t.Add(Node{Kind: Word, Value: tok.Value}))
			}
		default:
			link(t.Add(Node{Kind: Word, Value: tok.Value}))
		}
	}
	return t
}

// addURI turns a single url(...) token into a Function node named after the
// token's own spelling, with one String or Word child.
func (t *Tree) addURI(raw string) int {
	open := strings.IndexByte(raw, '(')
	inner := raw[open+1 : len(raw)-1]
	body := strings.TrimLeft(inner, " \t\n\r\f")
	before := inner[:len(inner)-len(body)]
	trimmed := strings.TrimRight(body, " \t\n\r\f")
	after := body[len(trimmed):]

	fn := Node{Kind: Function, Value: raw[:open], Before: before, After: after}
	if trimmed != "" {
		child := Node{Kind: Word, Value: trimmed}
		if q := trimmed[0]; (q == '"' || q == '\'') && len(trimmed) >= 2 && trimmed[len(trimmed)-1] == q {
			child = Node{Kind: String, Quote: q, Value: trimmed[1 : len(trimmed)-1]}
		}
		fn.Children = []int{t.Add(child)}
	}
	return t.Add(fn)
}
