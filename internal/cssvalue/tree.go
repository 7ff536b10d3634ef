package cssvalue

import "strings"

// Kind identifies the type of a value tree node.
type Kind int

const (
	// Word is any bare token: identifiers, numbers, dimensions,
	// percentages, hashes and stray characters.
	Word Kind = iota
	// String is a quoted string; Value holds the text between the quotes.
	String
	// Space is a run of whitespace.
	Space
	// Div is a separator: ",", "/" or ":".
	Div
	// Function is a name followed by a parenthesised child list.
	Function
	// Comment is a /* ... */ comment, stored verbatim.
	Comment
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case String:
		return "string"
	case Space:
		return "space"
	case Div:
		return "div"
	case Function:
		return "function"
	case Comment:
		return "comment"
	}
	return "unknown"
}

// Node is one entry of a value tree.
type Node struct {
	Kind  Kind
	Value string

	// Quote is the quote character of a String node.
	Quote byte

	// Before and After hold whitespace just inside the parentheses of a
	// Function node that was scanned as a single url(...) token.
	Before, After string

	// Children lists the indices of a Function node's children in order.
	Children []int

	// Unclosed is set for a Function whose closing parenthesis is missing
	// from the input.
	Unclosed bool
}

// Tree is a parsed property value stored as an arena of nodes. Nodes refer
// to their children by index; Root lists the top-level nodes in order.
//
// Rewrites append new nodes and re-point a parent's child list, so indices
// held by callers stay valid for the lifetime of the tree.
type Tree struct {
	Nodes []Node
	Root  []int
}

// Add appends n to the arena and returns its index. The node is not linked
// into the tree.
func (t *Tree) Add(n Node) int {
	t.Nodes = append(t.Nodes, n)
	return len(t.Nodes) - 1
}

// Node returns a pointer to the node at index i.
func (t *Tree) Node(i int) *Node {
	return &t.Nodes[i]
}

// Walk visits every linked node depth-first in source order. If fn returns
// false the node's children are skipped.
func (t *Tree) Walk(fn func(i int, n *Node) bool) {
	t.walk(t.Root, fn)
}

func (t *Tree) walk(indices []int, fn func(i int, n *Node) bool) {
	for _, i := range indices {
		n := &t.Nodes[i]
		if fn(i, n) && n.Kind == Function {
			t.walk(n.Children, fn)
		}
	}
}

// Args splits the children of the function node at index i into argument
// groups separated by "," divs. Leading and trailing whitespace and comments
// are trimmed from each group. A function with no children has no groups.
func (t *Tree) Args(i int) [][]int {
	children := t.Nodes[i].Children
	if len(children) == 0 {
		return nil
	}

	groups := [][]int{nil}
	for _, c := range children {
		n := &t.Nodes[c]
		if n.Kind == Div && n.Value == "," {
			groups = append(groups, nil)
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], c)
	}
	for g := range groups {
		groups[g] = t.trim(groups[g])
	}
	return groups
}

func (t *Tree) trim(group []int) []int {
	blank := func(i int) bool {
		k := t.Nodes[i].Kind
		return k == Space || k == Comment
	}
	for len(group) > 0 && blank(group[0]) {
		group = group[1:]
	}
	for len(group) > 0 && blank(group[len(group)-1]) {
		group = group[:len(group)-1]
	}
	return group
}

// String serialises the whole tree.
func (t *Tree) String() string {
	return t.Text(t.Root)
}

// Text serialises the given nodes, in order, with their subtrees.
func (t *Tree) Text(indices []int) string {
	var b strings.Builder
	for _, i := range indices {
		t.write(&b, i)
	}
	return b.String()
}

func (t *Tree) write(b *strings.Builder, i int) {
	n := &t.Nodes[i]
	switch n.Kind {
	case String:
		b.WriteByte(n.Quote)
		b.WriteString(n.Value)
		b.WriteByte(n.Quote)
	case Function:
		b.WriteString(n.Value)
		b.WriteByte('(')
		b.WriteString(n.Before)
		for _, c := range n.Children {
			t.write(b, c)
		}
		b.WriteString(n.After)
		if !n.Unclosed {
			b.WriteByte(')')
		}
	default:
		b.WriteString(n.Value)
	}
}

// AppendParsed parses s and appends its nodes to the arena, returning the
// indices of its top-level nodes. The new nodes are not linked into the
// tree; callers attach them, typically as a function's children.
func (t *Tree) AppendParsed(s string) []int {
	sub := Parse(s)
	offset := len(t.Nodes)
	for _, n := range sub.Nodes {
		if len(n.Children) > 0 {
			shifted := make([]int, len(n.Children))
			for j, c := range n.Children {
				shifted[j] = c + offset
			}
			n.Children = shifted
		}
		t.Nodes = append(t.Nodes, n)
	}
	roots := make([]int, len(sub.Root))
	for j, r := range sub.Root {
		roots[j] = r + offset
	}
	return roots
}
