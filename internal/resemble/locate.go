package resemble

import (
	"strings"

	"github.com/ironsheep/css-resemble-image/internal/cssvalue"
)

// FunctionName is the CSS function this package rewrites. Matching is
// case-sensitive.
const FunctionName = "resemble-image"

// Call is a resemble-image call found in a value tree.
type Call struct {
	// Index of the function node in the tree.
	Index int
	Name  string
	// Args holds the argument groups, split on commas.
	Args [][]int
	// Source is the unquoted url argument.
	Source string
	// Spacing is the source text of the second argument, or empty.
	Spacing string
}

// Locate returns the resemble-image calls in tree, in source order.
//
// A call whose first argument is not a url(...) with a single string or
// word inside is skipped and left for the browser. The tree is not modified.
func Locate(tree *cssvalue.Tree) []Call {
	var calls []Call
	tree.Walk(func(i int, n *cssvalue.Node) bool {
		if n.Kind != cssvalue.Function || n.Value != FunctionName {
			return true
		}
		args := tree.Args(i)
		src, ok := urlSource(tree, args)
		if !ok {
			return true
		}

		call := Call{Index: i, Name: n.Value, Args: args, Source: src}
		if len(args) > 1 {
			call.Spacing = tree.Text(args[1])
		}
		calls = append(calls, call)
		return false
	})
	return calls
}

func urlSource(tree *cssvalue.Tree, args [][]int) (string, bool) {
	if len(args) == 0 || len(args[0]) != 1 {
		return "", false
	}
	fn := tree.Node(args[0][0])
	if fn.Kind != cssvalue.Function || !strings.EqualFold(fn.Value, "url") {
		return "", false
	}

	var inner []int
	for _, c := range fn.Children {
		switch tree.Node(c).Kind {
		case cssvalue.Space, cssvalue.Comment:
		default:
			inner = append(inner, c)
		}
	}
	if len(inner) != 1 {
		return "", false
	}

	arg := tree.Node(inner[0])
	if arg.Kind != cssvalue.String && arg.Kind != cssvalue.Word {
		return "", false
	}
	if strings.TrimSpace(arg.Value) == "" {
		return "", false
	}
	return arg.Value, true
}
