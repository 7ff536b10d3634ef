package resemble

import (
	"github.com/ironsheep/css-resemble-image/internal/cssvalue"
	"github.com/ironsheep/css-resemble-image/internal/gradient"
)

// GradientName is the function name substituted for a matched call.
const GradientName = "linear-gradient"

// Rewrite replaces the call's node with linear-gradient(direction, stops...).
// An empty direction is omitted. Only the call's own node changes; its
// siblings and every other layer keep their nodes and text.
func Rewrite(tree *cssvalue.Tree, call Call, stops []gradient.Stop, direction string) {
	body := gradient.CSS(stops, direction)
	// Strip "linear-gradient(" and ")" and graft the argument list.
	args := body[len(GradientName)+1 : len(body)-1]
	children := tree.AppendParsed(args)

	n := tree.Node(call.Index)
	n.Value = GradientName
	n.Children = children
	n.Before, n.After = "", ""
	n.Unclosed = false
}
