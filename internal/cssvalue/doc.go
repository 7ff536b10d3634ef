// Package cssvalue parses a single CSS property value into a small node tree.
//
// The model follows the usual value-parser shape: words, strings, spaces,
// dividers, comments and functions with nested children. Tokenizing is done
// by github.com/gorilla/css/scanner. Every node keeps its source text, so
//
//	cssvalue.Parse(s).String() == s
//
// holds for any input. Comma-separated background layers are siblings split
// by "," Div nodes; a rewrite of one layer leaves the others byte-identical.
//
// Nodes live in an arena (Tree.Nodes) and are addressed by index. Replacing
// a node's children means pointing its Children slice at new indices; no
// back-references exist, so copying a Tree copies no hidden aliasing beyond
// the shared Children slices.
package cssvalue
