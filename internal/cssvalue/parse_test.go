package cssvalue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		``,
		`red`,
		`url("foo.jpg")`,
		`url( 'foo.jpg' )`,
		`url(./../../docs/waves.jpg)`,
		`url("foo.jpg"), resemble-image(url("x.jpg"))`,
		`resemble-image(url("http://localhost:8080"), 50%)`,
		`resemble-image( url(x.jpg) ,100px )`,
		`linear-gradient(90deg, #fff 0%, rgba(0, 0, 0, 0.5) 100%) no-repeat`,
		`10px/20px "Helvetica Neue", sans-serif`,
		`a /* note */ b`,
		`calc(100% - (2 * 10px))`,
		`foo(bar`,
		`oops)`,
		`-5 +3 .5em`,
		`"unterminated`,
		`x /* unterminated`,
		"tab\tand\nnewline",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, Parse(in).String())
		})
	}
}

func TestParse_Structure(t *testing.T) {
	tree := Parse(`url("foo.jpg"), resemble-image(url("x.jpg"), 50%)`)

	kinds := make([]Kind, len(tree.Root))
	for i, idx := range tree.Root {
		kinds[i] = tree.Node(idx).Kind
	}
	want := []Kind{Function, Div, Space, Function}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("root kinds mismatch (-want +got):\n%s", diff)
	}

	url := tree.Node(tree.Root[0])
	assert.Equal(t, "url", url.Value)
	require.Len(t, url.Children, 1)
	str := tree.Node(url.Children[0])
	assert.Equal(t, String, str.Kind)
	assert.Equal(t, "foo.jpg", str.Value)
	assert.Equal(t, byte('"'), str.Quote)

	call := tree.Node(tree.Root[3])
	assert.Equal(t, "resemble-image", call.Value)
	assert.False(t, call.Unclosed)
}

func TestParse_BareURL(t *testing.T) {
	tree := Parse(`url( ./img/a.png )`)
	fn := tree.Node(tree.Root[0])

	require.Len(t, fn.Children, 1)
	child := tree.Node(fn.Children[0])
	assert.Equal(t, Word, child.Kind)
	assert.Equal(t, "./img/a.png", child.Value)
	assert.Equal(t, " ", fn.Before)
	assert.Equal(t, " ", fn.After)
}

func TestParse_Unclosed(t *testing.T) {
	tree := Parse(`foo(bar`)
	fn := tree.Node(tree.Root[0])
	assert.True(t, fn.Unclosed)
	assert.Equal(t, "foo(bar", tree.String())
}

func TestArgs(t *testing.T) {
	tree := Parse(`resemble-image( url(x.jpg) , 100px /* spacing */ )`)
	call := tree.Root[0]

	args := tree.Args(call)
	require.Len(t, args, 2)
	assert.Equal(t, "url(x.jpg)", tree.Text(args[0]))
	assert.Equal(t, "100px", tree.Text(args[1]))
}

func TestArgs_Empty(t *testing.T) {
	tree := Parse(`resemble-image()`)
	assert.Nil(t, tree.Args(tree.Root[0]))
}

func TestArgs_EmptyGroups(t *testing.T) {
	tree := Parse(`f(a,,b,)`)
	args := tree.Args(tree.Root[0])
	require.Len(t, args, 4)
	assert.Empty(t, args[1])
	assert.Empty(t, args[3])
}

func TestWalk(t *testing.T) {
	tree := Parse(`a(b(c), d) e`)

	var names []string
	tree.Walk(func(i int, n *Node) bool {
		if n.Kind == Function {
			names = append(names, n.Value)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b"}, names)

	var visited int
	tree.Walk(func(i int, n *Node) bool {
		visited++
		return false
	})
	assert.Equal(t, len(tree.Root), visited)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "function", Function.String())
	assert.Equal(t, "div", Div.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestParse_BareParens(t *testing.T) {
	tree := Parse(`calc(100% - (2 * 10px))`)
	require.Len(t, tree.Root, 1)

	calc := tree.Node(tree.Root[0])
	assert.Equal(t, "calc", calc.Value)
	last := tree.Node(calc.Children[len(calc.Children)-1])
	assert.Equal(t, Function, last.Kind)
	assert.Equal(t, "", last.Value)
	assert.Equal(t, "2 * 10px", tree.Text(last.Children))
}

func TestAppendParsed(t *testing.T) {
	tree := Parse(`resemble-image(url(x.jpg)), red`)
	call := tree.Root[0]

	children := tree.AppendParsed(`90deg, rgba(0, 0, 0, 0.5) 0%, #fff 100%`)
	tree.Node(call).Value = "linear-gradient"
	tree.Node(call).Children = children

	assert.Equal(t, `linear-gradient(90deg, rgba(0, 0, 0, 0.5) 0%, #fff 100%), red`, tree.String())
	assert.Len(t, tree.Args(call), 3)
}
