package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/paste2md/core/dom"
)

func parse(t *testing.T, src string) *dom.Tree {
	t.Helper()
	tree, err := dom.ParseString(src)
	require.NoError(t, err)
	return tree
}

func render(t *testing.T, f Flavor, src string) string {
	t.Helper()
	return Convert(parse(t, src), NewRuleTable(f))
}

// postOrder lists elements depth-first, children before parents, visiting
// siblings right to left. It is a valid bottom-up order that differs from
// the breadth-first one.
func postOrder(tree *dom.Tree) []dom.ID {
	var order []dom.ID
	var walk func(id dom.ID)
	walk = func(id dom.ID) {
		children := tree.Node(id).Children
		for i := len(children) - 1; i >= 0; i-- {
			if tree.Node(children[i]).Kind == dom.Element {
				walk(children[i])
			}
		}
		if id != tree.Root() {
			order = append(order, id)
		}
	}
	walk(tree.Root())
	return order
}

func TestConvertOrderIndependent(t *testing.T) {
	docs := []string{
		`<h1>Title</h1><p>Hello <b>world</b></p>`,
		`<ol><li>a</li> x <li>b<ul><li><em>c</em></li></ul></li></ol>`,
		`<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`,
		`<blockquote><p>q <a href="http://x" title="T">t</a></p></blockquote><pre><code>x &lt; y</code></pre>`,
	}
	for _, f := range []Flavor{Basic, Pandoc} {
		table := NewRuleTable(f)
		for _, src := range docs {
			tree := parse(t, src)
			assert.Equal(t, Convert(tree, table), convert(tree, table, postOrder(tree)), "%s: %s", f, src)
		}
	}
}

func TestConvertReusesTree(t *testing.T) {
	tree := parse(t, `<ul><li>one</li><li>two</li></ul>`)
	basic := NewRuleTable(Basic)
	pandoc := NewRuleTable(Pandoc)

	first := Convert(tree, basic)
	assert.Equal(t, "\n\n-   one\n-   two\n\n", Convert(tree, pandoc))
	assert.Equal(t, first, Convert(tree, basic))
}

func TestBlankElision(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "whitespace div", src: "<div>  \n\t </div>", want: ""},
		{name: "nested blank containers", src: "<section><div><p><span> </span></p></div></section>", want: ""},
		{name: "horizontal rule", src: "<hr>", want: "\n\n* * *\n\n"},
		{name: "line break", src: "<br>", want: "  \n"},
		{name: "empty link kept", src: `<a href="x"></a>`, want: "[](x)"},
		{name: "empty cell kept", src: "<table><tr><td></td></tr></table>", want: "\n\n\n|  |\n\n"},
		{name: "blank div next to rule", src: "<div> </div><hr>", want: "\n\n* * *\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, Basic, tt.src))
		})
	}
}

func TestNewTable(t *testing.T) {
	identity := Rule{Name: "fallback", Match: Always(), Generate: Identity}

	_, err := NewTable()
	assert.ErrorIs(t, err, ErrMissingFallback)

	_, err = NewTable(Rule{Name: "p", Match: TagEqual("p"), Generate: Identity})
	assert.ErrorIs(t, err, ErrMissingFallback)

	_, err = NewTable(identity, Rule{Name: "p", Match: TagEqual("p"), Generate: Identity})
	assert.ErrorIs(t, err, ErrMissingFallback, "catch-all must be last")

	_, err = NewTable(Rule{Name: "broken", Match: TagEqual("p")}, identity)
	assert.Error(t, err)

	table, err := NewTable(identity)
	require.NoError(t, err)
	assert.Len(t, table.Rules(), 1)
}

func TestTableFirstMatchWins(t *testing.T) {
	table, err := NewTable(
		Rule{Name: "shout", Match: TagIn("b", "strong"), Generate: func(c string, _ Node) string { return "!" + c + "!" }},
		Rule{Name: "never", Match: TagEqual("b"), Generate: func(string, Node) string { return "unreachable" }},
		Rule{Name: "titled", Match: Predicate(func(n Node) bool { return n.Attr("title") != "" }), Generate: func(c string, n Node) string {
			return c + "(" + n.Attr("title") + ")"
		}},
		Rule{Name: "fallback", Match: Always(), Generate: Identity},
	)
	require.NoError(t, err)

	got := Convert(parse(t, `<b>x</b> <span title="t">y</span> <i>z</i>`), table)
	assert.Equal(t, "!x! y(t) z", got)
}

func TestNodeView(t *testing.T) {
	tree := parse(t, `<ul><li>a</li>txt<li id="two">b<em>c</em></li></ul>`)

	var seen []string
	table, err := NewTable(
		Rule{Name: "probe", Match: TagEqual("li"), Generate: func(c string, n Node) string {
			parent, ok := n.Parent()
			require.True(t, ok)
			assert.Equal(t, "ul", parent.Tag())
			assert.True(t, n.ParentIs("ul"))
			assert.True(t, n.HasAncestor("body"))
			assert.False(t, n.HasAncestor("ol"))
			assert.False(t, n.OnlyChild())
			seen = append(seen, n.Attr("id")+":"+c)
			if n.Attr("id") == "two" {
				children := n.Children()
				require.Len(t, children, 2)
				assert.False(t, children[0].IsElement())
				assert.Equal(t, "[c]", children[1].Generated())
				assert.Equal(t, "bc", n.TextContent())
				assert.Equal(t, 1, n.Index())
			}
			return c
		}},
		Rule{Name: "em", Match: TagEqual("em"), Generate: func(c string, _ Node) string { return "[" + c + "]" }},
		Rule{Name: "fallback", Match: Always(), Generate: Identity},
	)
	require.NoError(t, err)

	assert.Equal(t, "atxtb[c]", Convert(tree, table))
	assert.ElementsMatch(t, []string{":a", "two:b[c]"}, seen)
}
