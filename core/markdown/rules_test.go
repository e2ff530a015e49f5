package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "paragraph", src: "<p>Hello <b>world</b></p>", want: "\n\nHello **world**\n\n"},
		{name: "heading", src: "<h3>Three</h3>", want: "\n\n### Three\n\n"},
		{name: "heading six", src: "<h6>Six</h6>", want: "\n\n###### Six\n\n"},
		{name: "line break", src: "a<br>b", want: "a  \nb"},
		{name: "emphasis", src: "<em>x</em> <i>y</i>", want: "_x_ _y_"},
		{name: "cite is plain", src: "<cite>c</cite>", want: "c"},
		{name: "strong", src: "<strong>x</strong><b>y</b>", want: "**x****y**"},
		{name: "strikethrough", src: "<del>a</del><s>b</s><strike>c</strike>", want: "~~a~~~~b~~~~c~~"},
		{name: "sup is plain", src: "x<sup>2</sup>", want: "x2"},
		{name: "inline code", src: "<p>run <code>go test</code></p>", want: "\n\nrun `go test`\n\n"},
		{name: "kbd is plain", src: "<kbd>Ctrl</kbd>", want: "Ctrl"},
		{
			name: "code block is literal",
			src:  "<pre><code>a &lt; b <em>x</em>\n  y</code></pre>",
			want: "\n\n```\na < b x\n  y\n```\n\n",
		},
		{
			name: "code with siblings inside pre",
			src:  "<pre><code>x</code> tail</pre>",
			want: "\n\n```\nx\n```\n\n",
		},
		{
			name: "pre without code",
			src:  "<pre>raw <code>x</code></pre>",
			want: "\n\nraw `x`\n\n",
		},
		{name: "autolink", src: `<a href="http://x">http://x</a>`, want: "<http://x>"},
		{name: "mailto autolink", src: `<a href="mailto:a@b.com">a@b.com</a>`, want: "<a@b.com>"},
		{name: "titled link", src: `<a href="http://x" title="T">text</a>`, want: `[text](http://x "T")`},
		{name: "plain link", src: `<a href="/docs">docs</a>`, want: "[docs](/docs)"},
		{name: "anchor without href", src: `<a name="top">top</a>`, want: "top"},
		{name: "image", src: `<img src="a.png" alt="A" title="T">`, want: `![A](a.png "T")`},
		{name: "image without alt", src: `<img src="a.png">`, want: "![](a.png)"},
		{name: "image without src", src: `<img alt="A">`, want: ""},
		{
			name: "blockquote",
			src:  "<blockquote><p>one</p><p>two</p></blockquote>",
			want: "\n\n> one\n> \n> two\n\n",
		},
		{
			name: "unordered list",
			src:  "<ul><li>one</li><li>two</li></ul>",
			want: "\n\n*   one\n*   two\n\n",
		},
		{
			name: "ordered list skips text siblings",
			src:  "<ol><li>a</li> text <li>b</li>\n<li>c</li></ol>",
			want: "\n\n1.  a\n2.  b\n3.  c\n\n",
		},
		{
			name: "nested list",
			src:  "<ul><li>a<ul><li>b</li></ul></li></ul>",
			want: "\n\n*   a\n    *   b\n\n",
		},
		{
			name: "paragraphs inside items",
			src:  "<ul><li><p>x</p></li><li>y<br>z</li></ul>",
			want: "\n\n*   x\n*   y  \n    z\n\n",
		},
		{
			name: "table",
			src:  "<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>",
			want: "\n\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n\n",
		},
		{
			// Whitespace text between cells is not filtered like it is
			// between list items.
			name: "table keeps text between cells",
			src:  "<table><tr><td>a</td>\n<td>b</td></tr></table>",
			want: "\n\n\n| a |\n b |\n\n",
		},
		{name: "block fallback", src: "<section>s</section>", want: "\n\ns\n\n"},
		{name: "inline fallback", src: "<span>s</span>", want: "s"},
		{name: "horizontal rule", src: "<hr>", want: "\n\n* * *\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, Basic, tt.src))
		})
	}
}

func TestPandocRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "setext h1", src: "<h1>Title</h1>", want: "\n\nTitle\n=====\n\n"},
		{name: "setext h2", src: "<h2>Sub</h2>", want: "\n\nSub\n---\n\n"},
		{name: "setext counts runes", src: "<h1>Café</h1>", want: "\n\nCafé\n====\n\n"},
		{name: "atx h3", src: "<h3>x</h3>", want: "\n\n### x\n\n"},
		{name: "superscript", src: "x<sup>2</sup>", want: "x^2^"},
		{name: "subscript", src: "H<sub>2</sub>O", want: "H~2~O"},
		{name: "line break", src: "a<br>b", want: "a\\\nb"},
		{name: "horizontal rule", src: "<hr>", want: "\n\n* * * * *\n\n"},
		{name: "emphasis", src: "<em>a</em><i>b</i><cite>c</cite><var>d</var>", want: "*a**b**c**d*"},
		{name: "kbd", src: "<kbd>Ctrl</kbd> <samp>out</samp> <tt>tt</tt>", want: "`Ctrl` `out` `tt`"},
		{name: "strong unchanged", src: "<b>x</b>", want: "**x**"},
		{
			name: "unordered list",
			src:  "<ul><li>one</li><li>two</li></ul>",
			want: "\n\n-   one\n-   two\n\n",
		},
		{
			name: "nested list",
			src:  "<ul><li>a<ul><li>b</li></ul></li></ul>",
			want: "\n\n-   a\n    -   b\n\n",
		},
		{
			name: "item indents every continuation line",
			src:  "<ul><li>a<br><br>b</li></ul>",
			want: "\n\n-   a\\\n    \\\n    b\n\n",
		},
		{name: "titled link", src: `<a href="http://x" title="T">text</a>`, want: `[text](http://x "T")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, Pandoc, tt.src))
		})
	}
}

func TestOrderedListNumbering(t *testing.T) {
	var b strings.Builder
	b.WriteString("<ol>")
	for _, item := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		b.WriteString("\n<li>" + item + "</li>")
	}
	b.WriteString("</ol>")

	basic := strings.Split(strings.TrimSpace(render(t, Basic, b.String())), "\n")
	require.Len(t, basic, 10)
	assert.Equal(t, "2.  b", basic[1])
	assert.Equal(t, "10.  j", basic[9])

	pandoc := strings.Split(strings.TrimSpace(render(t, Pandoc, b.String())), "\n")
	require.Len(t, pandoc, 10)
	assert.Equal(t, "2.  b", pandoc[1])
	assert.Equal(t, "10. j", pandoc[9])
}

func TestNewRuleTableEndsWithFallback(t *testing.T) {
	for _, f := range []Flavor{Basic, Pandoc} {
		rules := NewRuleTable(f).Rules()
		require.NotEmpty(t, rules)
		assert.Equal(t, "fallback", rules[len(rules)-1].Name, f.String())
	}
}

func TestParseFlavor(t *testing.T) {
	tests := []struct {
		in      string
		want    Flavor
		wantErr bool
	}{
		{in: "", want: Basic},
		{in: "basic", want: Basic},
		{in: " Pandoc ", want: Pandoc},
		{in: "gfm", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlavor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFlavor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "Flavor(9)", Flavor(9).String())
}
