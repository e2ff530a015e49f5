// Package markdown converts a dom.Tree into Markdown text by applying an
// ordered rule table bottom-up: every element's children are converted
// before the element itself, and the first rule matching an element
// produces its Markdown from the children's output.
package markdown

import (
	"slices"
	"strings"

	"github.com/gaurav-prasanna/paste2md/core/dom"
)

// voidElements never hold content and are never elided as blank.
var voidElements = []string{
	"area", "base", "br", "col", "command", "embed", "hr", "img", "input",
	"keygen", "link", "meta", "param", "source", "track", "wbr",
}

// blockElements get blank-line padding from the block fallback rule.
var blockElements = []string{
	"address", "article", "aside", "audio", "blockquote", "body",
	"canvas", "center", "dd", "dir", "div", "dl", "dt", "fieldset", "figcaption",
	"figure", "footer", "form", "frameset", "h1", "h2", "h3", "h4", "h5", "h6",
	"header", "hgroup", "hr", "html", "isindex", "li", "main", "menu", "nav",
	"noframes", "noscript", "ol", "output", "p", "pre", "section", "table",
	"tbody", "td", "tfoot", "th", "thead", "tr", "ul",
}

// IsVoid reports whether tag names a void element.
func IsVoid(tag string) bool { return slices.Contains(voidElements, tag) }

// IsBlock reports whether tag names a block-level element.
func IsBlock(tag string) bool { return slices.Contains(blockElements, tag) }

// Convert returns the Markdown for t's root using table. The tree is not
// modified; generated text is kept per call, so t and table may be shared.
func Convert(t *dom.Tree, table *Table) string {
	return convert(t, table, t.BottomUp())
}

// convert applies table to the elements in order, which must list every
// element below the root with children ahead of their parents.
func convert(t *dom.Tree, table *Table, order []dom.ID) string {
	out := make([]string, t.Len())
	for _, id := range order {
		n := Node{tree: t, id: id, out: out}
		out[id] = generate(n, table)
	}
	return Node{tree: t, id: t.Root(), out: out}.content()
}

func generate(n Node, table *Table) string {
	content := n.content()
	if isBlank(content) && !keepsBlank(n.Tag()) {
		return ""
	}
	return table.Lookup(n).Generate(content, n)
}

// keepsBlank reports elements that reach their rule even with no content.
func keepsBlank(tag string) bool {
	switch tag {
	case "a", "th", "td":
		return true
	}
	return IsVoid(tag)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
