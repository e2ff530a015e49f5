package markdown

import (
	"strings"

	"github.com/gaurav-prasanna/paste2md/core/dom"
)

// Node is the read-only view of a tree node handed to matchers and
// generators. Besides the node's own tag and attributes it exposes the
// text already generated for its children during the current conversion.
type Node struct {
	tree *dom.Tree
	id   dom.ID
	out  []string
}

// Tag returns the lower-cased element name.
func (n Node) Tag() string { return n.tree.Node(n.id).Tag }

// Is reports whether the node is an element with the given tag.
func (n Node) Is(tag string) bool {
	node := n.tree.Node(n.id)
	return node.Kind == dom.Element && node.Tag == tag
}

// Attr returns the named attribute, or "" when absent.
func (n Node) Attr(key string) string { return n.tree.Attr(n.id, key) }

// Parent returns the parent node. ok is false for the root.
func (n Node) Parent() (parent Node, ok bool) {
	p := n.tree.Node(n.id).Parent
	if p == dom.NoParent {
		return Node{}, false
	}
	return n.at(p), true
}

// ParentIs reports whether the parent is an element with the given tag.
func (n Node) ParentIs(tag string) bool {
	p, ok := n.Parent()
	return ok && p.Is(tag)
}

// HasAncestor reports whether any ancestor is an element with the given tag.
func (n Node) HasAncestor(tag string) bool {
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		if p.Is(tag) {
			return true
		}
	}
	return false
}

// Index returns the 0-based position among the parent's element children.
func (n Node) Index() int { return n.tree.ElementIndex(n.id) }

// Children returns all element and text children in document order.
func (n Node) Children() []Node {
	ids := n.tree.Node(n.id).Children
	children := make([]Node, len(ids))
	for i, c := range ids {
		children[i] = n.at(c)
	}
	return children
}

// FirstChild returns the first child of any kind.
func (n Node) FirstChild() (Node, bool) {
	ids := n.tree.Node(n.id).Children
	if len(ids) == 0 {
		return Node{}, false
	}
	return n.at(ids[0]), true
}

// OnlyChild reports whether the node has no siblings of any kind.
func (n Node) OnlyChild() bool {
	p, ok := n.Parent()
	return ok && len(p.tree.Node(p.id).Children) == 1
}

// IsElement reports whether the node is an element.
func (n Node) IsElement() bool { return n.tree.Node(n.id).Kind == dom.Element }

// Generated returns the Markdown produced for this element so far in the
// conversion. Children are always complete before their parent runs.
func (n Node) Generated() string { return n.out[n.id] }

// TextContent returns the literal character data below the node.
func (n Node) TextContent() string { return n.tree.TextContent(n.id) }

// content concatenates element children's generated text and text
// children's character data, in order.
func (n Node) content() string {
	var b strings.Builder
	for _, c := range n.tree.Node(n.id).Children {
		child := n.tree.Node(c)
		if child.Kind == dom.Text {
			b.WriteString(child.Text)
			continue
		}
		b.WriteString(n.out[c])
	}
	return b.String()
}

func (n Node) at(id dom.ID) Node {
	return Node{tree: n.tree, id: id, out: n.out}
}
