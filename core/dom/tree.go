// Package dom is the tree model consumed by the Markdown engine.
// It adapts golang.org/x/net/html parse trees into a flat arena of
// element and text nodes addressed by ID. Trees are immutable once built,
// so a single Tree can be converted many times, from many goroutines.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ID addresses a node inside its Tree.
type ID int

// NoParent is the Parent of the root node.
const NoParent ID = -1

// Kind distinguishes element nodes from text nodes.
type Kind int

const (
	Element Kind = iota
	Text
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single element or text node.
type Node struct {
	Kind     Kind
	Tag      string // lower-cased; empty for text nodes
	Text     string // decoded character data; text nodes only
	Attrs    map[string]string
	Children []ID
	Parent   ID
}

// Tree is an arena of nodes rooted at Root.
type Tree struct {
	nodes []Node
	root  ID
}

// Root returns the root node's ID.
func (t *Tree) Root() ID { return t.root }

// Len returns the number of nodes in the tree, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given ID.
func (t *Tree) Node(id ID) *Node { return &t.nodes[id] }

// Attr returns the value of the named attribute, or "" when absent.
func (t *Tree) Attr(id ID, key string) string {
	return t.nodes[id].Attrs[key]
}

// ElementIndex returns the 0-based position of id among the element
// children of its parent. Text siblings are not counted. The root
// reports 0.
func (t *Tree) ElementIndex(id ID) int {
	parent := t.nodes[id].Parent
	if parent == NoParent {
		return 0
	}
	i := 0
	for _, c := range t.nodes[parent].Children {
		if c == id {
			return i
		}
		if t.nodes[c].Kind == Element {
			i++
		}
	}
	return i
}

// TextContent concatenates the character data of every text node below id,
// in document order.
func (t *Tree) TextContent(id ID) string {
	var b strings.Builder
	t.writeText(&b, id)
	return b.String()
}

func (t *Tree) writeText(b *strings.Builder, id ID) {
	n := &t.nodes[id]
	if n.Kind == Text {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		t.writeText(b, c)
	}
}

// BottomUp returns every element reachable from the root, root excluded,
// ordered so that each node appears before its parent. The order is a
// breadth-first walk reversed: deeper levels always come first.
func (t *Tree) BottomUp() []ID {
	queue := []ID{t.root}
	for i := 0; i < len(queue); i++ {
		for _, c := range t.nodes[queue[i]].Children {
			if t.nodes[c].Kind == Element {
				queue = append(queue, c)
			}
		}
	}
	order := make([]ID, 0, len(queue)-1)
	for i := len(queue) - 1; i > 0; i-- {
		order = append(order, queue[i])
	}
	return order
}

// Parse parses an HTML document and returns a tree rooted at its <body>.
func Parse(r io.Reader) (*Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("parsing HTML: no body element")
	}
	return FromHTML(body), nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Tree, error) {
	return Parse(strings.NewReader(s))
}

// FromHTML builds a tree rooted at n. Comments, doctypes and other
// non-element, non-text nodes are dropped.
func FromHTML(n *html.Node) *Tree {
	t := &Tree{}
	t.root = t.add(n, NoParent)
	return t
}

func (t *Tree) add(n *html.Node, parent ID) ID {
	id := ID(len(t.nodes))
	if n.Type == html.TextNode {
		t.nodes = append(t.nodes, Node{Kind: Text, Text: n.Data, Parent: parent})
		return id
	}

	node := Node{
		Kind:   Element,
		Tag:    strings.ToLower(n.Data),
		Parent: parent,
	}
	if len(n.Attr) > 0 {
		node.Attrs = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			if _, seen := node.Attrs[a.Key]; !seen {
				node.Attrs[a.Key] = a.Val
			}
		}
	}
	t.nodes = append(t.nodes, node)

	var children []ID
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.TextNode {
			continue
		}
		children = append(children, t.add(c, id))
	}
	t.nodes[id].Children = children
	return id
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
