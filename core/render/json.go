// Package render — JSON renderer.
// Builds the structured JSON report from Markdown and document metadata.
// The Markdown is parsed back with goldmark to list its headings, links and
// images and to count code blocks, tables, list items and quotes.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/paste2md/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{md: newGoldmark()}
}

// Render converts Markdown and metadata into the JSON report.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	structure, err := r.Structure(markdown)
	if err != nil {
		return nil, err
	}

	doc := core.DocumentJSON{
		Metadata:  meta,
		Markdown:  markdown,
		Structure: structure,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Structure parses markdown and collects its structural elements.
func (r *JSONRenderer) Structure(markdown string) (core.DocumentStructure, error) {
	src := []byte(markdown)
	root := r.md.Parser().Parse(text.NewReader(src))

	s := core.DocumentStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
		Images:   []core.Image{},
	}
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, core.Heading{Level: n.Level, Text: plainText(n, src)})
		case *ast.Link:
			s.Links = append(s.Links, core.Link{Text: plainText(n, src), Href: string(n.Destination)})
		case *ast.AutoLink:
			s.Links = append(s.Links, core.Link{Text: string(n.Label(src)), Href: string(n.URL(src))})
		case *ast.Image:
			s.Images = append(s.Images, core.Image{Alt: plainText(n, src), Src: string(n.Destination)})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			s.CodeBlocks++
		case *east.Table:
			s.Tables++
		case *ast.ListItem:
			s.ListItems++
		case *ast.Blockquote:
			s.Quotes++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return core.DocumentStructure{}, fmt.Errorf("walking markdown: %w", err)
	}
	return s, nil
}

// plainText concatenates the literal text below n.
func plainText(n ast.Node, src []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
