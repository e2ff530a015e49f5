// Package render — HTML renderer.
// Renders the converted Markdown back to rich text with goldmark, giving a
// standalone page that can be previewed or pasted into an editor.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/gaurav-prasanna/paste2md/core"
)

// HTMLRenderer renders Markdown as an HTML document.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with GFM tables, strikethrough
// and autolinked URLs. Raw HTML in the Markdown is not passed through.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{md: newGoldmark()}
}

func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// Render converts Markdown into an HTML page titled from meta.
func (r *HTMLRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	title := meta.Title
	if title == "" {
		title = meta.Source
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
