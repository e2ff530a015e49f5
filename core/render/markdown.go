// Package render provides output renderers for the paste2md pipeline.
// This file implements the Markdown renderer, a passthrough with an
// optional YAML front matter block.
package render

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/gaurav-prasanna/paste2md/core"
)

// MarkdownRenderer writes Markdown as-is. It's the simplest renderer
// since Markdown is already the canonical pipeline format.
type MarkdownRenderer struct {
	// FrontMatter prefixes the output with the document metadata as YAML.
	FrontMatter bool
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes, newline-terminated.
func (r *MarkdownRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	var out []byte
	if r.FrontMatter {
		fm, err := yaml.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("marshaling front matter: %w", err)
		}
		out = append(out, "---\n"...)
		out = append(out, fm...)
		out = append(out, "---\n\n"...)
	}
	if markdown != "" {
		out = append(out, markdown...)
		out = append(out, '\n')
	}
	return out, nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
