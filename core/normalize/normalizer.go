// Package normalize implements the Normalizer interface.
// It converts pasted HTML into Markdown, which serves as the
// canonical intermediate format for all downstream renderers:
//
//	escape list markers → parse → rule engine → tidy → cleanup
package normalize

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gaurav-prasanna/paste2md/core"
	"github.com/gaurav-prasanna/paste2md/core/cleanup"
	"github.com/gaurav-prasanna/paste2md/core/dom"
	"github.com/gaurav-prasanna/paste2md/core/markdown"
)

// ErrInvalidInput is returned for input that is not UTF-8 text.
var ErrInvalidInput = errors.New("input is not valid UTF-8 text")

// settings are shared by both normalizers.
type settings struct {
	flavor    markdown.Flavor
	extractor core.Extractor
}

// Option configures a normalizer.
type Option func(*settings)

// WithFlavor selects the rule table variant. Defaults to markdown.Basic.
func WithFlavor(f markdown.Flavor) Option {
	return func(s *settings) { s.flavor = f }
}

// WithExtractor strips noise from the HTML before it is converted.
func WithExtractor(e core.Extractor) Option {
	return func(s *settings) { s.extractor = e }
}

func newSettings(opts []Option) settings {
	s := settings{flavor: markdown.Basic}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// prepare rejects non-UTF-8 input and runs the extractor, if any.
func (s settings) prepare(html string) (string, error) {
	if !utf8.ValidString(html) {
		return "", ErrInvalidInput
	}
	if s.extractor == nil {
		return html, nil
	}
	extracted, err := s.extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extracting content: %w", err)
	}
	return extracted, nil
}

// MarkdownNormalizer converts HTML to Markdown with the rule engine.
type MarkdownNormalizer struct {
	settings
	table *markdown.Table
}

// New creates a MarkdownNormalizer.
func New(opts ...Option) *MarkdownNormalizer {
	s := newSettings(opts)
	return &MarkdownNormalizer{settings: s, table: markdown.NewRuleTable(s.flavor)}
}

// Flavor returns the rule table variant in use.
func (n *MarkdownNormalizer) Flavor() markdown.Flavor { return n.flavor }

// Normalize converts an HTML fragment into cleaned-up Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	html, err := n.prepare(html)
	if err != nil {
		return "", err
	}

	tree, err := dom.ParseString(cleanup.EscapeListMarkers(html))
	if err != nil {
		return "", fmt.Errorf("building document tree: %w", err)
	}

	raw := markdown.Convert(tree, n.table)
	return cleanup.Cleanup(cleanup.Tidy(raw)), nil
}

// NormalizeBytes is Normalize for raw input, rejecting anything that is not
// UTF-8 text before parsing.
func (n *MarkdownNormalizer) NormalizeBytes(html []byte) (string, error) {
	if !utf8.Valid(html) {
		return "", ErrInvalidInput
	}
	return n.Normalize(string(html))
}
