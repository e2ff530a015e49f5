package normalize

import (
	"fmt"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/gaurav-prasanna/paste2md/core/cleanup"
	"github.com/gaurav-prasanna/paste2md/core/markdown"
)

// ReferenceNormalizer converts HTML with html-to-markdown instead of the
// rule engine. It is configured to approximate the chosen flavor and is
// useful for comparing output on unusual markup.
type ReferenceNormalizer struct {
	settings
	conv *converter.Converter
}

// NewReference creates a ReferenceNormalizer. It accepts the same options
// as New.
func NewReference(opts ...Option) *ReferenceNormalizer {
	s := newSettings(opts)
	cm := []commonmark.OptionFunc{
		commonmark.WithHeadingStyle("atx"),
		commonmark.WithEmDelimiter("_"),
		commonmark.WithHorizontalRule("* * *"),
	}
	if s.flavor == markdown.Pandoc {
		cm = []commonmark.OptionFunc{
			commonmark.WithHeadingStyle("setext"),
			commonmark.WithEmDelimiter("*"),
			commonmark.WithHorizontalRule("* * * * *"),
		}
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(cm...),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &ReferenceNormalizer{settings: s, conv: conv}
}

// Normalize converts HTML to Markdown and runs the shared cleanup chain.
func (r *ReferenceNormalizer) Normalize(html string) (string, error) {
	html, err := r.prepare(html)
	if err != nil {
		return "", err
	}
	md, err := r.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return cleanup.Cleanup(md), nil
}

// NormalizeBytes is Normalize for raw input.
func (r *ReferenceNormalizer) NormalizeBytes(html []byte) (string, error) {
	if !utf8.Valid(html) {
		return "", ErrInvalidInput
	}
	return r.Normalize(string(html))
}
