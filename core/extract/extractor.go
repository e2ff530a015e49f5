// Package extract implements the Extractor interface.
// It prepares pasted or fetched HTML for conversion by:
//  1. Removing elements whose text is not document content (scripts,
//     styles, form controls, embedded objects)
//  2. Optionally narrowing a full page to its content container
//     (<main>, <article>, or <body>)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before conversion. Their text would otherwise
// leak into the Markdown verbatim.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"meta", "link",
	"iframe", "object", "embed",
	"svg", "canvas",
	"button", "input", "select", "textarea",
}

// pageNoiseSelectors are also removed in container mode, where the input is
// a whole web page rather than a pasted fragment.
var pageNoiseSelectors = []string{
	"nav", "footer", "aside",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLExtractor strips noise from HTML and returns the cleaned fragment.
type HTMLExtractor struct {
	container bool
}

// Option configures an HTMLExtractor.
type Option func(*HTMLExtractor)

// WithContainer narrows the output to the page's main content container.
func WithContainer(enabled bool) Option {
	return func(e *HTMLExtractor) { e.container = enabled }
}

// New creates an HTMLExtractor.
func New(opts ...Option) *HTMLExtractor {
	e := &HTMLExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract takes raw HTML and returns the inner HTML of the selected
// container with noise elements removed.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	content := doc.Find("body").First()
	if e.container {
		for _, sel := range pageNoiseSelectors {
			doc.Find(sel).Remove()
		}
		// <main> is the most semantically correct, then <article>, then <body>.
		for _, tag := range []string{"main", "article", "body"} {
			sel := doc.Find(tag)
			if sel.Length() > 0 {
				content = sel.First()
				break
			}
		}
	}

	if content.Length() == 0 {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}

// Title returns the document's <title> text, or "" when there is none.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
