// Package core defines the pipeline interfaces for paste2md.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// FetchResult holds the decoded HTML and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	HTML        string
}

// DocumentMetadata describes where a converted document came from and how
// it was converted.
type DocumentMetadata struct {
	Source      string `json:"source" yaml:"source"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Flavor      string `json:"flavor" yaml:"flavor"`
	Engine      string `json:"engine" yaml:"engine"`
	ConvertedAt string `json:"converted_at" yaml:"converted_at"` // ISO8601
}

// Heading is a single heading found in the Markdown.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink or autolink found in the Markdown.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference found in the Markdown.
type Image struct {
	Alt string `json:"alt"`
	Src string `json:"src"`
}

// DocumentStructure holds structural counts parsed back out of the Markdown.
type DocumentStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	Images     []Image   `json:"images"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	ListItems  int       `json:"list_items"`
	Quotes     int       `json:"quotes"`
}

// DocumentJSON is the complete JSON report for one conversion.
type DocumentJSON struct {
	Metadata  DocumentMetadata  `json:"metadata"`
	Markdown  string            `json:"markdown"`
	Structure DocumentStructure `json:"structure"`
}

// Fetcher retrieves HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor strips noise from raw HTML before conversion.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts HTML into cleaned-up Markdown (the canonical format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
