package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gaurav-prasanna/paste2md/core"
)

// ErrUnknownFormat is returned by Select for an unregistered format name.
var ErrUnknownFormat = errors.New("unknown output format")

var formats = map[string]func() core.Renderer{
	"markdown": func() core.Renderer { return NewMarkdownRenderer() },
	"html":     func() core.Renderer { return NewHTMLRenderer() },
	"json":     func() core.Renderer { return NewJSONRenderer() },
	"pdf":      func() core.Renderer { return NewPDFRenderer() },
}

// Select returns a new renderer for the named format.
func Select(format string) (core.Renderer, error) {
	newRenderer, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, format, Formats())
	}
	return newRenderer(), nil
}

// Formats lists the format names Select accepts, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
