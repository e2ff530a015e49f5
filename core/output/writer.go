// Package output handles file naming and writing for paste2md outputs.
// Without an output directory, rendered bytes go to stdout. With one,
// filenames are derived from the source: a URL becomes domain_path
// (e.g. example_com_docs.md), a file keeps its base name (notes.html →
// notes.md), and stdin becomes paste.md.
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// stdinName names output converted from standard input.
const stdinName = "paste"

// Writer writes rendered output to stdout or to a directory.
type Writer struct {
	OutputDir string
	stdout    io.Writer
}

// New creates a Writer. An empty outputDir writes to stdout; otherwise the
// directory is created if needed.
func New(outputDir string, stdout io.Writer) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, stdout: stdout}, nil
}

// ToStdout reports whether output goes to stdout.
func (w *Writer) ToStdout() bool { return w.OutputDir == "" }

// Write emits data for the given source. It returns the written path, or
// "" when writing to stdout.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	if w.ToStdout() {
		if _, err := w.stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "", nil
	}

	path := filepath.Join(w.OutputDir, Filename(source)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename derives an extension-less output name from a source, which is a
// URL, a file path, or "" / "-" for stdin.
func Filename(source string) string {
	switch {
	case source == "" || source == "-":
		return stdinName
	case strings.Contains(source, "://"):
		return filenameFromURL(source)
	}
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return stdinName
	}
	return sanitize(base)
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback: sanitize the raw string.
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces characters outside [A-Za-z0-9_-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
