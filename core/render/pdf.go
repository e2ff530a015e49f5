// Package render — PDF renderer.
// Converts Markdown into a styled PDF using gofpdf.
// Handles ATX and setext headings, paragraphs, code blocks, quotes, rules
// and lists. Images are not rendered.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/paste2md/core"
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var (
	setextUnderline = regexp.MustCompile(`^(=+|-+)$`)
	ruleLine        = regexp.MustCompile(`^(\* ?){3,}$`)
	bulletItem      = regexp.MustCompile(`^[-*] +`)
	numberedItem    = regexp.MustCompile(`^\d+\. +`)
	italicMarkers   = regexp.MustCompile(`(^|\W)[*_]([^*_]+)[*_](\W|$)`)
	codeSpans       = regexp.MustCompile("`([^`]+)`")
	linkSyntax      = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]+\)`)
	autolinks       = regexp.MustCompile(`<([^<>\s]+)>`)
	escapes         = regexp.MustCompile(`\\([\\.*_#>-])`)
)

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate UTF-8 text before writing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	if meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Setext heading: text line followed by an === or --- underline.
		if i+1 < len(lines) && setextUnderline.MatchString(lines[i+1]) {
			level := 1
			if lines[i+1][0] == '-' {
				level = 2
			}
			renderHeading(pdf, tr(cleanInlineMarkdown(trimmed)), level)
			i++
			continue
		}

		if strings.HasPrefix(line, "#") {
			level := len(line) - len(strings.TrimLeft(line, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(line, "# "))), level)
			continue
		}

		if ruleLine.MatchString(trimmed) {
			pdf.Ln(2)
			y := pdf.GetY()
			left, _, right, _ := pdf.GetMargins()
			width, _ := pdf.GetPageSize()
			pdf.SetDrawColor(180, 180, 180)
			pdf.Line(left, y, width-right, y)
			pdf.Ln(4)
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "> "))
			if text == "" {
				pdf.Ln(2)
				continue
			}
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(80, 80, 80)
			pdf.SetX(pdf.GetX() + 6)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(text)), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		indent := float64(len(line)-len(strings.TrimLeft(line, " "))) / 4 * 6

		if loc := bulletItem.FindStringIndex(trimmed); loc != nil {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + indent)
			text := "• " + cleanInlineMarkdown(trimmed[loc[1]:])
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
			continue
		}

		if loc := numberedItem.FindStringIndex(trimmed); loc != nil {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + indent)
			marker := strings.TrimSpace(trimmed[:loc[1]])
			text := marker + " " + cleanInlineMarkdown(trimmed[loc[1]:])
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.TrimSuffix(strings.TrimRight(text, " "), "\\")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "~~", "")
	text = italicMarkers.ReplaceAllString(text, "$1$2$3")
	text = codeSpans.ReplaceAllString(text, "$1")
	text = linkSyntax.ReplaceAllString(text, "$1")
	text = autolinks.ReplaceAllString(text, "$1")
	text = escapes.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
