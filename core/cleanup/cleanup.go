// Package cleanup normalizes Markdown text produced by the converter.
// Cleanup unifies typographic punctuation, collapses hard-break and blank
// line runs, and trims the result. Every step is a total function over
// arbitrary strings and the whole chain is idempotent.
package cleanup

import (
	"regexp"
	"strings"
	"unicode"
)

var punctuation = strings.NewReplacer(
	"‘", "'", "’", "'", "´", "'", "′", "'",
	"“", `"`, "”", `"`, "″", `"`,
	"−", "-", "•", "-", "·", "-", "▪", "-",
	"–", "--", "―", "--",
	"—", "---",
	"…", "...",
)

var (
	spacesBeforeNewline = regexp.MustCompile(` +\n`)
	spaceBeforeBreak    = regexp.MustCompile(`\s*\\\n`)
	doubleBreak         = regexp.MustCompile(`\s*\\\n\s*\\\n`)
	breakBeforeBlank    = regexp.MustCompile(`\s*\\\n\n`)
	breakAfterBlank     = regexp.MustCompile(`\n\n\s*\\\n`)
	strayDash           = regexp.MustCompile(`\n-\n`)
	blankLines          = regexp.MustCompile(`\n{3,}`)
	trailingSpaces      = regexp.MustCompile(`(?m) +$`)
)

// maxPasses bounds the fixpoint loop; after the first pass every change
// shortens the text, so real inputs settle in two or three.
const maxPasses = 64

// Cleanup applies the normalization chain until the text stops changing.
func Cleanup(markdown string) string {
	s := markdown
	for i := 0; i < maxPasses; i++ {
		next := pass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func pass(s string) string {
	s = punctuation.Replace(s)
	s = spacesBeforeNewline.ReplaceAllString(s, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")

	s = spaceBeforeBreak.ReplaceAllString(s, "\\\n")
	s = doubleBreak.ReplaceAllString(s, "\n\n")
	s = breakBeforeBlank.ReplaceAllString(s, "\n\n")
	s = strayDash.ReplaceAllString(s, "\n")
	s = breakAfterBlank.ReplaceAllString(s, "\n\n")

	s = blankLines.ReplaceAllString(s, "\n\n")
	s = trailingSpaces.ReplaceAllString(s, "")
	// A leading backslash escapes the first character; only trailing ones
	// are leftover hard breaks.
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return r == '\\' || unicode.IsSpace(r)
	})
	return s
}

var (
	leadingBreaks   = regexp.MustCompile(`^[\t\r\n]+`)
	whitespaceLines = regexp.MustCompile(`\n\s+\n`)
)

// Tidy settles the raw converter output before Cleanup: it drops leading
// line breaks and trailing whitespace, empties whitespace-only lines, and
// collapses runs of blank lines.
func Tidy(raw string) string {
	s := leadingBreaks.ReplaceAllString(raw, "")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = whitespaceLines.ReplaceAllString(s, "\n\n")
	return blankLines.ReplaceAllString(s, "\n\n")
}
