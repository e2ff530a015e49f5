package cleanup

import "regexp"

// listMarkers finds a number followed by ". " (or ".&nbsp;", or a literal
// no-break space) at the start of the input or of a tag's text.
var listMarkers = regexp.MustCompile(`(^|>)(\s*)(\d+)\.(&nbsp;| |\x{00A0})`)

// EscapeListMarkers escapes the dot in literal "1. " text so the Markdown
// output does not read it as an ordered list item. It runs on raw HTML,
// before parsing.
func EscapeListMarkers(html string) string {
	return listMarkers.ReplaceAllString(html, `${1}${2}${3}\.${4}`)
}
