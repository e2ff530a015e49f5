package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NewRuleTable builds the rule table for the given flavor. Both flavors
// share one rule list; the flavor only swaps generators and enables a few
// extra tags.
func NewRuleTable(f Flavor) *Table {
	pandoc := f == Pandoc

	var rules []Rule
	add := func(name string, m Matcher, g Generator) {
		rules = append(rules, Rule{Name: name, Match: m, Generate: g})
	}

	add("paragraph", TagEqual("p"), paragraph)
	if pandoc {
		add("setext-h1", TagEqual("h1"), setextHeading('='))
		add("setext-h2", TagEqual("h2"), setextHeading('-'))
	}
	add("heading", TagIn("h1", "h2", "h3", "h4", "h5", "h6"), atxHeading)
	if pandoc {
		add("superscript", TagEqual("sup"), wrap("^"))
		add("subscript", TagEqual("sub"), wrap("~"))
		add("line-break", TagEqual("br"), fixed("\\\n"))
		add("horizontal-rule", TagEqual("hr"), fixed("\n\n* * * * *\n\n"))
		add("emphasis", TagIn("em", "i", "cite", "var"), wrap("*"))
	} else {
		add("line-break", TagEqual("br"), fixed("  \n"))
		add("horizontal-rule", TagEqual("hr"), fixed("\n\n* * *\n\n"))
		add("emphasis", TagIn("em", "i"), wrap("_"))
	}
	add("strong", TagIn("strong", "b"), wrap("**"))
	add("strikethrough", TagIn("del", "s", "strike"), wrap("~~"))
	if pandoc {
		add("inline-code", inlineCode("code", "kbd", "samp", "tt"), wrap("`"))
	} else {
		add("inline-code", inlineCode("code"), wrap("`"))
	}
	add("link", Predicate(isLink), link)
	add("image", TagEqual("img"), image)
	add("code-block", Predicate(isCodeBlock), codeBlock)
	add("blockquote", TagEqual("blockquote"), blockquote)
	if pandoc {
		add("list-item", TagEqual("li"), pandocListItem)
	} else {
		add("list-item", TagEqual("li"), listItem)
	}
	add("list", TagIn("ul", "ol"), list)
	add("table", TagEqual("table"), pad)
	add("table-section", TagIn("thead", "tbody", "tfoot"), Identity)
	add("table-row", TagEqual("tr"), tableRow)
	add("table-cell", TagIn("th", "td"), tableCell)
	add("block", Predicate(func(n Node) bool { return IsBlock(n.Tag()) }), pad)
	add("fallback", Always(), Identity)

	table, err := NewTable(rules...)
	if err != nil {
		panic(fmt.Sprintf("markdown: %s rule table: %v", f, err))
	}
	return table
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

func fixed(s string) Generator {
	return func(string, Node) string { return s }
}

func wrap(marker string) Generator {
	return func(content string, _ Node) string {
		return marker + content + marker
	}
}

func pad(content string, _ Node) string {
	return "\n\n" + content + "\n\n"
}

// paragraph skips padding inside list items so items stay compact.
func paragraph(content string, n Node) string {
	if n.HasAncestor("li") {
		return content
	}
	return pad(content, n)
}

func atxHeading(content string, n Node) string {
	level := int(n.Tag()[1] - '0')
	return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
}

func setextHeading(underline rune) Generator {
	return func(content string, _ Node) string {
		line := strings.Repeat(string(underline), utf8.RuneCountInString(content))
		return "\n\n" + content + "\n" + line + "\n\n"
	}
}

// inlineCode matches code-like elements except a lone child of <pre>,
// which the code block rule renders instead.
func inlineCode(tags ...string) Predicate {
	set := TagIn(tags...)
	return func(n Node) bool {
		if !set.Match(n) {
			return false
		}
		return !(n.ParentIs("pre") && n.OnlyChild())
	}
}

func isLink(n Node) bool {
	return n.Is("a") && n.Attr("href") != ""
}

func link(content string, n Node) string {
	href := n.Attr("href")
	switch {
	case content == href:
		return "<" + href + ">"
	case href == "mailto:"+content:
		return "<" + content + ">"
	}
	return "[" + content + "](" + href + title(n) + ")"
}

func image(_ string, n Node) string {
	src := n.Attr("src")
	if src == "" {
		return ""
	}
	return "![" + n.Attr("alt") + "](" + src + title(n) + ")"
}

func title(n Node) string {
	if t := n.Attr("title"); t != "" {
		return ` "` + t + `"`
	}
	return ""
}

func isCodeBlock(n Node) bool {
	if !n.Is("pre") {
		return false
	}
	first, ok := n.FirstChild()
	return ok && first.Is("code")
}

// codeBlock fences the raw text of the <code> element; markup nested in it
// is not converted.
func codeBlock(_ string, n Node) string {
	code, _ := n.FirstChild()
	return "\n\n```\n" + code.TextContent() + "\n```\n\n"
}

func blockquote(content string, _ Node) string {
	content = strings.TrimSpace(content)
	content = blankRuns.ReplaceAllString(content, "\n\n")
	content = "> " + strings.ReplaceAll(content, "\n", "\n> ")
	return "\n\n" + content + "\n\n"
}

var paragraphBreaks = regexp.MustCompile(`\n\n+`)

func listItem(content string, n Node) string {
	content = strings.TrimSpace(content)
	content = paragraphBreaks.ReplaceAllString(content, "\n")
	content = strings.ReplaceAll(content, "\n", "\n    ")

	prefix := "*   "
	if n.ParentIs("ol") {
		prefix = fmt.Sprintf("%d.  ", n.Index()+1)
	}
	return prefix + content
}

func pandocListItem(content string, n Node) string {
	content = strings.TrimLeftFunc(content, unicode.IsSpace)
	content = strings.ReplaceAll(content, "\n", "\n    ")

	prefix := "-   "
	if n.ParentIs("ol") {
		prefix = fmt.Sprintf("%-4s", fmt.Sprintf("%d. ", n.Index()+1))
	}
	return prefix + content
}

// list joins its items' output directly; text between items is dropped.
func list(_ string, n Node) string {
	var items []string
	for _, c := range n.Children() {
		if !c.IsElement() {
			continue
		}
		if item := strings.TrimSpace(c.Generated()); item != "" {
			items = append(items, item)
		}
	}
	body := strings.Join(items, "\n")
	if n.ParentIs("li") {
		return "\n" + body
	}
	return "\n\n" + body + "\n\n"
}

func tableRow(content string, n Node) string {
	if !n.ParentIs("thead") {
		return "\n" + content
	}
	var border strings.Builder
	for _, c := range n.Children() {
		if c.Is("th") || c.Is("td") {
			border.WriteString("| --- ")
		}
	}
	border.WriteString("|")
	return "\n" + content + "\n" + border.String()
}

func tableCell(content string, n Node) string {
	prefix := " "
	if n.Index() == 0 {
		prefix = "| "
	}
	return prefix + content + " |"
}
