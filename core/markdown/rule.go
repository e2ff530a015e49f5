package markdown

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMissingFallback is returned by NewTable when the last rule is not a
// catch-all.
var ErrMissingFallback = errors.New("rule table must end with a catch-all rule")

// Matcher decides whether a rule applies to a node.
type Matcher interface {
	Match(n Node) bool
}

// TagEqual matches elements with exactly this tag.
type TagEqual string

func (m TagEqual) Match(n Node) bool { return n.Is(string(m)) }

// TagSet matches elements whose tag is in the set.
type TagSet []string

// TagIn returns a matcher for any of the given tags.
func TagIn(tags ...string) TagSet { return TagSet(tags) }

func (m TagSet) Match(n Node) bool {
	return n.IsElement() && slices.Contains(m, n.Tag())
}

// Predicate matches when the function returns true.
type Predicate func(n Node) bool

func (m Predicate) Match(n Node) bool { return m(n) }

type always struct{}

func (always) Match(Node) bool { return true }

// Always matches every node. A table's last rule must use it.
func Always() Matcher { return always{} }

// Generator turns a node's accumulated child content into its Markdown.
type Generator func(content string, n Node) string

// Rule pairs a matcher with a generator.
type Rule struct {
	Name     string
	Match    Matcher
	Generate Generator
}

// Identity returns content unchanged.
func Identity(content string, _ Node) string { return content }

// Table is an ordered rule list; the first matching rule wins.
type Table struct {
	rules []Rule
}

// NewTable validates and returns a rule table. Rules are evaluated in the
// order given.
func NewTable(rules ...Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, ErrMissingFallback
	}
	for i, r := range rules {
		if r.Match == nil || r.Generate == nil {
			return nil, fmt.Errorf("rule %d (%q): matcher and generator are required", i, r.Name)
		}
	}
	if _, ok := rules[len(rules)-1].Match.(always); !ok {
		return nil, ErrMissingFallback
	}
	return &Table{rules: slices.Clone(rules)}, nil
}

// Rules returns a copy of the table's rules in evaluation order.
func (t *Table) Rules() []Rule { return slices.Clone(t.rules) }

// Lookup returns the first rule matching n.
func (t *Table) Lookup(n Node) Rule {
	for _, r := range t.rules {
		if r.Match.Match(n) {
			return r
		}
	}
	// Unreachable: NewTable guarantees a trailing catch-all.
	return t.rules[len(t.rules)-1]
}
