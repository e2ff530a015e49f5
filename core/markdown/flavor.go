package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFlavor is returned by ParseFlavor for unrecognized names.
var ErrUnknownFlavor = errors.New("unknown markdown flavor")

// Flavor selects between the two rule table variants.
type Flavor int

const (
	// Basic uses ATX headings, "_" emphasis, two-space hard breaks and
	// "*" bullets.
	Basic Flavor = iota
	// Pandoc uses setext headings for levels 1 and 2, "*" emphasis,
	// backslash hard breaks, "-" bullets, and adds ^sup^ and ~sub~.
	Pandoc
)

func (f Flavor) String() string {
	switch f {
	case Basic:
		return "basic"
	case Pandoc:
		return "pandoc"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// ParseFlavor maps a flavor name to its Flavor, case-insensitively.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic":
		return Basic, nil
	case "pandoc":
		return Pandoc, nil
	default:
		return Basic, fmt.Errorf("%w: %q", ErrUnknownFlavor, s)
	}
}
