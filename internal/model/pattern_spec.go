package model

import (
	"fmt"
	"strings"
)

// GroupKind identifies the character class of one structural group in a
// pattern's shape.
type GroupKind int

// Group kinds.
const (
	// GroupDigits matches a run of ASCII digits.
	GroupDigits GroupKind = iota
	// GroupLetters matches a run of ASCII letters.
	GroupLetters
	// GroupAlphaNum matches a run of ASCII letters or digits.
	GroupAlphaNum
)

// Group is one typed, length-bounded segment of a pattern shape.
// Max == 0 means unbounded.
type Group struct {
	Kind GroupKind
	Min  int
	Max  int
}

// PatternSpec describes one batch code format: its structural shape, the
// confidence a bare match deserves, and a priority used only for tie-breaking
// between equally-confident interpretations.
type PatternSpec struct {
	Name           string
	Description    string
	Shape          []Group
	Examples       []string
	BaseConfidence int
	Priority       int
}

// String renders a group for display, e.g. "digits[3]" or "letters[1+]".
func (g Group) String() string {
	kind := "digits"
	switch g.Kind {
	case GroupLetters:
		kind = "letters"
	case GroupAlphaNum:
		kind = "alnum"
	}
	switch {
	case g.Max == 0:
		return fmt.Sprintf("%s[%d+]", kind, g.Min)
	case g.Min == g.Max:
		return fmt.Sprintf("%s[%d]", kind, g.Min)
	default:
		return fmt.Sprintf("%s[%d-%d]", kind, g.Min, g.Max)
	}
}

// ShapeString renders the full shape for display.
func (s PatternSpec) ShapeString() string {
	parts := make([]string, len(s.Shape))
	for i, g := range s.Shape {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

// FixedDigits returns a Group matching exactly n digits.
func FixedDigits(n int) Group {
	return Group{Kind: GroupDigits, Min: n, Max: n}
}

// Digits returns a Group matching between min and max digits.
func Digits(minLen, maxLen int) Group {
	return Group{Kind: GroupDigits, Min: minLen, Max: maxLen}
}

// Letters returns a Group matching at least min letters (0 max = unbounded).
func Letters(minLen, maxLen int) Group {
	return Group{Kind: GroupLetters, Min: minLen, Max: maxLen}
}

// AlphaNum returns a Group matching at least min letters or digits.
func AlphaNum(minLen, maxLen int) Group {
	return Group{Kind: GroupAlphaNum, Min: minLen, Max: maxLen}
}
