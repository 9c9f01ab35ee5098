// Package model defines the core domain models for batch code analysis.
package model

import "strings"

// BatchCode is a normalized batch code: trimmed, separator-stripped, uppercased.
type BatchCode string

// separators are the characters printers commonly insert between code groups.
const separators = "-_./\\ \t"

// NormalizeCode produces a BatchCode from raw user input. Separators and
// whitespace are removed and letters are uppercased. The result may be empty
// if the input contained nothing else.
func NormalizeCode(raw string) BatchCode {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if strings.ContainsRune(separators, r) {
			continue
		}
		b.WriteRune(r)
	}
	return BatchCode(b.String())
}

// String returns the normalized code text.
func (c BatchCode) String() string {
	return string(c)
}

// IsEmpty reports whether nothing remained after normalization.
func (c BatchCode) IsEmpty() bool {
	return len(c) == 0
}
