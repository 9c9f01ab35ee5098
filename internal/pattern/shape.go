// Package pattern provides the batch code format catalog, the structural
// matchers that turn codes into date candidates, and the confidence scorer
// that ranks competing interpretations.
package pattern

import "github.com/DylanJ17/batchcode/internal/model"

// groupAccepts reports whether every byte of s belongs to the group's
// character class.
func groupAccepts(kind model.GroupKind, s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch kind {
		case model.GroupDigits:
			if c < '0' || c > '9' {
				return false
			}
		case model.GroupLetters:
			if c < 'A' || c > 'Z' {
				return false
			}
		case model.GroupAlphaNum:
			if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
				return false
			}
		}
	}
	return true
}

// segmentations returns every way the code can be split into the shape's
// groups, honoring each group's character class and length bounds. Fixed
// width shapes yield at most one segmentation; variable-width shapes are the
// source of within-pattern ambiguity.
func segmentations(code string, shape []model.Group) [][]string {
	var out [][]string
	split(code, shape, nil, &out)
	return out
}

func split(rest string, shape []model.Group, acc []string, out *[][]string) {
	if len(shape) == 0 {
		if rest == "" {
			seg := make([]string, len(acc))
			copy(seg, acc)
			*out = append(*out, seg)
		}
		return
	}

	g := shape[0]
	maxLen := g.Max
	if maxLen == 0 || maxLen > len(rest) {
		maxLen = len(rest)
	}
	for n := g.Min; n <= maxLen; n++ {
		part := rest[:n]
		if !groupAccepts(g.Kind, part) {
			// A longer slice of the same class cannot help either.
			break
		}
		split(rest[n:], shape[1:], append(acc, part), out)
	}
}
