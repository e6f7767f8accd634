package match

import (
	"strings"
	"unicode"
)

// NormalizeValue folds an attribute value for fuzzy comparison.
// The normalization pipeline:
// 1. Case-fold to lower.
// 2. Strip separators (_, -, whitespace).
//
// "Space Gray", "space-gray" and "SPACE_GRAY" all normalize to "spacegray".
func NormalizeValue(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
