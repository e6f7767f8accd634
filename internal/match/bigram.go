package match

import (
	"strings"
	"unicode"
)

// Bigram scores a and b with the Sørensen–Dice coefficient over their
// character bigrams, ignoring case and whitespace. The result is in [0, 1].
//
// Identical strings (after folding) score 1. Strings shorter than two
// characters have no bigrams and score 0 against anything else.
func Bigram(a, b string) float64 {
	a = foldSpace(a)
	b = foldSpace(b)

	if a == b {
		return 1.0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0.0
	}

	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}

	intersection := 0

	for i := 0; i < len(rb)-1; i++ {
		bg := [2]rune{rb[i], rb[i+1]}
		if counts[bg] > 0 {
			counts[bg]--
			intersection++
		}
	}

	return 2.0 * float64(intersection) / float64(len(ra)+len(rb)-2)
}

// foldSpace lowercases s and removes all whitespace.
func foldSpace(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
