package locale

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldASCII strips diacritics from words (zéro -> zero).
func FoldASCII(s string) string {
	// A chain is stateful and must not be shared between goroutines.
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}

	return result
}
