package cambio

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// collation is the locale names are sorted with: accented letters sort next to their base letter.
var collation = language.BrazilianPortuguese

// newCollator returns a fresh collator. Collators are not safe for concurrent use,
// so every sort gets its own.
func newCollator() *collate.Collator { return collate.New(collation) }

// fold lowercases s and strips its combining diacritics ("São Tomé" -> "sao tome").
// Blank strings fold to "".
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
