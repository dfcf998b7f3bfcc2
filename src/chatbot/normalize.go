package chatbot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases and strips diacritics, so "București" and
// "bucuresti" match the same rules. Romanian ă/â/î/ș/ț all decompose
// to a base letter plus a combining mark, which NFD exposes and the
// runes filter removes.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
