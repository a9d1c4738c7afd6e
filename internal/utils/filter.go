package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r may appear inside a word: letters, combining
// marks (decomposed umlauts) and the apostrophe of elided forms.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || r == '\''
}

// IsValidWord checks if input can be syllabified: non-empty, at most
// maxLen runes (0 disables the limit) and made of word runes only.
func IsValidWord(s string, maxLen int) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return false
	}
	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}
	return true
}

// SplitWords breaks running text into words, dropping digits and
// punctuation. "Der Hund, die Katze." gives [Der Hund die Katze].
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !IsWordRune(r)
	})
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}
	var b strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
