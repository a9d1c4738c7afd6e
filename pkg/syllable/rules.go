package syllable

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'ä': true, 'ö': true, 'ü': true, 'y': true,
}

var diphthongs = map[string]bool{
	"au": true, "äu": true, "eu": true, "ei": true, "ai": true, "ie": true,
}

// digraphs never get split, and a vowel followed by one ends its syllable.
var digraphs = map[string]bool{
	"ch": true, "ck": true, "ph": true, "qu": true,
}

func isVowel(r rune) bool {
	return vowels[r]
}

func isConsonant(r rune) bool {
	return unicode.IsLetter(r) && !vowels[r]
}

func hasVowel(s string) bool {
	for _, r := range s {
		if isVowel(unicode.ToLower(r)) {
			return true
		}
	}
	return false
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

// isSch reports whether l[i:i+3] spells "sch".
func isSch(l []rune, i int) bool {
	return i >= 0 && i+2 < len(l) && l[i] == 's' && l[i+1] == 'c' && l[i+2] == 'h'
}

// startsDigraph reports whether a digraph or "sch" begins at j.
func startsDigraph(l []rune, j int) bool {
	if j+1 < len(l) && digraphs[string(l[j:j+2])] {
		return true
	}
	return isSch(l, j)
}

// keepTogether reports whether the boundary between i and i+1 must not be cut.
func keepTogether(l []rune, i int) bool {
	pair := string(l[i : i+2])
	if diphthongs[pair] || digraphs[pair] {
		return true
	}
	return isSch(l, i) || isSch(l, i-1)
}

// cutAfter reports whether a syllable ends after position i.
func cutAfter(l []rune, i int) bool {
	cur, next := l[i], l[i+1]
	switch {
	case isVowel(cur) && i+2 < len(l) && isConsonant(next) && isVowel(l[i+2]):
		return true
	case isVowel(cur) && startsDigraph(l, i+1):
		return true
	case isConsonant(cur) && isConsonant(next):
		return true
	}
	return false
}

// split is the rule-based segmentation with the vowel-completeness pass.
func split(word string) []string {
	runes := []rune(word)
	if len(runes) <= 3 {
		return []string{word}
	}
	lower := lowerRunes(word)

	raw := make([]string, 0, len(runes)/2+1)
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if keepTogether(lower, i) {
			continue
		}
		if cutAfter(lower, i) {
			raw = append(raw, string(runes[start:i+1]))
			start = i + 1
		}
	}
	raw = append(raw, string(runes[start:]))

	out, ok := completeVowels(word, raw)
	if !ok {
		log.Debugf("Discarding vowel correction for '%s'", word)
		return []string{word}
	}
	return out
}

// completeVowels merges every syllable without a vowel into the next one, or
// into the previous one when it is last. It reports false when the merged
// result no longer spells word.
func completeVowels(word string, raw []string) ([]string, bool) {
	out := make([]string, 0, len(raw))
	pending := ""
	for _, syl := range raw {
		syl = pending + syl
		pending = ""
		if !hasVowel(syl) {
			pending = syl
			continue
		}
		out = append(out, syl)
	}
	if pending != "" {
		if len(out) == 0 {
			out = append(out, pending)
		} else {
			out[len(out)-1] += pending
		}
	}
	return out, strings.Join(out, "") == word
}
