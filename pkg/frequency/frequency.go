// Package frequency tallies letters and clusters across a word list.
//
// Cluster occurrences are counted per syllable and consume their characters;
// every remaining letter is counted on its own. Tokens keep the casing found
// in the source, so "Sch" and "sch" are separate entries.
package frequency

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lesewerk/silbe/pkg/cluster"
)

// SyllabifyFunc splits a word into syllables that spell it.
type SyllabifyFunc func(word string) []string

// Table maps an exact-case token to its count.
type Table map[string]int

// Count tallies clusters and leftover letters of every word. A nil
// syllabify treats each word as a single syllable.
func Count(words []string, set *cluster.Set, syllabify SyllabifyFunc) Table {
	table := make(Table)
	clusters := set.Clusters()
	for _, word := range words {
		countWord(table, word, clusters, syllabify)
	}
	return table
}

func countWord(table Table, word string, clusters []cluster.Cluster, syllabify SyllabifyFunc) {
	runes := []rune(word)
	lower := cluster.LowerRunes(word)
	consumed := make([]bool, len(runes))

	for _, unit := range units(word, syllabify) {
		for _, c := range clusters {
			for pos := unit[0]; pos+c.Len() <= unit[1]; pos++ {
				if c.InitialOnly && pos != unit[0] {
					continue
				}
				if !c.Matches(lower, pos, pos) || anyConsumed(consumed, pos, c.Len()) {
					continue
				}
				table[string(runes[pos:pos+c.Len()])]++
				for i := pos; i < pos+c.Len(); i++ {
					consumed[i] = true
				}
				pos += c.Len() - 1
			}
		}
	}

	for i, r := range runes {
		if !consumed[i] && unicode.IsLetter(r) {
			table[string(r)]++
		}
	}
}

// units returns [start, end) rune ranges of the syllables of word.
func units(word string, syllabify SyllabifyFunc) [][2]int {
	n := len([]rune(word))
	var syllables []string
	if syllabify != nil {
		syllables = syllabify(word)
	}
	if len(syllables) == 0 || strings.Join(syllables, "") != word {
		return [][2]int{{0, n}}
	}

	out := make([][2]int, 0, len(syllables))
	pos := 0
	for _, s := range syllables {
		size := len([]rune(s))
		out = append(out, [2]int{pos, pos + size})
		pos += size
	}
	return out
}

func anyConsumed(consumed []bool, pos, size int) bool {
	for i := pos; i < pos+size; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

// Total returns the count of token summed over all casings.
func (t Table) Total(token string) int {
	total := 0
	for key, n := range t {
		if strings.EqualFold(key, token) {
			total += n
		}
	}
	return total
}

// CaseCounts splits the count of token into entries starting with an
// uppercase letter and all others.
func (t Table) CaseCounts(token string) (upper, lower int) {
	for key, n := range t {
		if !strings.EqualFold(key, token) {
			continue
		}
		first := []rune(key)[0]
		if unicode.IsUpper(first) {
			upper += n
		} else {
			lower += n
		}
	}
	return upper, lower
}

// Merge adds the counts of other into t.
func (t Table) Merge(other Table) {
	for key, n := range other {
		t[key] += n
	}
}

// Tokens returns the keys ordered by descending count, then by token.
func (t Table) Tokens() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if t[keys[i]] != t[keys[j]] {
			return t[keys[i]] > t[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
