// Package locate finds letters and clusters inside a word and tells a renderer
// which highlighted neighbours belong to one cluster.
//
// All indices returned are absolute: the local rune index plus startIndex.
package locate

import (
	"strings"

	"github.com/lesewerk/silbe/pkg/cluster"
)

// Occurrence is one located match of a search target.
type Occurrence struct {
	// Indices are the absolute positions covered by the match, ascending.
	Indices []int
	// Cluster is the lowercase cluster the match aligns with exactly, or "".
	Cluster string
}

// Merged reports whether the occurrence is a whole cluster.
func (o Occurrence) Merged() bool {
	return o.Cluster != ""
}

// Locate returns every case-insensitive occurrence of target in word, with
// overlapping matches allowed. A match spanning exactly a cluster inside its
// syllable is tagged with that cluster; a match that only covers part of a
// cluster, or none, is a plain window.
//
// syllables must spell word; otherwise word is treated as one syllable.
func Locate(word string, syllables []string, target string, set *cluster.Set, startIndex int) []Occurrence {
	lw := cluster.LowerRunes(word)
	lt := cluster.LowerRunes(target)
	if len(lt) == 0 || len(lt) > len(lw) {
		return nil
	}

	starts := syllableStarts(word, syllables)
	clusters := set.Clusters()

	var out []Occurrence
	for p := 0; p+len(lt) <= len(lw); p++ {
		if !equalAt(lw, lt, p) {
			continue
		}
		out = append(out, classify(lw, starts, clusters, p, len(lt), startIndex))
	}
	return out
}

func classify(lw []rune, starts []int, clusters []cluster.Cluster, p, size, startIndex int) Occurrence {
	si := syllableAt(starts, p)
	sylStart, sylEnd := starts[si], starts[si+1]
	syl := lw[sylStart:sylEnd]
	offset := p - sylStart

	for _, c := range clusters {
		for _, q := range c.Positions(syl, 0) {
			if q > offset || offset+size > q+c.Len() {
				continue
			}
			if q == offset && c.Len() == size {
				return Occurrence{
					Indices: window(startIndex+sylStart+q, c.Len()),
					Cluster: c.Lower(),
				}
			}
			return Occurrence{Indices: window(startIndex+p, size)}
		}
	}
	return Occurrence{Indices: window(startIndex+p, size)}
}

func equalAt(haystack, needle []rune, pos int) bool {
	for i, r := range needle {
		if haystack[pos+i] != r {
			return false
		}
	}
	return true
}

func window(start, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// syllableStarts returns the rune offset of each syllable followed by the
// word length.
func syllableStarts(word string, syllables []string) []int {
	n := len([]rune(word))
	if len(syllables) == 0 || strings.Join(syllables, "") != word {
		return []int{0, n}
	}
	starts := make([]int, 0, len(syllables)+1)
	pos := 0
	for _, s := range syllables {
		starts = append(starts, pos)
		pos += len([]rune(s))
	}
	return append(starts, pos)
}

// syllableAt returns the index of the syllable containing local position p.
func syllableAt(starts []int, p int) int {
	for i := len(starts) - 2; i > 0; i-- {
		if p >= starts[i] {
			return i
		}
	}
	return 0
}
