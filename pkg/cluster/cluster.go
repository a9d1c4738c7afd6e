// Package cluster decomposes text into orthographic chunks: single letters or
// multi-letter clusters such as "sch", "ei" or "st".
//
// Matching is first-match in declared order, not longest-match, and compares
// runes case-insensitively without Unicode normalization. A precomposed "äu"
// and one spelled with a combining diaeresis are different sequences here.
package cluster

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrEmptyCluster is returned when a cluster list contains an empty entry.
	ErrEmptyCluster = errors.New("empty cluster")

	// ErrUnknownInitialOnly is returned when an initial-only entry is not part of the cluster list.
	ErrUnknownInitialOnly = errors.New("initial-only cluster not in cluster list")
)

// DefaultClusters is the cluster list used when an exercise supplies none.
// Order matters: "sch" must precede "ch".
var DefaultClusters = []string{
	"sch", "ch", "ck", "ei", "ie", "eu", "äu", "au", "ai",
	"sp", "st", "qu", "pf", "ng", "nk", "er",
}

// DefaultInitialOnly lists the clusters that only count at position 0 of a unit.
var DefaultInitialOnly = []string{"sp", "st"}

// Cluster is a single candidate of a Set.
type Cluster struct {
	// Text is the cluster as configured.
	Text string
	// InitialOnly restricts matches to position 0 of the chunked unit.
	InitialOnly bool

	lower []rune
}

// Len returns the cluster length in runes.
func (c Cluster) Len() int {
	return len(c.lower)
}

// Lower returns the lowercase form used for matching.
func (c Cluster) Lower() string {
	return string(c.lower)
}

// Set is an ordered, immutable cluster list.
type Set struct {
	clusters []Cluster
}

// NewSet builds a Set from an ordered list. Every entry of initialOnly must
// also appear in clusters (compared case-insensitively).
func NewSet(clusters []string, initialOnly []string) (*Set, error) {
	flags := make(map[string]bool, len(initialOnly))
	for _, s := range initialOnly {
		flags[lowerString(s)] = false
	}

	set := &Set{clusters: make([]Cluster, 0, len(clusters))}
	for i, text := range clusters {
		if text == "" {
			return nil, fmt.Errorf("cluster %d: %w", i, ErrEmptyCluster)
		}
		lower := lowerRunes(text)
		_, initial := flags[string(lower)]
		if initial {
			flags[string(lower)] = true
		}
		set.clusters = append(set.clusters, Cluster{
			Text:        text,
			InitialOnly: initial,
			lower:       lower,
		})
	}

	for s, seen := range flags {
		if !seen {
			return nil, fmt.Errorf("%q: %w", s, ErrUnknownInitialOnly)
		}
	}
	return set, nil
}

// Default returns the Set built from DefaultClusters and DefaultInitialOnly.
func Default() *Set {
	set, err := NewSet(DefaultClusters, DefaultInitialOnly)
	if err != nil {
		panic(err)
	}
	return set
}

// Clusters returns the clusters in declared order.
func (s *Set) Clusters() []Cluster {
	if s == nil {
		return nil
	}
	out := make([]Cluster, len(s.clusters))
	copy(out, s.clusters)
	return out
}

// Len returns the number of clusters.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.clusters)
}

// Texts returns the configured cluster strings in order.
func (s *Set) Texts() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.clusters))
	for i, c := range s.clusters {
		out[i] = c.Text
	}
	return out
}

// Matches reports whether c matches the lowercase runes at pos.
// unitStart is the position treated as local index 0 for initial-only clusters.
func (c Cluster) Matches(lower []rune, pos, unitStart int) bool {
	if c.InitialOnly && pos != unitStart {
		return false
	}
	if pos < 0 || pos+len(c.lower) > len(lower) {
		return false
	}
	for i, r := range c.lower {
		if lower[pos+i] != r {
			return false
		}
	}
	return true
}

// Positions returns every start position where c matches inside lower,
// scanning with overlap. Initial-only clusters are only tried at unitStart.
func (c Cluster) Positions(lower []rune, unitStart int) []int {
	var out []int
	for pos := 0; pos+len(c.lower) <= len(lower); pos++ {
		if c.Matches(lower, pos, unitStart) {
			out = append(out, pos)
		}
	}
	return out
}

// MatchAt returns the first cluster, in declared order, that matches lower at
// pos, treating pos 0 as the unit start.
func (s *Set) MatchAt(lower []rune, pos int) (Cluster, bool) {
	if s == nil {
		return Cluster{}, false
	}
	for _, c := range s.clusters {
		if c.Matches(lower, pos, 0) {
			return c, true
		}
	}
	return Cluster{}, false
}

// LowerRunes lowercases s rune by rune, so the result has the same rune count
// as s and indices line up with the source.
func LowerRunes(s string) []rune {
	return lowerRunes(s)
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func lowerString(s string) string {
	return string(lowerRunes(s))
}
