package locate

import (
	"sort"

	"github.com/lesewerk/silbe/pkg/cluster"
)

type span struct {
	start int
	size  int
}

// clusterSpans returns every cluster occurrence in word, in cluster order and
// then by position. Initial-only clusters count at syllable starts only.
func clusterSpans(word string, syllables []string, set *cluster.Set) []span {
	lw := cluster.LowerRunes(word)
	starts := syllableStarts(word, syllables)
	isStart := make(map[int]bool, len(starts))
	for _, s := range starts[:len(starts)-1] {
		isStart[s] = true
	}

	var spans []span
	for _, c := range set.Clusters() {
		for pos := 0; pos+c.Len() <= len(lw); pos++ {
			if c.InitialOnly && !isStart[pos] {
				continue
			}
			if c.Matches(lw, pos, pos) {
				spans = append(spans, span{start: pos, size: c.Len()})
			}
		}
	}
	return spans
}

// BindsRight returns the absolute indices that render glued to their right
// neighbour: every character of a cluster occurrence except its last.
func BindsRight(word string, syllables []string, set *cluster.Set, startIndex int) map[int]bool {
	binds := make(map[int]bool)
	for _, s := range clusterSpans(word, syllables, set) {
		for i := s.start; i < s.start+s.size-1; i++ {
			binds[startIndex+i] = true
		}
	}
	return binds
}

// Glued returns the absolute indices of the first cluster occurrence that
// contains absIndex, without the occurrence's last character. It returns nil
// when absIndex is not part of any cluster.
func Glued(word string, syllables []string, set *cluster.Set, startIndex, absIndex int) []int {
	local := absIndex - startIndex
	for _, s := range clusterSpans(word, syllables, set) {
		if local >= s.start && local < s.start+s.size {
			return window(startIndex+s.start, s.size-1)
		}
	}
	return nil
}

// Resolver answers adjacency questions for one word. It never touches the
// annotation it is asked about.
type Resolver struct {
	binds map[int]bool
}

// NewResolver precomputes the binds-right table of word.
func NewResolver(word string, syllables []string, set *cluster.Set, startIndex int) *Resolver {
	return &Resolver{binds: BindsRight(word, syllables, set, startIndex)}
}

// BindsRight reports whether abs renders glued to abs+1.
func (r *Resolver) BindsRight(abs int) bool {
	return r.binds[abs]
}

// Joined reports whether two highlighted indices render as one block.
func (r *Resolver) Joined(left, right int) bool {
	return right == left+1 && r.binds[left]
}

// Blocks groups highlighted indices into continuous render blocks.
func (r *Resolver) Blocks(highlighted []int) [][]int {
	if len(highlighted) == 0 {
		return nil
	}
	sorted := append([]int(nil), highlighted...)
	sort.Ints(sorted)

	var blocks [][]int
	current := []int{sorted[0]}
	for _, idx := range sorted[1:] {
		prev := current[len(current)-1]
		if idx == prev {
			continue
		}
		if r.Joined(prev, idx) {
			current = append(current, idx)
			continue
		}
		blocks = append(blocks, current)
		current = []int{idx}
	}
	return append(blocks, current)
}
