package locate

import (
	"testing"

	"github.com/lesewerk/silbe/pkg/cluster"
	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	set := cluster.Default()

	tests := []struct {
		name       string
		word       string
		syllables  []string
		target     string
		startIndex int
		want       []Occurrence
	}{
		{
			name:      "exact cluster is merged",
			word:      "Schule",
			syllables: []string{"Schu", "le"},
			target:    "sch",
			want:      []Occurrence{{Indices: []int{0, 1, 2}, Cluster: "sch"}},
		},
		{
			name:      "letter inside a cluster stays plain",
			word:      "Schule",
			syllables: []string{"Schu", "le"},
			target:    "s",
			want:      []Occurrence{{Indices: []int{0}}},
		},
		{
			name:      "partial cluster overlap is not merged",
			word:      "Schule",
			syllables: []string{"Schu", "le"},
			target:    "ch",
			want:      []Occurrence{{Indices: []int{1, 2}}},
		},
		{
			name:       "cluster in later syllable with offset",
			word:       "Tasche",
			syllables:  []string{"Ta", "sche"},
			target:     "SCH",
			startIndex: 10,
			want:       []Occurrence{{Indices: []int{12, 13, 14}, Cluster: "sch"}},
		},
		{
			name:      "initial-only cluster at syllable start",
			word:      "Fenster",
			syllables: []string{"Fen", "ster"},
			target:    "st",
			want:      []Occurrence{{Indices: []int{3, 4}, Cluster: "st"}},
		},
		{
			name:      "initial-only cluster inside syllable",
			word:      "Mist",
			syllables: []string{"Mist"},
			target:    "st",
			want:      []Occurrence{{Indices: []int{2, 3}}},
		},
		{
			name:      "case-insensitive diphthong",
			word:      "Eimer",
			syllables: []string{"Ei", "mer"},
			target:    "EI",
			want:      []Occurrence{{Indices: []int{0, 1}, Cluster: "ei"}},
		},
		{
			name:      "overlapping matches",
			word:      "Seeenge",
			syllables: []string{"Seeen", "ge"},
			target:    "ee",
			want:      []Occurrence{{Indices: []int{1, 2}}, {Indices: []int{2, 3}}},
		},
		{
			name:      "every occurrence of a letter",
			word:      "Banane",
			syllables: []string{"Ba", "na", "ne"},
			target:    "n",
			want:      []Occurrence{{Indices: []int{2}}, {Indices: []int{4}}},
		},
		{
			name:      "match across a syllable boundary",
			word:      "Sonne",
			syllables: []string{"Son", "ne"},
			target:    "nn",
			want:      []Occurrence{{Indices: []int{2, 3}}},
		},
		{
			name:      "syllables that do not spell the word",
			word:      "Fenster",
			syllables: []string{"nope"},
			target:    "st",
			want:      []Occurrence{{Indices: []int{3, 4}}},
		},
		{
			name:      "no match",
			word:      "Hund",
			syllables: []string{"Hund"},
			target:    "x",
		},
		{
			name:      "empty target",
			word:      "Hund",
			syllables: []string{"Hund"},
			target:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(tt.word, tt.syllables, tt.target, set, tt.startIndex)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocateDeclaredOrderDecides(t *testing.T) {
	set, err := cluster.NewSet([]string{"ch", "sch"}, nil)
	assert.NoError(t, err)

	got := Locate("Schule", []string{"Schu", "le"}, "ch", set, 0)
	assert.Equal(t, []Occurrence{{Indices: []int{1, 2}, Cluster: "ch"}}, got)
}

func TestOccurrenceMerged(t *testing.T) {
	assert.True(t, Occurrence{Indices: []int{0, 1}, Cluster: "ei"}.Merged())
	assert.False(t, Occurrence{Indices: []int{0}}.Merged())
}
