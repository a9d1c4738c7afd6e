package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressIndices(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  string
	}{
		{"empty", nil, ""},
		{"singleton", []int{4}, "4"},
		{"runs and singletons", []int{1, 2, 3, 5, 10, 11}, "1-3,5,10-11"},
		{"unsorted with duplicates", []int{11, 3, 1, 2, 10, 5, 3}, "1-3,5,10-11"},
		{"pair is a range", []int{7, 8}, "7-8"},
		{"negative dropped", []int{-1, 0}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressIndices(tt.input))
		})
	}
}

func TestDecompressIndices(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", []int{}},
		{"runs", "1-3,5,10-11", []int{1, 2, 3, 5, 10, 11}},
		{"bad tokens skipped", "1,x,3-,4-2,,6", []int{1, 6}},
		{"whitespace tolerated", " 1 - 2 , 4", []int{1, 2, 4}},
		{"overlapping runs", "1-3,2-4", []int{1, 2, 3, 4}},
		{"oversized run skipped", "0-99999999,5", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecompressIndices(tt.input))
		})
	}
}

func TestIndicesRoundTrip(t *testing.T) {
	sets := [][]int{
		{},
		{0},
		{1, 2, 3, 5, 10, 11},
		{0, 2, 4, 6},
		{100, 101, 102, 103, 200},
	}
	for _, set := range sets {
		assert.Equal(t, set, DecompressIndices(CompressIndices(set)))
	}
}

func TestValidateIndices(t *testing.T) {
	require.NoError(t, ValidateIndices("1-3,5"))
	require.NoError(t, ValidateIndices(""))

	err := ValidateIndices("1,x,3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedToken))

	var tokenErr *MalformedTokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "x", tokenErr.Token)
	assert.Equal(t, 1, tokenErr.Position)
	assert.Equal(t, `malformed token "x" at position 1: invalid start`, err.Error())
}

func TestCompressColors(t *testing.T) {
	tests := []struct {
		name  string
		input map[int]string
		want  string
	}{
		{"empty", map[int]string{}, ""},
		{"single", map[int]string{3: "red"}, "3:red"},
		{"run of one color", map[int]string{0: "red", 1: "red", 2: "red", 4: "blue"}, "0-2:red,4:blue"},
		{"color change splits run", map[int]string{0: "red", 1: "blue", 2: "red"}, "0:red,1:blue,2:red"},
		{"hex colors", map[int]string{5: "#ff0000", 6: "#ff0000"}, "5-6:#ff0000"},
		{"unrepresentable dropped", map[int]string{-1: "red", 1: "", 2: "a,b", 3: "ok"}, "3:ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressColors(tt.input))
		})
	}
}

func TestDecompressColors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[int]string
	}{
		{"empty", "", map[int]string{}},
		{"runs", "0-2:red,4:blue", map[int]string{0: "red", 1: "red", 2: "red", 4: "blue"}},
		{"colorless skipped", "1,2:,3:green", map[int]string{3: "green"}},
		{"bad range skipped", "a-b:red,5:red", map[int]string{5: "red"}},
		{"colon inside color", "1:rgb:1", map[int]string{1: "rgb:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecompressColors(tt.input))
		})
	}
}

func TestColorsRoundTrip(t *testing.T) {
	maps := []map[int]string{
		{},
		{0: "red"},
		{0: "red", 1: "red", 2: "blue", 7: "blue", 8: "blue", 20: "yellow"},
		{3: "rgb:1", 4: "rgb:1"},
	}
	for _, m := range maps {
		assert.Equal(t, m, DecompressColors(CompressColors(m)))
	}
}

func TestValidateColors(t *testing.T) {
	require.NoError(t, ValidateColors("0-2:red,4:blue"))

	err := ValidateColors("0-2:red,4")
	var tokenErr *MalformedTokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "missing color", tokenErr.Reason)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func FuzzIndicesRoundTrip(f *testing.F) {
	f.Add([]byte{1, 2, 3, 5, 10, 11})
	f.Add([]byte{})
	f.Add([]byte{0, 0, 255})

	f.Fuzz(func(t *testing.T, data []byte) {
		seen := make(map[int]bool)
		var set []int
		for _, b := range data {
			if !seen[int(b)] {
				seen[int(b)] = true
				set = append(set, int(b))
			}
		}
		got := DecompressIndices(CompressIndices(set))
		if len(got) != len(seen) {
			t.Fatalf("round trip of %v = %v", set, got)
		}
		for _, i := range got {
			if !seen[i] {
				t.Fatalf("round trip of %v produced %d", set, i)
			}
		}
	})
}

func FuzzDecompressNeverPanics(f *testing.F) {
	f.Add("1-3,5")
	f.Add("0-2:red,,x:y")
	f.Add("-,-:")

	f.Fuzz(func(t *testing.T, s string) {
		DecompressIndices(s)
		DecompressColors(s)
	})
}
