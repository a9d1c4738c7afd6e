package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidWord(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   bool
	}{
		{"Schule", 0, true},
		{"Häuser", 0, true},
		{"Straße", 0, true},
		{"Häuser", 0, true},
		{"", 0, false},
		{"Schule1", 0, false},
		{"Schul hof", 0, false},
		{"Donaudampfschiff", 8, false},
		{"Hund", 4, true},
		{"\xff", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidWord(tt.input, tt.maxLen))
		})
	}
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"Der", "Hund", "die", "Katze"}, SplitWords("Der Hund, die Katze."))
	assert.Equal(t, []string{"Seite"}, SplitWords("Seite 12"))
	assert.Empty(t, SplitWords(" 1, 2 "))
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "-12,000", FormatWithCommas(-12000))
}
