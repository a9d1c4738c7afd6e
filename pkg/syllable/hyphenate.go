package syllable

import (
	"fmt"
	"strings"
)

// Hyphenator is a pluggable segmentation strategy.
type Hyphenator interface {
	// Hyphenate splits word into an ordered list of substrings.
	Hyphenate(word string) ([]string, error)
}

// HyphenatorFunc adapts a plain function to Hyphenator.
type HyphenatorFunc func(word string) ([]string, error)

// Hyphenate calls f(word).
func (f HyphenatorFunc) Hyphenate(word string) ([]string, error) {
	return f(word)
}

// Heuristic is the built-in rule-based strategy. It never fails.
type Heuristic struct{}

// Hyphenate applies the syllable rules and the vowel-completeness pass.
func (Heuristic) Hyphenate(word string) ([]string, error) {
	return split(word), nil
}

// tryHyphenate runs h and converts a panic or an output that does not
// reconstruct word into an error.
func tryHyphenate(h Hyphenator, word string) (out []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("hyphenator panicked: %v", r)
		}
	}()

	out, err = h.Hyphenate(word)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("hyphenator returned no syllables for %q", word)
	}
	for _, s := range out {
		if s == "" {
			return nil, fmt.Errorf("hyphenator returned an empty syllable for %q", word)
		}
	}
	if joined := strings.Join(out, ""); joined != word {
		return nil, fmt.Errorf("hyphenator output %q does not spell %q", joined, word)
	}
	return out, nil
}
