/*
Package syllable splits German words into syllables.

A Syllabifier checks, in order: its memo cache, the exception dictionary
(explicit splits and monosyllables), an optional Hyphenator, and finally the
rule-based Heuristic. The result is never empty and its concatenation always
equals the input word.

	s := syllable.New()
	s.Syllabify("Schule", nil) // [Schu le]

The rules, applied at each boundary in priority order:

  - never cut inside a diphthong, a digraph or "sch"
  - cut after a vowel followed by consonant + vowel
  - cut after a vowel followed by a digraph
  - cut between two consonants

A vowel-completeness pass then merges syllables without a vowel into their
neighbour. Words of up to three letters are one syllable.
*/
package syllable

import (
	"github.com/charmbracelet/log"
)

// Syllabifier owns an exception dictionary and a memo cache.
// It is safe for concurrent use.
type Syllabifier struct {
	exceptions *Exceptions
	cache      *Cache
	logger     *log.Logger
}

// Option configures a Syllabifier.
type Option func(*Syllabifier)

// WithExceptions replaces the built-in exception dictionary.
func WithExceptions(e *Exceptions) Option {
	return func(s *Syllabifier) {
		s.exceptions = e
	}
}

// WithCache replaces the default unbounded cache.
func WithCache(c *Cache) Option {
	return func(s *Syllabifier) {
		s.cache = c
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Syllabifier) {
		s.logger = l
	}
}

// New creates a Syllabifier with the built-in exceptions and an unbounded cache.
func New(opts ...Option) *Syllabifier {
	s := &Syllabifier{}
	for _, opt := range opts {
		opt(s)
	}
	if s.exceptions == nil {
		s.exceptions = DefaultExceptions()
	}
	if s.cache == nil {
		s.cache = NewCache(0)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Syllabify splits word into syllables. h may be nil; when it fails, panics
// or returns pieces that do not spell word, the heuristic is used instead.
func (s *Syllabifier) Syllabify(word string, h Hyphenator) []string {
	if word == "" {
		return []string{""}
	}

	custom := h != nil
	if cached, ok := s.cache.Get(word, custom); ok {
		return cached
	}

	result := s.compute(word, h)
	s.cache.Put(word, custom, result)
	return result
}

func (s *Syllabifier) compute(word string, h Hyphenator) []string {
	if out, ok := s.exceptions.Apply(word); ok {
		return out
	}

	if h != nil {
		out, err := tryHyphenate(h, word)
		if err == nil {
			return out
		}
		s.logger.Debug("hyphenator failed, using heuristic", "word", word, "err", err)
	}

	return split(word)
}

// Stats reports cache counters and the exception dictionary size.
func (s *Syllabifier) Stats() map[string]int {
	stats := s.cache.Stats()
	stats["exceptions"] = s.exceptions.Len()
	return stats
}
