package syllable

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

//go:embed data/exceptions.txt
var builtinExceptions string

// Exceptions maps lowercase words to fixed syllable lengths. A monosyllable is
// stored as a single length covering the whole word.
type Exceptions struct {
	trie  *patricia.Trie
	count int
}

// NewExceptions returns an empty exception dictionary.
func NewExceptions() *Exceptions {
	return &Exceptions{trie: patricia.NewTrie()}
}

// DefaultExceptions returns the built-in exception dictionary.
func DefaultExceptions() *Exceptions {
	e, err := LoadExceptions(strings.NewReader(builtinExceptions))
	if err != nil {
		panic(err)
	}
	return e
}

// LoadExceptions reads one entry per line. "the-a-ter" declares a split,
// a word without hyphens a monosyllable. Blank lines and lines starting
// with '#' are ignored.
func LoadExceptions(r io.Reader) (*Exceptions, error) {
	e := NewExceptions()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, "-")
		if len(parts) == 1 {
			e.AddMonosyllable(text)
			continue
		}
		lengths := make([]int, len(parts))
		for i, p := range parts {
			if p == "" {
				return nil, fmt.Errorf("line %d: empty syllable in %q", line, text)
			}
			lengths[i] = utf8.RuneCountInString(p)
		}
		e.AddSplit(strings.Join(parts, ""), lengths...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exceptions: %w", err)
	}
	return e, nil
}

// AddSplit registers word with explicit syllable lengths in runes.
func (e *Exceptions) AddSplit(word string, lengths ...int) {
	key := patricia.Prefix(string(lowerRunes(word)))
	if e.trie.Get(key) == nil {
		e.count++
	}
	e.trie.Set(key, append([]int(nil), lengths...))
}

// AddMonosyllable registers word as a single syllable.
func (e *Exceptions) AddMonosyllable(word string) {
	e.AddSplit(word, utf8.RuneCountInString(word))
}

// Len returns the number of registered words.
func (e *Exceptions) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Apply slices word at the registered boundaries, keeping its casing.
// It reports false when word is unknown or the lengths do not fit it.
func (e *Exceptions) Apply(word string) ([]string, bool) {
	if e == nil {
		return nil, false
	}
	item := e.trie.Get(patricia.Prefix(string(lowerRunes(word))))
	if item == nil {
		return nil, false
	}
	lengths := item.([]int)

	runes := []rune(word)
	out := make([]string, 0, len(lengths))
	pos := 0
	for _, n := range lengths {
		if n <= 0 || pos+n > len(runes) {
			return nil, false
		}
		out = append(out, string(runes[pos:pos+n]))
		pos += n
	}
	if pos != len(runes) {
		return nil, false
	}
	return out, true
}
