// Package dictionary loads word lists and hyphenation lists from text files.
//
// A hyphenation list backs Hyphenator, a lookup-based syllable.Hyphenator:
//
//	h, err := dictionary.LoadHyphenatorFile("words.hyph")
//	syllables := syllabifier.Syllabify("Fenster", h)
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrUnknownWord is returned by Hyphenate for words missing from the list.
var ErrUnknownWord = errors.New("word not in hyphenation list")

// LoadWordList reads whitespace separated words, ignoring '#' comments.
func LoadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWordListFile validates and reads a word list file.
func LoadWordListFile(filename string) ([]string, error) {
	if err := ValidateFileFormat(filename, FormatWordList); err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer file.Close()

	words, err := LoadWordList(file)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d words from %s", len(words), filename)
	return words, nil
}

// Hyphenator splits words using a loaded hyphenation list. Lookups are
// case-insensitive and the output keeps the casing of the queried word.
type Hyphenator struct {
	trie  *patricia.Trie
	count int
	mu    sync.RWMutex
}

// NewHyphenator creates an empty Hyphenator.
func NewHyphenator() *Hyphenator {
	return &Hyphenator{trie: patricia.NewTrie()}
}

// LoadHyphenator reads one hyphenated word per line.
func LoadHyphenator(r io.Reader) (*Hyphenator, error) {
	h := NewHyphenator()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := h.Add(text); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hyphenation list: %w", err)
	}
	return h, nil
}

// LoadHyphenatorFile validates and reads a hyphenation list file.
func LoadHyphenatorFile(filename string) (*Hyphenator, error) {
	if err := ValidateFileFormat(filename, FormatHyphenation); err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open hyphenation list %s: %w", filename, err)
	}
	defer file.Close()

	h, err := LoadHyphenator(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("Loaded %d hyphenations from %s", h.Len(), filename)
	return h, nil
}

// Add registers a hyphenated entry such as "Fen-ster".
func (h *Hyphenator) Add(entry string) error {
	parts := strings.Split(entry, "-")
	lengths := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			return fmt.Errorf("empty syllable in %q", entry)
		}
		lengths[i] = utf8.RuneCountInString(p)
	}

	key := patricia.Prefix(lowerWord(strings.Join(parts, "")))

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.trie.Get(key) == nil {
		h.count++
	}
	h.trie.Set(key, lengths)
	return nil
}

// Hyphenate returns the registered split of word.
func (h *Hyphenator) Hyphenate(word string) ([]string, error) {
	h.mu.RLock()
	item := h.trie.Get(patricia.Prefix(lowerWord(word)))
	h.mu.RUnlock()
	if item == nil {
		return nil, fmt.Errorf("%q: %w", word, ErrUnknownWord)
	}

	runes := []rune(word)
	lengths := item.([]int)
	out := make([]string, 0, len(lengths))
	pos := 0
	for _, n := range lengths {
		if pos+n > len(runes) {
			return nil, fmt.Errorf("entry for %q does not fit the word", word)
		}
		out = append(out, string(runes[pos:pos+n]))
		pos += n
	}
	return out, nil
}

// Len returns the number of registered words.
func (h *Hyphenator) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Words returns the registered words starting with prefix, lowercased and in
// trie order. An empty prefix returns every word.
func (h *Hyphenator) Words(prefix string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var words []string
	err := h.trie.VisitSubtree(patricia.Prefix(lowerWord(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting hyphenation trie: %v", err)
	}
	return words
}

func lowerWord(s string) string {
	return strings.Map(unicode.ToLower, s)
}
