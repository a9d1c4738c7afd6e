/*
Package engine ties the decomposition packages to one configuration.

An Engine owns a cluster set, the use-clusters flag, a Syllabifier with its
own memo cache and an optional default Hyphenator. Two engines never share
state, so exercises with different cluster lists can run side by side.

	e, err := engine.New(config.DefaultConfig().Engine)
	d := e.Decompose("Fenster", 0)
	// d.Syllables: Fen@0 ster@3
	// d.Chunks:    F@0 e@1 n@2 st@3 er@5

When use-clusters is off every operation sees an empty cluster list:
chunks are single characters, nothing binds right and occurrences are
never merged.
*/
package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/lesewerk/silbe/internal/logger"
	"github.com/lesewerk/silbe/pkg/cluster"
	"github.com/lesewerk/silbe/pkg/config"
	"github.com/lesewerk/silbe/pkg/dictionary"
	"github.com/lesewerk/silbe/pkg/frequency"
	"github.com/lesewerk/silbe/pkg/locate"
	"github.com/lesewerk/silbe/pkg/syllable"
)

// IEngine defines the decomposition operations exposed to the server and CLI.
type IEngine interface {
	// Syllabify splits word with the engine's default hyphenator
	Syllabify(word string) []string

	// SyllabifyWith splits word with h, falling back to the heuristic
	SyllabifyWith(word string, h syllable.Hyphenator) []string

	// Chunk splits a syllable or other unit into clusters and letters
	Chunk(text string) []string

	// Decompose returns syllables and chunks with absolute offsets
	Decompose(word string, startIndex int) Decomposition

	// Locate finds every occurrence of target in word
	Locate(word, target string, startIndex int) []locate.Occurrence

	// BindsRight reports the absolute indices glued to their right neighbour
	BindsRight(word string, startIndex int) map[int]bool

	// Glued returns the binding indices of the cluster holding absIndex
	Glued(word string, startIndex, absIndex int) []int

	// Frequencies counts clusters and letters across words
	Frequencies(words []string) frequency.Table

	// Stats returns cache and dictionary statistics
	Stats() map[string]int
}

// Engine is safe for concurrent use.
type Engine struct {
	set         *cluster.Set
	useClusters bool
	syllabifier *syllable.Syllabifier
	hyphenator  syllable.Hyphenator
	logger      *log.Logger
}

var _ IEngine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*options)

type options struct {
	hyphenator syllable.Hyphenator
	exceptions *syllable.Exceptions
	logger     *log.Logger
}

// WithHyphenator sets the default hyphenator, overriding hyphenation_file.
func WithHyphenator(h syllable.Hyphenator) Option {
	return func(o *options) {
		o.hyphenator = h
	}
}

// WithExceptions replaces the built-in exception dictionary.
func WithExceptions(e *syllable.Exceptions) Option {
	return func(o *options) {
		o.exceptions = e
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New builds an Engine from cfg. It fails when the cluster list is invalid
// or the hyphenation file cannot be loaded.
func New(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.New("engine")
	}

	set, err := cluster.NewSet(cfg.Clusters, cfg.InitialOnly)
	if err != nil {
		return nil, fmt.Errorf("invalid cluster configuration: %w", err)
	}

	h := o.hyphenator
	if h == nil && cfg.HyphenationFile != "" {
		dict, err := dictionary.LoadHyphenatorFile(cfg.HyphenationFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load hyphenation file: %w", err)
		}
		o.logger.Debugf("Loaded %d hyphenations from %s", dict.Len(), cfg.HyphenationFile)
		h = dict
	}

	sylOpts := []syllable.Option{
		syllable.WithCache(syllable.NewCache(cfg.CacheMaxEntries)),
		syllable.WithLogger(o.logger),
	}
	if o.exceptions != nil {
		sylOpts = append(sylOpts, syllable.WithExceptions(o.exceptions))
	}

	e := &Engine{
		set:         set,
		useClusters: cfg.UseClusters,
		syllabifier: syllable.New(sylOpts...),
		hyphenator:  h,
		logger:      o.logger,
	}
	o.logger.Debug("Engine ready", "clusters", set.Len(), "useClusters", cfg.UseClusters, "cacheMax", cfg.CacheMaxEntries)
	return e, nil
}

// Clusters returns the active cluster set, nil when use-clusters is off.
func (e *Engine) Clusters() *cluster.Set {
	if !e.useClusters {
		return nil
	}
	return e.set
}

// Syllabify splits word with the engine's default hyphenator.
func (e *Engine) Syllabify(word string) []string {
	return e.syllabifier.Syllabify(word, e.hyphenator)
}

// SyllabifyWith splits word with h. A nil h selects the heuristic.
func (e *Engine) SyllabifyWith(word string, h syllable.Hyphenator) []string {
	return e.syllabifier.Syllabify(word, h)
}

// Chunk splits text into chunks, treating position 0 as a unit start.
func (e *Engine) Chunk(text string) []string {
	if !e.useClusters {
		return cluster.Singles(text)
	}
	return cluster.Chunk(text, e.set)
}

// Locate finds every occurrence of target in word.
func (e *Engine) Locate(word, target string, startIndex int) []locate.Occurrence {
	return locate.Locate(word, e.Syllabify(word), target, e.Clusters(), startIndex)
}

// BindsRight reports the absolute indices that render glued to their right
// neighbour.
func (e *Engine) BindsRight(word string, startIndex int) map[int]bool {
	return locate.BindsRight(word, e.Syllabify(word), e.Clusters(), startIndex)
}

// Glued returns the binding indices of the cluster containing absIndex, nil
// when absIndex belongs to no cluster.
func (e *Engine) Glued(word string, startIndex, absIndex int) []int {
	return locate.Glued(word, e.Syllabify(word), e.Clusters(), startIndex, absIndex)
}

// Resolver returns the adjacency resolver for word.
func (e *Engine) Resolver(word string, startIndex int) *locate.Resolver {
	return locate.NewResolver(word, e.Syllabify(word), e.Clusters(), startIndex)
}

// Frequencies counts clusters and leftover letters across words.
func (e *Engine) Frequencies(words []string) frequency.Table {
	table := frequency.Count(words, e.Clusters(), e.Syllabify)
	e.logger.Debug("Counted corpus", "words", len(words), "tokens", len(table))
	return table
}

// Stats returns cache and dictionary statistics.
func (e *Engine) Stats() map[string]int {
	stats := e.syllabifier.Stats()
	stats["clusters"] = e.set.Len()
	if d, ok := e.hyphenator.(*dictionary.Hyphenator); ok {
		stats["hyphenations"] = d.Len()
	}
	return stats
}

// Segment is a piece of a word with its absolute start index.
type Segment struct {
	Text  string
	Start int
}

// End returns the absolute index of the last character.
func (s Segment) End() int {
	return s.Start + utf8.RuneCountInString(s.Text) - 1
}

// Contains reports whether abs falls inside the segment.
func (s Segment) Contains(abs int) bool {
	return abs >= s.Start && abs <= s.End()
}

// Decomposition holds the syllables of a word and the chunks of each
// syllable, in order.
type Decomposition struct {
	Word      string
	Syllables []Segment
	Chunks    []Segment
}

// Decompose splits word into syllables, then chunks every syllable.
func (e *Engine) Decompose(word string, startIndex int) Decomposition {
	d := Decomposition{Word: word}
	pos := startIndex
	for _, syl := range e.Syllabify(word) {
		if syl == "" {
			continue
		}
		d.Syllables = append(d.Syllables, Segment{Text: syl, Start: pos})
		chunkPos := pos
		for _, c := range e.Chunk(syl) {
			d.Chunks = append(d.Chunks, Segment{Text: c, Start: chunkPos})
			chunkPos += utf8.RuneCountInString(c)
		}
		pos = chunkPos
	}
	return d
}

// ChunkAt returns the chunk owning absolute index abs.
func (d Decomposition) ChunkAt(abs int) (Segment, bool) {
	return segmentAt(d.Chunks, abs)
}

// SyllableAt returns the syllable owning absolute index abs.
func (d Decomposition) SyllableAt(abs int) (Segment, bool) {
	return segmentAt(d.Syllables, abs)
}

func segmentAt(segments []Segment, abs int) (Segment, bool) {
	for _, s := range segments {
		if s.Contains(abs) {
			return s, true
		}
	}
	return Segment{}, false
}
