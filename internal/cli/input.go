// Package cli handles cmd line input for trying out the engine in real-time.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lesewerk/silbe/internal/utils"
	"github.com/lesewerk/silbe/pkg/annotation"
	"github.com/lesewerk/silbe/pkg/codec"
	"github.com/lesewerk/silbe/pkg/engine"
)

// Syllables alternate between these two colors, like in a reading primer.
var (
	syllableStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
	}
	clusterStyle = lipgloss.NewStyle().Underline(true)
	hitStyle     = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#f6c177", Dark: "#ea9a97"}).
			Foreground(lipgloss.Color("#191724"))
	dimStyle = lipgloss.NewStyle().Faint(true)
)

// InputHandler reads words from stdin and prints their decomposition.
//
// A line is a list of words. "word ? target" highlights every occurrence of
// target in word, and ":freq" followed by text prints its frequency table.
type InputHandler struct {
	engine       engine.IEngine
	out          io.Writer
	maxLength    int
	showChunks   bool
	color        bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(e engine.IEngine, maxLength int, showChunks, color bool) *InputHandler {
	return &InputHandler{
		engine:     e,
		out:        os.Stdout,
		maxLength:  maxLength,
		showChunks: showChunks,
		color:      color,
	}
}

// SetOutput redirects the rendered results.
func (h *InputHandler) SetOutput(w io.Writer) {
	h.out = w
}

// Start begins the interface loop on stdin.
func (h *InputHandler) Start() error {
	log.Print("silbe CLI")
	log.Print("type a word and press Enter (word ? target to search, :freq text for counts, Ctrl+C to exit):")
	return h.Run(os.Stdin)
}

// Run processes every line of r until it ends.
func (h *InputHandler) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	start := time.Now()
	defer func() {
		log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)
	}()

	if rest, ok := strings.CutPrefix(line, ":freq"); ok {
		h.PrintFrequencies(utils.SplitWords(rest))
		return
	}

	if word, target, ok := strings.Cut(line, "?"); ok {
		word, target = strings.TrimSpace(word), strings.TrimSpace(target)
		if !h.accept(word) || target == "" {
			return
		}
		h.printOccurrences(word, target)
		return
	}

	for _, word := range utils.SplitWords(line) {
		if h.accept(word) {
			h.printWord(word)
		}
	}
}

func (h *InputHandler) accept(word string) bool {
	if !utils.IsValidWord(word, h.maxLength) {
		log.Errorf("Not a word (or longer than %d): %s", h.maxLength, word)
		return false
	}
	return true
}

func (h *InputHandler) printWord(word string) {
	d := h.engine.Decompose(word, 0)
	fmt.Fprintln(h.out, h.RenderSyllables(d))
	if h.showChunks {
		fmt.Fprintln(h.out, "  "+h.RenderChunks(d))
	}
}

func (h *InputHandler) printOccurrences(word, target string) {
	found := h.engine.Locate(word, target, 0)
	if len(found) == 0 {
		log.Warnf("No '%s' in '%s'", target, word)
		return
	}
	hits := annotation.New()
	for _, o := range found {
		hits.Mark(o, "hit")
	}
	marked := make(map[int]bool, hits.Len())
	for _, i := range hits.Indices() {
		marked[i] = true
	}
	fmt.Fprintf(h.out, "%s  (%d found, %s)\n", h.RenderMarked(word, marked), len(found), codec.CompressIndices(hits.Indices()))
}

// PrintFrequencies prints the frequency table of words, most frequent first.
func (h *InputHandler) PrintFrequencies(words []string) {
	if len(words) == 0 {
		log.Warn("No words to count")
		return
	}
	table := h.engine.Frequencies(words)
	tokens := make([]string, 0, len(table))
	for token := range table {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if table[tokens[i]] != table[tokens[j]] {
			return table[tokens[i]] > table[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	fmt.Fprintf(h.out, "%d words, %d tokens\n", len(words), len(tokens))
	for i, token := range tokens {
		fmt.Fprintf(h.out, "%2d. %-6s %8s\n", i+1, token, utils.FormatWithCommas(table[token]))
	}
}

// RenderSyllables joins the syllables with a middle dot, coloring them
// alternately when color is enabled.
func (h *InputHandler) RenderSyllables(d engine.Decomposition) string {
	parts := make([]string, len(d.Syllables))
	for i, s := range d.Syllables {
		parts[i] = h.style(syllableStyles[i%len(syllableStyles)], s.Text)
	}
	return strings.Join(parts, h.style(dimStyle, "·"))
}

// RenderChunks lists the chunks separated by spaces, underlining clusters.
func (h *InputHandler) RenderChunks(d engine.Decomposition) string {
	parts := make([]string, len(d.Chunks))
	for i, c := range d.Chunks {
		if len([]rune(c.Text)) > 1 {
			parts[i] = h.style(clusterStyle, c.Text)
		} else {
			parts[i] = c.Text
		}
	}
	return strings.Join(parts, " ")
}

// RenderMarked highlights the characters of word whose index is marked.
// Without color the marked runs are wrapped in brackets.
func (h *InputHandler) RenderMarked(word string, marked map[int]bool) string {
	var b strings.Builder
	runes := []rune(word)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && marked[j] == marked[i] {
			j++
		}
		run := string(runes[i:j])
		switch {
		case !marked[i]:
			b.WriteString(run)
		case h.color:
			b.WriteString(hitStyle.Render(run))
		default:
			b.WriteString("[" + run + "]")
		}
		i = j
	}
	return b.String()
}

func (h *InputHandler) style(s lipgloss.Style, text string) string {
	if !h.color {
		return text
	}
	return s.Render(text)
}
