// Package annotation holds the sparse index→color map an exercise owns.
//
// The engine never mutates a Map; callers pass it to whichever component
// needs to read or change highlights.
package annotation

import (
	"sort"

	"github.com/lesewerk/silbe/pkg/codec"
	"github.com/lesewerk/silbe/pkg/locate"
)

// Map is a sparse mapping from absolute index to a color token.
// It is not safe for concurrent use.
type Map struct {
	colors map[int]string
}

// New returns an empty Map.
func New() *Map {
	return &Map{colors: make(map[int]string)}
}

// Decode builds a Map from a compressed color string. Malformed tokens are
// skipped.
func Decode(s string) *Map {
	return &Map{colors: codec.DecompressColors(s)}
}

// Set marks index with color. An empty color clears the index.
func (m *Map) Set(index int, color string) {
	if color == "" {
		delete(m.colors, index)
		return
	}
	m.colors[index] = color
}

// SetRange marks every index in [from, to] with color.
func (m *Map) SetRange(from, to int, color string) {
	for i := from; i <= to; i++ {
		m.Set(i, color)
	}
}

// Mark colors every index of a located occurrence.
func (m *Map) Mark(o locate.Occurrence, color string) {
	for _, i := range o.Indices {
		m.Set(i, color)
	}
}

// Clear unmarks index.
func (m *Map) Clear(index int) {
	delete(m.colors, index)
}

// ClearAll unmarks every index.
func (m *Map) ClearAll() {
	m.colors = make(map[int]string)
}

// Query returns the color at index.
func (m *Map) Query(index int) (string, bool) {
	c, ok := m.colors[index]
	return c, ok
}

// Indices returns the marked indices in ascending order.
func (m *Map) Indices() []int {
	out := make([]int, 0, len(m.colors))
	for i := range m.colors {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// WithColor returns the ascending indices marked with color.
func (m *Map) WithColor(color string) []int {
	var out []int
	for i, c := range m.colors {
		if c == color {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// Len returns the number of marked indices.
func (m *Map) Len() int {
	return len(m.colors)
}

// Colors returns a copy of the underlying map.
func (m *Map) Colors() map[int]string {
	out := make(map[int]string, len(m.colors))
	for i, c := range m.colors {
		out[i] = c
	}
	return out
}

// Encode returns the compressed color string.
func (m *Map) Encode() string {
	return codec.CompressColors(m.colors)
}
