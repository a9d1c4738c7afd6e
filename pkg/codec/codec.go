/*
Package codec compresses integer sets and index→color maps into compact
range strings.

Index sets are sorted, grouped into runs of consecutive integers and joined
with commas:

	{1,2,3,5,10,11} -> "1-3,5,10-11"

Color maps group consecutive indices that share a color:

	{0:red,1:red,2:red,4:blue} -> "0-2:red,4:blue"

Decompression is best-effort: malformed tokens are skipped. Use
ValidateIndices or ValidateColors to learn about the first bad token.
*/
package codec

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedToken is the sentinel matched by every *MalformedTokenError.
var ErrMalformedToken = errors.New("malformed token")

// MalformedTokenError describes a token a decompressor had to skip.
type MalformedTokenError struct {
	Token    string
	Position int
	Reason   string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed token %q at position %d: %s", e.Token, e.Position, e.Reason)
}

func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// maxRunLength bounds the expansion of a single "a-b" token.
const maxRunLength = 1 << 20

// run is an inclusive range [start, end].
type run struct {
	start, end int
}

func (r run) String() string {
	if r.start == r.end {
		return strconv.Itoa(r.start)
	}
	return strconv.Itoa(r.start) + "-" + strconv.Itoa(r.end)
}

// parseRun parses "n" or "a-b" with 0 <= a <= b.
func parseRun(token string) (run, string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return run{}, "empty range"
	}
	lo, hi, isRange := strings.Cut(token, "-")
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil || start < 0 {
		return run{}, "invalid start"
	}
	if !isRange {
		return run{start: start, end: start}, ""
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil || end < start {
		return run{}, "invalid end"
	}
	if end-start >= maxRunLength {
		return run{}, "range too long"
	}
	return run{start: start, end: end}, ""
}

func splitTokens(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// CompressIndices encodes a set of non-negative integers. Duplicates are
// ignored and negative values dropped.
func CompressIndices(indices []int) string {
	sorted := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 {
			sorted = append(sorted, i)
		}
	}
	sort.Ints(sorted)

	var parts []string
	for i := 0; i < len(sorted); {
		r := run{start: sorted[i], end: sorted[i]}
		i++
		for i < len(sorted) && sorted[i] <= r.end+1 {
			r.end = sorted[i]
			i++
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

// DecompressIndices decodes s into an ascending set, skipping malformed tokens.
func DecompressIndices(s string) []int {
	seen := make(map[int]bool)
	out := []int{}
	for _, token := range splitTokens(s) {
		r, reason := parseRun(token)
		if reason != "" {
			continue
		}
		for i := r.start; i <= r.end; i++ {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	sort.Ints(out)
	return out
}

// ValidateIndices returns the first token DecompressIndices would skip.
func ValidateIndices(s string) error {
	for i, token := range splitTokens(s) {
		if _, reason := parseRun(token); reason != "" {
			return &MalformedTokenError{Token: token, Position: i, Reason: reason}
		}
	}
	return nil
}
