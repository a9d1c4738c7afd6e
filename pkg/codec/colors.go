package codec

import (
	"sort"
	"strings"
)

// CompressColors encodes an index→color map. Entries with a negative index,
// an empty color or a color containing ',' cannot be represented and are
// dropped.
func CompressColors(colors map[int]string) string {
	keys := make([]int, 0, len(colors))
	for k, c := range colors {
		if k >= 0 && c != "" && !strings.Contains(c, ",") {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	var parts []string
	for i := 0; i < len(keys); {
		r := run{start: keys[i], end: keys[i]}
		color := colors[keys[i]]
		i++
		for i < len(keys) && keys[i] == r.end+1 && colors[keys[i]] == color {
			r.end = keys[i]
			i++
		}
		parts = append(parts, r.String()+":"+color)
	}
	return strings.Join(parts, ",")
}

// parseColorToken splits "range:color" at the first colon.
func parseColorToken(token string) (run, string, string) {
	rangePart, color, ok := strings.Cut(token, ":")
	if !ok {
		return run{}, "", "missing color"
	}
	if color == "" {
		return run{}, "", "empty color"
	}
	r, reason := parseRun(rangePart)
	if reason != "" {
		return run{}, "", reason
	}
	return r, color, ""
}

// DecompressColors decodes s, skipping malformed or colorless tokens.
// A later token wins when ranges overlap.
func DecompressColors(s string) map[int]string {
	out := make(map[int]string)
	for _, token := range splitTokens(s) {
		r, color, reason := parseColorToken(token)
		if reason != "" {
			continue
		}
		for i := r.start; i <= r.end; i++ {
			out[i] = color
		}
	}
	return out
}

// ValidateColors returns the first token DecompressColors would skip.
func ValidateColors(s string) error {
	for i, token := range splitTokens(s) {
		if _, _, reason := parseColorToken(token); reason != "" {
			return &MalformedTokenError{Token: token, Position: i, Reason: reason}
		}
	}
	return nil
}
