package cluster

// Chunk splits text into chunks by greedy left-to-right matching against set.
// At each position the first cluster in declared order that matches wins;
// otherwise one character is consumed. Chunks keep the casing of text.
// A nil set yields single characters.
func Chunk(text string, set *Set) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{}
	}
	lower := lowerRunes(text)

	out := make([]string, 0, len(runes))
	for pos := 0; pos < len(runes); {
		size := 1
		if c, ok := set.MatchAt(lower, pos); ok {
			size = c.Len()
		}
		out = append(out, string(runes[pos:pos+size]))
		pos += size
	}
	return out
}

// Singles splits text into one chunk per character.
func Singles(text string) []string {
	runes := []rune(text)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
