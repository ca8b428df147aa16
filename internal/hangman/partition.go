// internal/hangman/partition.go
//
// Word-family partitioning: the heart of the "evil" in Evil Hangman.
// For a guessed letter, every candidate word maps to exactly one response
// pattern, and the words sharing a pattern form a family. The manager
// later commits to one family instead of to a concrete word.

package hangman

// partition splits pool into word families keyed by response pattern for
// the guessed letter c. At each position the pattern shows c where the
// word has c and carries the current pattern forward otherwise, so
// previously revealed letters persist and words without c all land in
// the family keyed by the unchanged pattern (the "miss" family).
//
// The families partition pool exactly: every word appears in one family
// and the family sizes sum to len(pool). Cost O(len(pool) × word length).
func partition(pool []string, pattern string, c byte) map[string][]string {
	fams := make(map[string][]string)
	buf := make([]byte, len(pattern))
	for _, w := range pool {
		for i := 0; i < len(pattern); i++ {
			if w[i] == c {
				buf[i] = c
			} else {
				buf[i] = pattern[i]
			}
		}
		key := string(buf)
		fams[key] = append(fams[key], w)
	}
	return fams
}
