// internal/words/words.go
//
// Provides the dictionary for the Evil Hangman engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back
//     to the embedded default dictionary.
//   - Normalize (lowercase, alphabetic only) and deduplicate words.
//   - Supply utility functions: Dictionary, Lengths, Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_DICTIONARY_FILE is set, load words from that file.
//   2. Otherwise fall back to the embedded `assets/dictionary.txt`.
//
// Environment variables:
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.txt
//
// Constraints:
//   • Words must be alphabetic (a–z); any length ≥ 1 is accepted.
//   • The list is normalized to lowercase and deduplicated.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/apps/go-server/assets"
)

var (
	initOnce   sync.Once
	dict       []string // sorted, deduplicated dictionary
	lengths    []int    // distinct word lengths present, ascending
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_DICTIONARY_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			embedded, err := assets.DictionaryList()
			if err != nil {
				initialErr = err
				return
			}
			list = keepValid(embedded)
		}

		dict = dedupe(list)
		lengths = distinctLengths(dict)

		if len(dict) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) > 0 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters an already-lowercased list down to alphabetic words.
func keepValid(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if len(w) > 0 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// dedupe removes duplicates and sorts the result.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// distinctLengths collects the word lengths present, ascending.
func distinctLengths(list []string) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, w := range list {
		if _, ok := seen[len(w)]; !ok {
			seen[len(w)] = struct{}{}
			out = append(out, len(w))
		}
	}
	sort.Ints(out)
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Dictionary returns the loaded word list (sorted, deduplicated).
func Dictionary() []string {
	return dict
}

// Lengths returns the distinct word lengths available, ascending.
func Lengths() []int {
	return lengths
}

// Stats returns counts of loaded words: (words, distinct lengths).
func Stats() (wordCount int, lengthCount int) {
	return len(dict), len(lengths)
}
