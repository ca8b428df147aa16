// internal/hangman/select.go
//
// Family selection: which response pattern the manager commits to.
// "Hardest" is a strict total order over patterns; the mercy schedule
// occasionally commits to the runner-up so easy/medium rounds stay
// winnable.

package hangman

// harder reports whether pattern a outranks pattern b as the hardest
// commit for the manager, comparing in order:
//  1. family size, larger wins (more candidates kept alive);
//  2. number of blanks, more wins (reveals the least information);
//  3. lexicographically smaller pattern wins.
// Distinct patterns never compare equal, so the order is strict and
// total and selection is deterministic.
func harder(fams map[string][]string, a, b string) bool {
	if len(fams[a]) != len(fams[b]) {
		return len(fams[a]) > len(fams[b])
	}
	if ba, bb := countBlanks(a), countBlanks(b); ba != bb {
		return ba > bb
	}
	return a < b
}

// countBlanks returns the number of unrevealed positions in p.
func countBlanks(p string) int {
	n := 0
	for i := 0; i < len(p); i++ {
		if p[i] == Blank {
			n++
		}
	}
	return n
}

// mercyDue reports whether the guess numbered counter (1-based) is a
// scheduled mercy guess for the given difficulty.
func mercyDue(diff Difficulty, counter int) bool {
	switch diff {
	case Easy:
		return counter%2 == 0
	case Medium:
		return counter%4 == 0
	default:
		return false
	}
}

// chooseFamily picks the pattern the manager commits to. Normally that is
// the hardest family; on mercy guesses it is the second-hardest, unless
// the map holds a single family (nothing to discard, mercy is skipped).
//
// Best and second-best are tracked in a single pass under the harder
// order, so fams is never mutated and matches the counts returned to the
// caller.
func chooseFamily(fams map[string][]string, diff Difficulty, counter int) string {
	var best, second string
	for p := range fams {
		switch {
		case best == "":
			best = p
		case harder(fams, p, best):
			second = best
			best = p
		case second == "" || harder(fams, p, second):
			second = p
		}
	}
	if mercyDue(diff, counter) && second != "" {
		return second
	}
	return best
}
