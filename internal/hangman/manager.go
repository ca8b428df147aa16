// internal/hangman/manager.go
//
// Round state machine for Evil Hangman.
// Responsibilities:
//   - Hold the fixed dictionary and the active round's state (candidate
//     pool, displayed pattern, guess history, wrong-guess budget).
//   - Process guesses by partitioning the pool into word families and
//     committing to one family per the difficulty policy.
//   - Resolve the round to a concrete secret word only at the end.
//
// Notes:
//   - A Manager is single-threaded by design: every call mutates owned
//     in-memory state in place. Callers running concurrently must
//     serialize access (one manager per active round, or a lock above).
//   - The only nondeterminism is the final random draw in SecretWord;
//     the source is injectable for tests via WithRand.

package hangman

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Manager keeps every word still consistent with the guesses made so far
// and only commits to one concrete secret when the round ends.
type Manager struct {
	dict  []string // deduplicated, sorted, fixed at construction
	debug bool
	rng   *rand.Rand

	started    bool
	wordLength int
	difficulty Difficulty
	wrongLeft  int
	pattern    string
	pool       []string
	guessed    map[byte]bool
	counter    int // 1-based guess number, drives the mercy schedule
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithDebug enables debug logging of per-guess partition results.
func WithDebug(on bool) Option {
	return func(m *Manager) { m.debug = on }
}

// WithRand injects the random source used by SecretWord.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// New builds a Manager over the given word set. The set must be non-empty;
// it is deduplicated and sorted once and never changes afterwards.
func New(words []string, opts ...Option) (*Manager, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	seen := make(map[string]struct{}, len(words))
	dict := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		dict = append(dict, w)
	}
	sort.Strings(dict)

	m := &Manager{
		dict: dict,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// WordCount returns how many dictionary words have the given length.
// Always answers from the full dictionary, regardless of round state.
func (m *Manager) WordCount(length int) int {
	n := 0
	for _, w := range m.dict {
		if len(w) == length {
			n++
		}
	}
	return n
}

// StartRound resets all round state for a fresh game: the pool becomes
// every dictionary word of the requested length, the pattern all blanks,
// the guess history empty, and the budget maxWrong.
func (m *Manager) StartRound(wordLength, maxWrong int, diff Difficulty) error {
	if wordLength <= 0 || maxWrong < 1 || !diff.valid() {
		return ErrBadConfig
	}
	m.started = true
	m.wordLength = wordLength
	m.wrongLeft = maxWrong
	m.difficulty = diff
	m.counter = 1
	m.pattern = strings.Repeat(string(Blank), wordLength)
	m.guessed = make(map[byte]bool)
	m.pool = m.wordsOfLength(wordLength)
	return nil
}

func (m *Manager) wordsOfLength(length int) []string {
	out := make([]string, 0, len(m.dict))
	for _, w := range m.dict {
		if len(w) == length {
			out = append(out, w)
		}
	}
	return out
}

// PoolSize returns the number of words still possible this round.
func (m *Manager) PoolSize() int { return len(m.pool) }

// GuessesLeft returns the remaining wrong-guess budget.
func (m *Manager) GuessesLeft() int { return m.wrongLeft }

// Pattern returns the current displayed pattern: revealed letters plus
// '-' for unrevealed positions.
func (m *Manager) Pattern() string { return m.pattern }

// Guesses returns the letters guessed this round in alphabetical order.
func (m *Manager) Guesses() []byte {
	out := make([]byte, 0, len(m.guessed))
	for c := range m.guessed {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AlreadyGuessed reports whether c was guessed earlier this round.
func (m *Manager) AlreadyGuessed(c byte) bool { return m.guessed[c] }

// Guess records letter c, partitions the candidate pool into word
// families, commits to one family per the difficulty policy, and updates
// pattern, pool and budget. The budget decrements exactly when the
// committed pattern equals the pattern before the guess; any guess that
// changes the pattern is never penalized.
//
// The returned map holds every family's size keyed by pattern, not just
// the committed one (useful for inspection and testing).
func (m *Manager) Guess(c byte) (map[string]int, error) {
	if !m.started {
		return nil, ErrRoundNotStarted
	}
	if m.guessed[c] {
		return nil, ErrAlreadyGuessed
	}
	if len(m.pool) == 0 {
		return nil, ErrEmptyPool
	}
	m.guessed[c] = true

	fams := partition(m.pool, m.pattern, c)
	counts := make(map[string]int, len(fams))
	for p, ws := range fams {
		counts[p] = len(ws)
	}

	chosen := chooseFamily(fams, m.difficulty, m.counter)
	m.counter++

	if m.debug {
		log.Debug().
			Str("letter", string(c)).
			Int("families", len(fams)).
			Str("committed", chosen).
			Int("pool", len(fams[chosen])).
			Msg("guess partitioned")
	}

	// A guess that leaves the displayed pattern unchanged is wrong.
	if chosen == m.pattern {
		m.wrongLeft--
	} else {
		m.pattern = chosen
	}
	m.pool = fams[chosen]
	return counts, nil
}

// SecretWord resolves the round to one concrete word, drawn uniformly at
// random from the last committed family. This is the only point where a
// secret is fixed. Afterwards the pool bookkeeping resets to every
// dictionary word of the round's length, so queries keep answering from
// the full dictionary rather than the finished round's shrunk pool.
func (m *Manager) SecretWord() (string, error) {
	if len(m.pool) == 0 {
		return "", ErrEmptyPool
	}
	w := m.pool[m.rng.Intn(len(m.pool))]
	if m.debug {
		log.Debug().Str("secret", w).Int("candidates", len(m.pool)).Msg("round resolved")
	}
	m.pool = m.wordsOfLength(m.wordLength)
	return w, nil
}
