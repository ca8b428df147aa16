// internal/hangman/types.go
//
// Core type definitions for the Evil Hangman engine.
// Defines:
//   - Difficulty: how often the manager grants "mercy" on family selection.
//   - Sentinel errors for the engine's precondition violations.

package hangman

import (
	"errors"
	"strings"
)

// Blank marks an unrevealed position in a displayed pattern.
const Blank = '-'

// Difficulty controls the mercy schedule of the family selector.
// Possible values:
//   - "easy":   commit to the second-hardest family every other guess.
//   - "medium": commit to the second-hardest family every fourth guess.
//   - "hard":   always commit to the hardest family.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a string (case-insensitive, surrounding space
// ignored) to a Difficulty. An empty string defaults to Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Medium, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return "", errors.New("hangman: unknown difficulty")
}

// valid reports whether d is one of the three known difficulties.
func (d Difficulty) valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Engine precondition errors. All are detected before any state mutation,
// so a rejected call leaves the manager unchanged.
var (
	ErrEmptyDictionary = errors.New("hangman: dictionary must contain at least one word")
	ErrBadConfig       = errors.New("hangman: word length must be > 0, wrong-guess budget >= 1, difficulty must be known")
	ErrRoundNotStarted = errors.New("hangman: round not started")
	ErrAlreadyGuessed  = errors.New("hangman: letter already guessed this round")
	ErrEmptyPool       = errors.New("hangman: no candidate words left")
)
