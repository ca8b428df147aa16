package httpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
)

func TestFormatGuesses(t *testing.T) {
	tests := []struct {
		name    string
		letters []byte
		want    string
	}{
		{"empty", nil, "[]"},
		{"single", []byte("a"), "[a]"},
		{"several", []byte("ace"), "[a, c, e]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatGuesses(tt.letters))
		})
	}
}

func TestParseLetter(t *testing.T) {
	tests := []struct {
		in   string
		want byte
		ok   bool
	}{
		{"a", 'a', true},
		{"Z", 'z', true},
		{" q ", 'q', true},
		{"", 0, false},
		{"ab", 0, false},
		{"1", 0, false},
		{"é", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseLetter(tt.in)
		assert.Equal(t, tt.ok, ok, "parseLetter(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "parseLetter(%q)", tt.in)
		}
	}
}

func TestRoundState(t *testing.T) {
	m, err := hangman.New([]string{"cat", "car", "cop", "dog"})
	require.NoError(t, err)
	require.NoError(t, m.StartRound(3, 1, hangman.Hard))
	assert.Equal(t, "playing", roundState(m))

	// a miss burns the whole one-point budget
	_, err = m.Guess('z')
	require.NoError(t, err)
	assert.Equal(t, "lost", roundState(m))

	// a fresh round driven to a full pattern reads as won
	require.NoError(t, m.StartRound(3, 9, hangman.Hard))
	for _, c := range []byte{'c', 'a', 't', 'r', 'o', 'p', 'd', 'g'} {
		if roundState(m) != "playing" {
			break
		}
		_, err = m.Guess(c)
		require.NoError(t, err)
	}
	assert.Equal(t, "won", roundState(m))
}
