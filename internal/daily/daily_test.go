package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
)

func TestDateKey(t *testing.T) {
	d := time.Date(2025, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "2025-03-10", DateKey(d), "date key is taken in UTC")
}

func TestShapeDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lengths := []int{3, 4, 5, 6, 7}

	l1, d1 := Shape(date, "salt", lengths)
	l2, d2 := Shape(date, "salt", lengths)
	assert.Equal(t, l1, l2)
	assert.Equal(t, d1, d2)

	assert.Contains(t, lengths, l1)
	assert.Contains(t, []hangman.Difficulty{hangman.Easy, hangman.Medium, hangman.Hard}, d1)
}

func TestShapeVariesAcrossDates(t *testing.T) {
	lengths := []int{3, 4, 5, 6, 7, 8}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seen := make(map[int]bool)
	for i := 0; i < 30; i++ {
		l, _ := Shape(start.AddDate(0, 0, i), "salt", lengths)
		seen[l] = true
	}
	assert.Greater(t, len(seen), 1, "a month of dates should not all map to one length")
}

func TestShapeEmptyLengths(t *testing.T) {
	l, d := Shape(time.Now(), "salt", nil)
	assert.Equal(t, 0, l)
	assert.Equal(t, hangman.Medium, d)
}
