// internal/daily/daily.go
//
// Deterministic round shape for the Daily Challenge. Evil Hangman has no
// fixed answer word to index, so the date instead fixes the shape of the
// round everyone plays: the word length and the difficulty.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/hangman/apps/go-server/internal/hangman"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

var difficulties = []hangman.Difficulty{hangman.Easy, hangman.Medium, hangman.Hard}

// Shape returns the deterministic round shape for a date using
// HMAC(salt, YYYY-MM-DD): the word length is drawn from the available
// lengths, the difficulty from the three levels. Same date and salt
// always yield the same shape.
func Shape(date time.Time, salt string, lengths []int) (wordLength int, diff hangman.Difficulty) {
	if len(lengths) == 0 {
		return 0, hangman.Medium
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes pick the length, next 8 the difficulty
	n := binary.BigEndian.Uint64(sum[:8])
	d := binary.BigEndian.Uint64(sum[8:16])
	return lengths[n%uint64(len(lengths))], difficulties[d%3]
}
