package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepValid(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"about", true},
		{"ox", true},
		{"", false},        // empty line
		{"don't", false},   // punctuation
		{"naïve", false},   // non-ASCII
		{"word2", false},   // digits
	}
	for _, tt := range tests {
		got := keepValid([]string{tt.word})
		if tt.expected {
			assert.Equal(t, []string{tt.word}, got, "keepValid(%q)", tt.word)
		} else {
			assert.Empty(t, got, "keepValid(%q)", tt.word)
		}
	}
}

func TestDedupeSorts(t *testing.T) {
	got := dedupe([]string{"dog", "cat", "dog", "ape", "cat"})
	assert.Equal(t, []string{"ape", "cat", "dog"}, got)
}

func TestDistinctLengths(t *testing.T) {
	got := distinctLengths([]string{"ox", "cat", "dog", "horse", "ox"})
	assert.Equal(t, []int{2, 3, 5}, got)
}
