package hangman

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// famsOf builds a family map with placeholder words of the given sizes.
func famsOf(sizes map[string]int) map[string][]string {
	fams := make(map[string][]string, len(sizes))
	for p, n := range sizes {
		ws := make([]string, n)
		for i := range ws {
			ws[i] = fmt.Sprintf("%s#%d", p, i)
		}
		fams[p] = ws
	}
	return fams
}

func TestHarderOrder(t *testing.T) {
	tests := []struct {
		name  string
		sizes map[string]int
		a, b  string
	}{
		{"larger family wins", map[string]int{"c--": 3, "---": 1}, "c--", "---"},
		{"size tie, more blanks wins", map[string]int{"ca-": 1, "cat": 1}, "ca-", "cat"},
		{"full tie, lexicographically smaller wins", map[string]int{"-a-": 2, "-b-": 2}, "-a-", "-b-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fams := famsOf(tt.sizes)
			assert.True(t, harder(fams, tt.a, tt.b))
			// strict order: the reverse comparison must disagree
			assert.False(t, harder(fams, tt.b, tt.a))
		})
	}
}

func TestHarderIsTransitive(t *testing.T) {
	fams := famsOf(map[string]int{"a--": 3, "-b-": 3, "--c": 1})
	// a-- beats -b- on lex, -b- beats --c on size
	assert.True(t, harder(fams, "a--", "-b-"))
	assert.True(t, harder(fams, "-b-", "--c"))
	assert.True(t, harder(fams, "a--", "--c"))
}

func TestMercySchedule(t *testing.T) {
	for counter := 1; counter <= 8; counter++ {
		assert.False(t, mercyDue(Hard, counter), "hard never grants mercy (counter=%d)", counter)
		assert.Equal(t, counter%2 == 0, mercyDue(Easy, counter), "easy mercy at every other guess (counter=%d)", counter)
		assert.Equal(t, counter%4 == 0, mercyDue(Medium, counter), "medium mercy at every fourth guess (counter=%d)", counter)
	}
}

func TestChooseFamilyHardest(t *testing.T) {
	fams := famsOf(map[string]int{"c--": 3, "-a-": 2, "---": 2})
	assert.Equal(t, "c--", chooseFamily(fams, Hard, 1))
	// size tie between -a- and ---: more blanks ranks ahead
	delete(fams, "c--")
	assert.Equal(t, "---", chooseFamily(fams, Hard, 1))
}

func TestChooseFamilySecondOnMercy(t *testing.T) {
	fams := famsOf(map[string]int{"b--": 4, "---": 1})
	assert.Equal(t, "b--", chooseFamily(fams, Easy, 1))
	assert.Equal(t, "---", chooseFamily(fams, Easy, 2))
	assert.Equal(t, "b--", chooseFamily(fams, Medium, 2))
	assert.Equal(t, "---", chooseFamily(fams, Medium, 4))
	assert.Equal(t, "b--", chooseFamily(fams, Hard, 2))
}

func TestChooseFamilyMercySkippedWithSingleFamily(t *testing.T) {
	fams := famsOf(map[string]int{"---": 5})
	assert.Equal(t, "---", chooseFamily(fams, Easy, 2))
	assert.Equal(t, "---", chooseFamily(fams, Medium, 4))
}

// chooseFamily must not modify the map it is handed; the same map is
// returned to callers as the per-guess family counts.
func TestChooseFamilyDoesNotMutate(t *testing.T) {
	fams := famsOf(map[string]int{"b--": 4, "-o-": 2, "---": 1})
	_ = chooseFamily(fams, Easy, 2)
	assert.Len(t, fams, 3)
	assert.Len(t, fams["b--"], 4)
	assert.Len(t, fams["-o-"], 2)
	assert.Len(t, fams["---"], 1)
}
