package wordstore

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswordlayout/internal/domain"
)

func fixtureEntries() []domain.WordEntry {
	return []domain.WordEntry{
		{Surface: "anel", Hints: []string{"ring, in Portuguese"}},
		{Surface: "animal", Hints: []string{"a living creature"}},
		{Surface: "ato", Hints: []string{"an act"}},
		{Surface: "mato", Hints: []string{"brush, scrubland"}},
		{Surface: "sol", Hints: []string{"the sun"}},
	}
}

func TestWordPoolLookup(t *testing.T) {
	pool := NewWordPool(fixtureEntries())

	entry, err := pool.Lookup("anel")
	require.NoError(t, err)
	assert.Equal(t, []string{"ring, in Portuguese"}, entry.Hints)

	_, err = pool.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWordPoolUniqueWordsDeduplicatesAndPreservesOrder(t *testing.T) {
	entries := append(fixtureEntries(), domain.WordEntry{Surface: "anel", Hints: []string{"duplicate"}})
	pool := NewWordPool(entries)

	assert.Equal(t, 5, pool.Size())
	assert.Equal(t, []string{"anel", "animal", "ato", "mato", "sol"}, pool.UniqueWords(0, 0))
}

func TestWordPoolUniqueWordsAppliesOffsetAndCap(t *testing.T) {
	pool := NewWordPool(fixtureEntries())

	assert.Equal(t, []string{"animal", "ato", "mato", "sol"}, pool.UniqueWords(1, 0))
	// mostFrequents is an absolute upper index into the full list, not a
	// count relative to the offset: order[1:3] == {"animal", "ato"}.
	assert.Equal(t, []string{"animal", "ato"}, pool.UniqueWords(1, 3))
	assert.Equal(t, []string{"anel", "animal"}, pool.UniqueWords(0, 2))
	assert.Nil(t, pool.UniqueWords(100, 0))
	assert.Nil(t, pool.UniqueWords(3, 2))
}

func TestPickerPickReturnsDistinctWordsWithinLengthBounds(t *testing.T) {
	pool := NewWordPool(fixtureEntries())
	picker := NewPicker(pool, 0, 0, rand.New(rand.NewSource(1)))

	words, err := picker.Pick(3, 3, 4)
	require.NoError(t, err)
	require.Len(t, words, 3)

	seen := make(map[string]bool)
	for _, w := range words {
		assert.False(t, seen[w], "picker returned a duplicate")
		seen[w] = true
		l := len(w)
		assert.GreaterOrEqual(t, l, 3)
		assert.LessOrEqual(t, l, 4)
	}
}

func TestPickerPickFailsWhenSliceCannotSatisfyLengthWindow(t *testing.T) {
	pool := NewWordPool(fixtureEntries())
	picker := NewPicker(pool, 0, 0, rand.New(rand.NewSource(1)))

	_, err := picker.Pick(10, 3, 4)
	assert.ErrorIs(t, err, ErrPickerExhausted)
}

func TestPickerStateResetsBetweenCalls(t *testing.T) {
	pool := NewWordPool(fixtureEntries())
	picker := NewPicker(pool, 0, 0, rand.New(rand.NewSource(2)))

	first, err := picker.Pick(2, 3, 6)
	require.NoError(t, err)
	second, err := picker.Pick(2, 3, 6)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
}
