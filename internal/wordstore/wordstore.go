// Package wordstore holds the hint-enriched corpus in memory and exposes
// the read-only Word Store and the randomized Word Picker built on top of
// it.
package wordstore

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"crosswordlayout/internal/domain"
)

// ErrNotFound is returned by Lookup when no entry exists for a surface
// form.
var ErrNotFound = errors.New("wordstore: word not found")

// ErrPickerExhausted is returned by Pick when the visible slice cannot
// yield the requested number of distinct words within the length window.
var ErrPickerExhausted = errors.New("wordstore: picker exhausted")

// WordPool holds the corpus and answers read-only lookups. It is built
// once (by the corpus loader) and never mutated afterward; the mutex
// guards against that invariant being violated by mistake rather than
// against genuine concurrent writers.
type WordPool struct {
	mu      sync.RWMutex
	entries map[string]domain.WordEntry
	order   []string // unique surface forms, first-seen order
}

// NewWordPool builds a pool from a list of entries, deduplicating by
// surface form and keeping first-seen order.
func NewWordPool(entries []domain.WordEntry) *WordPool {
	p := &WordPool{
		entries: make(map[string]domain.WordEntry, len(entries)),
	}
	for _, e := range entries {
		if _, exists := p.entries[e.Surface]; exists {
			continue
		}
		p.entries[e.Surface] = e
		p.order = append(p.order, e.Surface)
	}
	return p
}

// Lookup returns the entry for a surface form.
func (p *WordPool) Lookup(surface string) (domain.WordEntry, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	e, ok := p.entries[surface]
	if !ok {
		return domain.WordEntry{}, fmt.Errorf("%w: %q", ErrNotFound, surface)
	}
	return e, nil
}

// UniqueWords returns the ordered deduplicated surface-form list, sliced
// exactly like the original's unique_words[stop_word_offset:most_frequents]:
// stopWordOffset skips the first entries (the most common words) and
// mostFrequents is the absolute upper index into the full list, not a
// count relative to the offset. A non-positive mostFrequents means "no
// upper bound".
func (p *WordPool) UniqueWords(stopWordOffset, mostFrequents int) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if stopWordOffset < 0 {
		stopWordOffset = 0
	}
	end := len(p.order)
	if mostFrequents > 0 && mostFrequents < end {
		end = mostFrequents
	}
	if stopWordOffset >= end {
		return nil
	}
	slice := p.order[stopWordOffset:end]

	out := make([]string, len(slice))
	copy(out, slice)
	return out
}

// Size returns the number of unique surface forms in the pool.
func (p *WordPool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Picker samples random, distinct, length-bounded subsets from a
// WordPool's visible slice.
type Picker struct {
	pool           *WordPool
	stopWordOffset int
	mostFrequents  int
	rng            *rand.Rand
}

// NewPicker builds a Picker over pool.UniqueWords(stopWordOffset,
// mostFrequents), i.e. the [stopWordOffset, mostFrequents) slice with
// mostFrequents as an absolute index, drawing from rng.
func NewPicker(pool *WordPool, stopWordOffset, mostFrequents int, rng *rand.Rand) *Picker {
	return &Picker{
		pool:           pool,
		stopWordOffset: stopWordOffset,
		mostFrequents:  mostFrequents,
		rng:            rng,
	}
}

// Pick draws n distinct surface forms, each with minLen <= len(word) <= maxLen,
// uniformly at random from the visible slice. State from a previous call
// never carries over: each call starts from a fresh view of the slice.
func (pk *Picker) Pick(n, minLen, maxLen int) ([]string, error) {
	candidates := pk.pool.UniqueWords(pk.stopWordOffset, pk.mostFrequents)

	var eligible []string
	for _, w := range candidates {
		l := len([]rune(w))
		if l >= minLen && l <= maxLen {
			eligible = append(eligible, w)
		}
	}

	if len(eligible) < n {
		return nil, fmt.Errorf("%w: need %d words in [%d,%d], only %d eligible", ErrPickerExhausted, n, minLen, maxLen, len(eligible))
	}

	picked := make(map[string]bool, n)
	result := make([]string, 0, n)
	for len(result) < n {
		idx := pk.rng.Intn(len(eligible))
		w := eligible[idx]
		if picked[w] {
			continue
		}
		picked[w] = true
		result = append(result, w)
	}
	return result, nil
}
