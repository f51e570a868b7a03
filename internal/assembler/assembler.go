// Package assembler orchestrates the Word Picker, Intersection Graph,
// Path Sampler and Grid Placer into a single Game, retrying the whole
// chain on failure and keeping the smallest-area valid grid found.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"crosswordlayout/internal/domain"
	"crosswordlayout/internal/graph"
	"crosswordlayout/internal/placer"
	"crosswordlayout/internal/sampler"
	"crosswordlayout/internal/wordstore"
)

// DefaultMaxRetries is the MAX_RETRIES bound from spec §4.F.
const DefaultMaxRetries = 100

// Config bounds a single Build call.
type Config struct {
	NumWords   int
	MinLen     int
	MaxLen     int
	MaxPaths   int
	Workers    int
	MaxRetries int // 0 means DefaultMaxRetries
	Seed       int64
	// OnAttempt, if set, is called once per pick→graph→sample→place cycle,
	// before it runs, so a caller can drive a progress indicator.
	OnAttempt func(attempt, maxRetries int)
}

// DefaultConfig returns the spec's suggested defaults (§6): min_len=4,
// max_len=8, MAX_RETRIES≈100.
func DefaultConfig() Config {
	return Config{
		NumWords:   6,
		MinLen:     4,
		MaxLen:     8,
		MaxPaths:   100,
		Workers:    4,
		MaxRetries: DefaultMaxRetries,
	}
}

// Assembler ties a Picker and WordPool (for hint lookup) to a Config.
type Assembler struct {
	picker   *wordstore.Picker
	pool     *wordstore.WordPool
	language string
	config   Config
	logger   *slog.Logger
}

// New builds an Assembler. logger may be nil, in which case slog.Default
// is used.
func New(picker *wordstore.Picker, pool *wordstore.WordPool, language string, cfg Config, logger *slog.Logger) *Assembler {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{picker: picker, pool: pool, language: language, config: cfg, logger: logger}
}

// Build runs the Picker→Graph→Sampler→Placer chain up to config.MaxRetries
// times, keeping the minimum-area grid from the first attempt that
// produces one, and assembles the resulting Game. PickerExhausted errors
// from the Picker are fatal and returned immediately, per spec §7;
// GridConflictingCell and InvalidPlan are recovered by discarding the
// offending plan. ErrNoLayoutFound is returned if every attempt fails.
func (a *Assembler) Build(ctx context.Context) (*domain.Game, error) {
	rng := rand.New(rand.NewSource(a.config.Seed))

	var best *domain.Grid
	for attempt := 1; attempt <= a.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if a.config.OnAttempt != nil {
			a.config.OnAttempt(attempt, a.config.MaxRetries)
		}

		grid, err := a.attempt(ctx, rng)
		if err != nil {
			if errors.Is(err, wordstore.ErrPickerExhausted) {
				return nil, err
			}
			a.logger.Debug("assembler attempt produced no valid grid", "attempt", attempt, "error", err)
			continue
		}

		best = grid
		break
	}

	if best == nil {
		return nil, fmt.Errorf("%w: after %d attempts", ErrNoLayoutFound, a.config.MaxRetries)
	}

	assignOrder(best)

	return &domain.Game{
		ID:        uuid.NewString(),
		Language:  a.language,
		Grid:      best,
		Clues:     Clues(best, a.pool, rng),
		CreatedAt: time.Now(),
	}, nil
}

// attempt runs one pick→graph→sample→place cycle and returns the
// smallest-area valid grid among every plan the sampler produced, or an
// error if no plan placed successfully. Plans are tried in ascending
// canonical-string order and the first of several equal-area grids wins.
func (a *Assembler) attempt(ctx context.Context, rng *rand.Rand) (*domain.Grid, error) {
	words, err := a.picker.Pick(a.config.NumWords, a.config.MinLen, a.config.MaxLen)
	if err != nil {
		return nil, err
	}

	g := graph.Build(words)

	earlyExit := new(atomic.Bool)
	plans := sampler.Sample(ctx, g, sampler.Config{
		MaxPaths: a.config.MaxPaths,
		Workers:  a.config.Workers,
		Seed:     rng.Int63(),
	}, earlyExit)

	keys := make([]string, 0, len(plans))
	for key := range plans {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var best *domain.Grid
	for _, key := range keys {
		grid, err := placer.PlacePlan(g, plans[key])
		if err != nil {
			if errors.Is(err, placer.ErrConflictingCell) || errors.Is(err, placer.ErrInvalidPlan) {
				a.logger.Debug("assembler discarded plan", "reason", err)
				continue
			}
			return nil, err
		}
		if best == nil || grid.Area() < best.Area() {
			best = grid
		}
	}

	if best == nil {
		return nil, errors.New("assembler: no plan produced a valid grid")
	}
	return best, nil
}

// assignOrder numbers every PlacedWord by its position in g.PlacedWords,
// the order it was inserted into the winning grid.
func assignOrder(g *domain.Grid) {
	for i := range g.PlacedWords {
		g.PlacedWords[i].Order = i
	}
}
