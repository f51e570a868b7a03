package sampler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswordlayout/internal/graph"
)

func TestSampleYieldsRequestedCountAndSatisfiesInvariants(t *testing.T) {
	g := graph.Build([]string{"anel", "animal", "ato", "mato"})

	plans := Sample(context.Background(), g, Config{
		MaxPaths: 10,
		Workers:  1,
		Seed:     42,
	}, nil)

	require.Len(t, plans, 10)

	for key, plan := range plans {
		assert.Len(t, plan, 3, "plan %q should have |L|-1 edges", key)
		assertPlanInvariants(t, g, plan)
	}
}

func TestSampleMergesAcrossWorkersWithoutDuplicates(t *testing.T) {
	g := graph.Build([]string{"anel", "animal", "ato", "mato"})

	plans := Sample(context.Background(), g, Config{
		MaxPaths: 20,
		Workers:  4,
		Seed:     7,
	}, nil)

	assert.LessOrEqual(t, len(plans), 20)
	for key, plan := range plans {
		assert.Len(t, plan, 3, "plan %q should have |L|-1 edges", key)
		assertPlanInvariants(t, g, plan)
	}
}

func TestSampleHonorsEarlyExit(t *testing.T) {
	g := graph.Build([]string{"anel", "animal", "ato", "mato"})

	earlyExit := new(atomic.Bool)
	earlyExit.Store(true)

	plans := Sample(context.Background(), g, Config{
		MaxPaths: 50,
		Workers:  2,
		Seed:     1,
	}, earlyExit)

	// An early-exit flag set before sampling starts means no attempt ever
	// gets past the first iteration check.
	assert.Empty(t, plans)
}

func TestSampleHonorsContextCancellation(t *testing.T) {
	g := graph.Build([]string{"anel", "animal", "ato", "mato"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plans := Sample(ctx, g, Config{
		MaxPaths: 50,
		Workers:  2,
		Seed:     1,
	}, nil)

	assert.Empty(t, plans)
}

func assertPlanInvariants(t *testing.T, g *graph.Graph, plan Plan) {
	t.Helper()

	seenPairs := make(map[[2]int]bool)
	seenSlots := make(map[graph.SlotHandle]bool)

	for _, eh := range plan {
		e := g.Edges[eh]
		pair := unorderedPair(int(e.Origin), int(e.Target))
		assert.False(t, seenPairs[pair], "unordered pair used more than once")
		seenPairs[pair] = true

		originSlot := g.SlotOf(e.Origin, e.IndexA)
		assert.False(t, seenSlots[originSlot], "origin slot used more than once")
		seenSlots[originSlot] = true
	}
}
