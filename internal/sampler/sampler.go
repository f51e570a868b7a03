// Package sampler implements the randomized, parallel path sampler: given
// an intersection graph, it searches for acyclic, spanning interconnection
// plans that link every word using each word pair and each letter slot at
// most once.
package sampler

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"

	"crosswordlayout/internal/graph"
)

// Plan is an ordered sequence of half-edges, one short of the number of
// words in the graph when complete.
type Plan []graph.EdgeHandle

// CanonicalString renders a plan the way two equal plans (found by
// different workers, or the same worker on different attempts) will agree
// on, so results merge into a single deduplicated map regardless of
// discovery order.
func CanonicalString(g *graph.Graph, plan Plan) string {
	parts := make([]string, len(plan))
	for i, eh := range plan {
		parts[i] = g.EdgeString(eh)
	}
	return strings.Join(parts, "--")
}

// Config bounds a single sampling run.
type Config struct {
	// MaxPaths is the aggregate plan budget across all workers.
	MaxPaths int
	// Workers is the sampler parallelism (W in spec terms).
	Workers int
	// MaxIterations bounds the number of attempts a single worker will
	// restart before giving up, even if it never reaches its share of
	// MaxPaths.
	MaxIterations int
	// Seed is the master RNG seed. Each worker derives an independent,
	// reproducible stream from Seed and its own worker index.
	Seed int64
}

const defaultMaxIterations = 100_000

// Sample runs the Path Sampler to completion (or until ctx is done, or
// until earlyExit is observed set) and returns every distinct complete
// plan found, merged across workers and keyed by canonical plan string.
//
// earlyExit is the advisory early-termination flag described in spec §5:
// an Assembler that no longer needs more candidate plans may set it, and
// workers will honor it within a bounded number of inner iterations. A
// nil earlyExit is treated as "never set".
func Sample(ctx context.Context, g *graph.Graph, cfg Config, earlyExit *atomic.Bool) map[string]Plan {
	if earlyExit == nil {
		earlyExit = new(atomic.Bool)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	perWorker := cfg.MaxPaths / workers
	if perWorker < 1 {
		perWorker = 1
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = defaultMaxIterations
	}
	targetLen := len(g.Nodes) - 1

	results := make(chan map[string]Plan, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		seed := cfg.Seed*1_000_003 + int64(w) + 1
		go func(seed int64) {
			defer wg.Done()
			results <- runWorker(ctx, g, targetLen, perWorker, maxIterations, seed, earlyExit)
		}(seed)
	}

	wg.Wait()
	close(results)

	merged := make(map[string]Plan)
	for partial := range results {
		for key, plan := range partial {
			merged[key] = plan
		}
	}
	return merged
}

func runWorker(ctx context.Context, g *graph.Graph, targetLen, maxPaths, maxIterations int, seed int64, earlyExit *atomic.Bool) map[string]Plan {
	rng := rand.New(rand.NewSource(seed))
	pathDict := make(map[string]Plan)

	if targetLen <= 0 {
		// A single-word (or empty) selection needs no interconnection.
		return pathDict
	}

	iteration := 0
	for len(pathDict) < maxPaths && iteration < maxIterations {
		select {
		case <-ctx.Done():
			return pathDict
		default:
		}
		if earlyExit.Load() {
			return pathDict
		}
		iteration++

		if plan, ok := attempt(g, targetLen, rng); ok {
			pathDict[CanonicalString(g, plan)] = plan
		}
	}
	return pathDict
}

// attempt runs one randomized search from an empty plan, per spec §4.D.
func attempt(g *graph.Graph, targetLen int, rng *rand.Rand) (Plan, bool) {
	state := graph.NewAttemptState(g)

	available := make([]graph.NodeHandle, len(g.Nodes))
	for i := range available {
		available[i] = graph.NodeHandle(i)
	}

	linkedPairs := make(map[[2]int]bool)
	var plan Plan

	for len(plan) < targetLen && len(available) > 0 {
		idx := rng.Intn(len(available))
		node := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		if state.Visited[node] || len(g.Nodes[node].Slots) == 0 {
			continue
		}

		slots := g.Nodes[node].Slots
		slotH := slots[rng.Intn(len(slots))]
		if state.Linked[slotH] || len(g.Slots[slotH].Edges) == 0 {
			continue
		}

		edges := g.Slots[slotH].Edges
		eh := edges[rng.Intn(len(edges))]
		e := g.Edges[eh]

		pairKey := unorderedPair(int(e.Origin), int(e.Target))
		mirrorEdge := g.Edges[g.Mirror(eh)]
		mirrorSlot := g.SlotOf(mirrorEdge.Origin, mirrorEdge.IndexA)
		if state.Used[eh] || state.Linked[mirrorSlot] || linkedPairs[pairKey] {
			continue
		}

		plan = append(plan, eh)
		linkedPairs[pairKey] = true
		state.Visited[node] = true
		state.Linked[slotH] = true
		state.Used[eh] = true
		state.Linked[mirrorSlot] = true
	}

	if len(plan) == targetLen {
		return plan, true
	}
	return nil, false
}

func unorderedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
