package graph

// AttemptState holds the mutable flags a single sampling attempt needs:
// which nodes have been visited, which slots are linked, which half-edges
// are used. These are orthogonal to the structural Graph (design note:
// keep per-attempt flags in a separate struct indexed by the same
// handles, reset by re-slicing rather than by walking a pointer graph).
//
// A worker owns one AttemptState per attempt and discards it when the
// attempt ends (success or dead end); the Graph itself is shared
// read-only across every worker and every attempt.
type AttemptState struct {
	Visited []bool // indexed by NodeHandle
	Linked  []bool // indexed by SlotHandle
	Used    []bool // indexed by EdgeHandle
}

// NewAttemptState allocates a fresh, all-false AttemptState sized for g.
func NewAttemptState(g *Graph) *AttemptState {
	return &AttemptState{
		Visited: make([]bool, len(g.Nodes)),
		Linked:  make([]bool, len(g.Slots)),
		Used:    make([]bool, len(g.Edges)),
	}
}

// Clone returns an independent copy: mutating the clone never affects the
// receiver. This is the cheap substitute for deep-cloning the whole graph
// that the arena redesign (spec §9) exists to enable — copying three
// slices instead of walking a cyclic object graph.
func (s *AttemptState) Clone() *AttemptState {
	return &AttemptState{
		Visited: append([]bool(nil), s.Visited...),
		Linked:  append([]bool(nil), s.Linked...),
		Used:    append([]bool(nil), s.Used...),
	}
}

// Reset zeroes every flag in place, letting a worker reuse the same
// backing arrays across attempts instead of reallocating.
func (s *AttemptState) Reset() {
	for i := range s.Visited {
		s.Visited[i] = false
	}
	for i := range s.Linked {
		s.Linked[i] = false
	}
	for i := range s.Used {
		s.Used[i] = false
	}
}
