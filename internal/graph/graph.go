// Package graph builds the letter-intersection multigraph over a chosen
// word set and the per-worker mutable state the path sampler attempts
// against it.
//
// The graph itself is an arena: nodes, slots and half-edges live in flat,
// indexed slices and are referenced by integer handles rather than
// pointers. Once built it never changes, so workers never need to deep
// clone it; the only thing a worker needs privately is a fresh
// AttemptState (see attemptstate.go), three small slices indexed by the
// same handles.
package graph

import "fmt"

// NodeHandle indexes Graph.Nodes.
type NodeHandle int

// SlotHandle indexes Graph.Slots.
type SlotHandle int

// EdgeHandle indexes Graph.Edges.
type EdgeHandle int

// Edge is a half-edge: a directional crossing record from one word's
// letter position to another's. The mirror half-edge (the same physical
// crossing, seen from the other word) is looked up via Graph.Mirror.
type Edge struct {
	Char   rune
	IndexA int // position in the origin word
	IndexB int // position in the target word
	Origin NodeHandle
	Target NodeHandle
}

// Slot is the set of outgoing half-edges at a single (node, letter
// position).
type Slot struct {
	Node     NodeHandle
	Position int
	Edges    []EdgeHandle
}

// Node is one word in the graph, with one Slot per letter position.
type Node struct {
	Word  string
	Slots []SlotHandle
}

// Graph is the directed multigraph described in spec §3/§4.C. It is
// immutable once Build returns.
type Graph struct {
	Nodes   []Node
	Slots   []Slot
	Edges   []Edge
	Mirrors []EdgeHandle // Mirrors[e] is the mirror half-edge of Edges[e]

	byWord map[string]NodeHandle
}

// Build constructs the intersection graph for a word set. Words must
// already be normalized and are taken as-is (duplicates among them
// produce degenerate, self-referential nodes and are the caller's
// responsibility to avoid; the Picker never yields duplicates).
func Build(words []string) *Graph {
	g := &Graph{byWord: make(map[string]NodeHandle, len(words))}

	g.Nodes = make([]Node, len(words))
	for i, w := range words {
		g.Nodes[i] = Node{Word: w}
		g.byWord[w] = NodeHandle(i)
	}

	for i := range g.Nodes {
		runes := []rune(g.Nodes[i].Word)
		slots := make([]SlotHandle, len(runes))
		for p := range runes {
			sh := SlotHandle(len(g.Slots))
			g.Slots = append(g.Slots, Slot{Node: NodeHandle(i), Position: p})
			slots[p] = sh
		}
		g.Nodes[i].Slots = slots
	}

	type edgeKey struct {
		origin, indexA, target, indexB int
	}
	seen := make(map[edgeKey]bool)
	edgeIndex := make(map[edgeKey]EdgeHandle)

	for ai := range g.Nodes {
		aRunes := []rune(g.Nodes[ai].Word)
		for bi := range g.Nodes {
			if ai == bi {
				continue
			}
			bRunes := []rune(g.Nodes[bi].Word)
			for p, ca := range aRunes {
				for q, cb := range bRunes {
					if ca != cb {
						continue
					}
					key := edgeKey{ai, p, bi, q}
					if seen[key] {
						continue
					}
					seen[key] = true

					eh := EdgeHandle(len(g.Edges))
					g.Edges = append(g.Edges, Edge{
						Char:   ca,
						IndexA: p,
						IndexB: q,
						Origin: NodeHandle(ai),
						Target: NodeHandle(bi),
					})
					edgeIndex[key] = eh

					slotH := g.Nodes[ai].Slots[p]
					g.Slots[slotH].Edges = append(g.Slots[slotH].Edges, eh)
				}
			}
		}
	}

	g.Mirrors = make([]EdgeHandle, len(g.Edges))
	for eh, e := range g.Edges {
		mirrorKey := edgeKey{int(e.Target), e.IndexB, int(e.Origin), e.IndexA}
		g.Mirrors[eh] = edgeIndex[mirrorKey]
	}

	return g
}

// NodeOf returns the handle of the node for a surface form.
func (g *Graph) NodeOf(word string) (NodeHandle, bool) {
	h, ok := g.byWord[word]
	return h, ok
}

// Mirror returns the mirror half-edge of e: the half-edge of the same
// physical crossing as seen from the target's side.
func (g *Graph) Mirror(e EdgeHandle) EdgeHandle {
	return g.Mirrors[e]
}

// SlotOf returns the handle of the slot at (node, position).
func (g *Graph) SlotOf(n NodeHandle, position int) SlotHandle {
	return g.Nodes[n].Slots[position]
}

// EdgeString renders a half-edge the way the canonical plan string wants
// it: enough information to disambiguate it from any other half-edge in
// the graph, in a form stable across process runs.
func (g *Graph) EdgeString(e EdgeHandle) string {
	edge := g.Edges[e]
	origin := g.Nodes[edge.Origin].Word
	target := g.Nodes[edge.Target].Word
	return fmt.Sprintf("%s_%d(%c)__linkedto__%d(%c)_%s", origin, edge.IndexA, edge.Char, edge.IndexB, edge.Char, target)
}

// Words returns the surface forms of every node, in node order.
func (g *Graph) Words() []string {
	words := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		words[i] = n.Word
	}
	return words
}
