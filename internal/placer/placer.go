// Package placer implements the Grid Placer: it takes a completed
// interconnection Plan from the sampler and lays the words it links onto a
// bounded 2-D Grid, or reports why the plan cannot be realized as one.
package placer

import (
	"crosswordlayout/internal/domain"
	"crosswordlayout/internal/graph"
	"crosswordlayout/internal/sampler"
)

// scratchMargin pads the working canvas so that a word seeded dead center
// has room to grow in every direction before the grid gets compacted down
// to its tight bounding box.
const scratchMargin = 16

// PlacePlan lays out every word touched by plan onto a fresh grid, seeding
// the first edge's origin word horizontally at the canvas center, then
// repeatedly placing any word reachable from an already-placed word across
// an unconsumed edge, per spec §4.E. It returns ErrInvalidPlan if the
// plan's edges never fully connect the word set (no progress possible
// before every edge is consumed, or final validation fails), and
// ErrConflictingCell if placing a word would overwrite a cell with a
// different letter or touch a non-blank boundary cell.
func PlacePlan(g *graph.Graph, plan sampler.Plan) (*domain.Grid, error) {
	if len(plan) == 0 {
		return nil, ErrInvalidPlan
	}

	scratch := domain.NewGrid(scratchSize(g), scratchSize(g))

	first := g.Edges[plan[0]]
	seedWord := g.Nodes[first.Origin].Word
	seedRunes := []rune(seedWord)
	xStart := (scratch.Width - len(seedRunes)) / 2
	yStart := scratch.Height / 2
	seedPlaced, err := insertWord(scratch, seedWord, domain.Horizontal, xStart, xStart+len(seedRunes), yStart, yStart)
	if err != nil {
		return nil, err
	}

	placed := map[string]domain.PlacedWord{seedWord: seedPlaced}
	consumed := make([]bool, len(plan))
	remaining := len(plan)

	for remaining > 0 {
		progressed := false

		for i, eh := range plan {
			if consumed[i] {
				continue
			}
			e := g.Edges[eh]
			originWord := g.Nodes[e.Origin].Word
			targetWord := g.Nodes[e.Target].Word
			originPlaced, originIn := placed[originWord]
			targetPlaced, targetIn := placed[targetWord]

			switch {
			case originIn && !targetIn:
				newPlaced, err := placeWord(scratch, originPlaced, e.IndexA, targetWord, e.IndexB)
				if err != nil {
					return nil, err
				}
				placed[targetWord] = newPlaced
				consumed[i] = true
				remaining--
				progressed = true
			case targetIn && !originIn:
				newPlaced, err := placeWord(scratch, targetPlaced, e.IndexB, originWord, e.IndexA)
				if err != nil {
					return nil, err
				}
				placed[originWord] = newPlaced
				consumed[i] = true
				remaining--
				progressed = true
			default:
				// Neither or both endpoints are placed yet; nothing to do
				// with this edge this pass.
			}
		}

		if !progressed {
			return nil, ErrInvalidPlan
		}
	}

	if !Validate(scratch) {
		return nil, ErrInvalidPlan
	}

	return Compact(scratch)
}

func scratchSize(g *graph.Graph) int {
	total := 0
	for _, w := range g.Words() {
		total += len([]rune(w))
	}
	return 2*total + scratchMargin
}

// placeWord places newWord adjacent to anchor, crossing at anchor's
// anchorIndex-th letter and newWord's newIndex-th letter. The coordinate
// formulas mirror the original grid generator's node-to-grid placement:
// the new word always runs along anchor's opposite orientation, and the
// crossing cell must land on the same (x,y) on both words.
func placeWord(g *domain.Grid, anchor domain.PlacedWord, anchorIndex int, newWord string, newIndex int) (domain.PlacedWord, error) {
	orientation := anchor.Orientation.Opposite()
	runes := []rune(newWord)

	var xStart, xEnd, yStart, yEnd int
	if orientation == domain.Vertical {
		xStart = anchor.XStart + anchorIndex
		xEnd = xStart
		yStart = anchor.YStart - newIndex
		yEnd = yStart + len(runes)
	} else {
		xStart = anchor.XStart - newIndex
		xEnd = xStart + len(runes)
		yStart = anchor.YStart + anchorIndex
		yEnd = yStart
	}

	return insertWord(g, newWord, orientation, xStart, xEnd, yStart, yEnd)
}

// insertWord writes word onto g at the given span, after checking every
// spanned cell agrees with word's letters and both boundary cells (one
// before the span, one after) are blank. On success the placement is
// appended to g.PlacedWords, preserving insertion order.
func insertWord(g *domain.Grid, word string, orientation domain.Orientation, xStart, xEnd, yStart, yEnd int) (domain.PlacedWord, error) {
	runes := []rune(word)

	if orientation == domain.Horizontal {
		if yStart < 0 || yStart >= g.Height || xStart < 0 || xEnd > g.Width {
			return domain.PlacedWord{}, ErrConflictingCell
		}
		if g.At(xStart-1, yStart) != domain.Blank || g.At(xEnd, yStart) != domain.Blank {
			return domain.PlacedWord{}, ErrConflictingCell
		}
		for i, r := range runes {
			if existing := g.At(xStart+i, yStart); existing != domain.Blank && existing != r {
				return domain.PlacedWord{}, ErrConflictingCell
			}
		}
		for i, r := range runes {
			g.Set(xStart+i, yStart, r)
		}
	} else {
		if xStart < 0 || xStart >= g.Width || yStart < 0 || yEnd > g.Height {
			return domain.PlacedWord{}, ErrConflictingCell
		}
		if g.At(xStart, yStart-1) != domain.Blank || g.At(xStart, yEnd) != domain.Blank {
			return domain.PlacedWord{}, ErrConflictingCell
		}
		for i, r := range runes {
			if existing := g.At(xStart, yStart+i); existing != domain.Blank && existing != r {
				return domain.PlacedWord{}, ErrConflictingCell
			}
		}
		for i, r := range runes {
			g.Set(xStart, yStart+i, r)
		}
	}

	pw := domain.PlacedWord{
		Word:        word,
		Orientation: orientation,
		XStart:      xStart,
		XEnd:        xEnd,
		YStart:      yStart,
		YEnd:        yEnd,
	}
	g.PlacedWords = append(g.PlacedWords, pw)
	return pw, nil
}

// Validate re-checks every placed word's cells and boundaries against the
// final grid contents, independent of how it got there.
func Validate(g *domain.Grid) bool {
	for _, pw := range g.PlacedWords {
		runes := []rune(pw.Word)
		if pw.Orientation == domain.Horizontal {
			if g.At(pw.XStart-1, pw.YStart) != domain.Blank || g.At(pw.XEnd, pw.YStart) != domain.Blank {
				return false
			}
			for i, r := range runes {
				if g.At(pw.XStart+i, pw.YStart) != r {
					return false
				}
			}
		} else {
			if g.At(pw.XStart, pw.YStart-1) != domain.Blank || g.At(pw.XStart, pw.YEnd) != domain.Blank {
				return false
			}
			for i, r := range runes {
				if g.At(pw.XStart, pw.YStart+i) != r {
					return false
				}
			}
		}
	}
	return true
}

// Compact shrinks g to its tight bounding box, re-inserting every placed
// word in the same order they were originally placed so Order assignment
// downstream stays stable. It is idempotent: compacting an already-tight
// grid returns a grid of the same dimensions.
func Compact(g *domain.Grid) (*domain.Grid, error) {
	if len(g.PlacedWords) == 0 {
		return domain.NewGrid(0, 0), nil
	}

	minX, maxX := g.PlacedWords[0].XStart, g.PlacedWords[0].XEnd
	minY, maxY := g.PlacedWords[0].YStart, g.PlacedWords[0].YEnd
	for _, pw := range g.PlacedWords[1:] {
		minX = min(minX, min(pw.XStart, pw.XEnd))
		maxX = max(maxX, max(pw.XStart, pw.XEnd))
		minY = min(minY, min(pw.YStart, pw.YEnd))
		maxY = max(maxY, max(pw.YStart, pw.YEnd))
	}

	compacted := domain.NewGrid(maxX-minX, maxY-minY)
	for _, pw := range g.PlacedWords {
		_, err := insertWord(compacted, pw.Word, pw.Orientation,
			pw.XStart-minX, pw.XEnd-minX, pw.YStart-minY, pw.YEnd-minY)
		if err != nil {
			return nil, err
		}
	}
	return compacted, nil
}
