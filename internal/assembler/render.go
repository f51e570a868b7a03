package assembler

import (
	"math/rand"
	"strconv"

	"crosswordlayout/internal/domain"
	"crosswordlayout/internal/wordstore"
)

// FillMarker replaces an empty cell in a masked grid.
const FillMarker = "*"

// AnswerGrid returns the letters grid, a defensive copy of g.Cells.
func AnswerGrid(g *domain.Grid) [][]rune {
	out := make([][]rune, g.Height)
	for y, row := range g.Cells {
		out[y] = append([]rune(nil), row...)
	}
	return out
}

// MaskedGrid returns a grid the same shape as g, with every cell belonging
// to a placed word replaced by that word's decimal order number and every
// other cell replaced by FillMarker. Words are applied in PlacedWords
// order, so a crossing cell shows whichever word was placed later.
func MaskedGrid(g *domain.Grid) [][]string {
	out := make([][]string, g.Height)
	for y := range out {
		row := make([]string, g.Width)
		for x := range row {
			row[x] = FillMarker
		}
		out[y] = row
	}

	for _, pw := range g.PlacedWords {
		token := strconv.Itoa(pw.Order)
		if pw.Orientation == domain.Horizontal {
			for x := pw.XStart; x < pw.XEnd; x++ {
				out[pw.YStart][x] = token
			}
		} else {
			for y := pw.YStart; y < pw.YEnd; y++ {
				out[y][pw.XStart] = token
			}
		}
	}
	return out
}

// Clues returns one (order_number, chosen_hint) entry per placed word,
// picking a hint uniformly at random from the word's hint list via rng. A
// word with no hints (or not found in pool) gets an empty hint.
func Clues(g *domain.Grid, pool *wordstore.WordPool, rng *rand.Rand) []domain.Clue {
	clues := make([]domain.Clue, 0, len(g.PlacedWords))
	for _, pw := range g.PlacedWords {
		var hint string
		if entry, err := pool.Lookup(pw.Word); err == nil && len(entry.Hints) > 0 {
			hint = entry.Hints[rng.Intn(len(entry.Hints))]
		}
		clues = append(clues, domain.Clue{
			Order:       pw.Order,
			Word:        pw.Word,
			Orientation: pw.Orientation,
			Hint:        hint,
		})
	}
	return clues
}
