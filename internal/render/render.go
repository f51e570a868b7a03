// Package render formats a grid of cell tokens as the text representation
// described in spec §6: rows framed by "| x ", separated by dash lines.
package render

import (
	"strconv"
	"strings"

	"crosswordlayout/internal/domain"
)

// FormatAnswerGrid renders the letters grid, blank cells shown as a single
// space.
func FormatAnswerGrid(cells [][]rune) string {
	tokens := make([][]string, len(cells))
	for y, row := range cells {
		tokens[y] = make([]string, len(row))
		for x, r := range row {
			if r == domain.Blank {
				tokens[y][x] = " "
			} else {
				tokens[y][x] = string(r)
			}
		}
	}
	return Format(tokens)
}

// FormatMaskedGrid renders a masked grid (order-number tokens and fill
// markers, as produced by assembler.MaskedGrid) directly.
func FormatMaskedGrid(cells [][]string) string {
	return Format(cells)
}

// Format renders a rectangular grid of string tokens, one per cell, in
// the "| x " framed, dash-separated row format.
func Format(cells [][]string) string {
	if len(cells) == 0 {
		return ""
	}
	width := len(cells[0])

	var b strings.Builder
	separator := rowSeparator(width)

	b.WriteString(separator)
	for _, row := range cells {
		for _, token := range row {
			b.WriteString("| ")
			b.WriteString(token)
			b.WriteString(" ")
		}
		b.WriteString("|\n")
		b.WriteString(separator)
	}
	return b.String()
}

func rowSeparator(width int) string {
	return strings.Repeat("-", width*4+1) + "\n"
}

// FormatClues renders the numbered clue list, one "N. word (orientation): hint"
// line per clue, in the order the clues are given; it does not sort them.
func FormatClues(clues []domain.Clue) string {
	var b strings.Builder
	for _, c := range clues {
		b.WriteString(strconv.Itoa(c.Order))
		b.WriteString(". ")
		b.WriteString(c.Word)
		b.WriteString(" (")
		b.WriteString(c.Orientation.String())
		b.WriteString("): ")
		b.WriteString(c.Hint)
		b.WriteString("\n")
	}
	return b.String()
}
