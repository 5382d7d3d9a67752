package ui

import (
	"fmt"

	"banmen/board"
)

// Board coordinates are displayed the traditional way: columns A-T skipping
// I, rows numbered from the bottom. Internally X runs left to right and Y
// top to bottom, both 0-indexed.

// posDisplay formats a position for the move list and hints.
// On a 9x9 board: (0,8) -> A1, (3,5) -> D4. Pass renders as "pass".
func posDisplay(p board.Pos, size int) string {
	if p.IsPass() {
		return "pass"
	}
	col := 'A' + rune(p.X)
	if p.X >= 8 {
		col++ // skip 'I'
	}
	row := size - p.Y
	return fmt.Sprintf("%c%d", col, row)
}

// colLetter returns the display letter for column x.
func colLetter(x int) rune {
	col := 'A' + rune(x)
	if x >= 8 {
		col++
	}
	return col
}
