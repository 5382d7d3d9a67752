package engine

import (
	"banmen/board"
)

// winRun is the run length that wins the line variant.
const winRun = 5

// gomokuRules implements the line-connection variant: five same-color
// stones in a row win, a full board with no winner draws. Stones are never
// captured.
type gomokuRules struct {
	board *board.Board
}

func (g *gomokuRules) Name() string {
	return VariantGomoku
}

// IsValidMove reports whether p is on the board and empty.
func (g *gomokuRules) IsValidMove(p board.Pos, c board.Color) bool {
	return g.board.InBounds(p) && g.board.Get(p) == board.Empty
}

// ApplyMove places the stone, logs the move and checks for termination.
func (g *gomokuRules) ApplyMove(p board.Pos, c board.Color) (Result, error) {
	if err := g.board.PlaceStone(p, c); err != nil {
		return Result{}, err
	}
	g.board.AppendRecord(board.MoveRecord{Pos: p, Color: c})

	if g.fiveInARow(p, c) {
		return Result{GameOver: true, Winner: c}, nil
	}
	if g.board.Full() {
		return Result{GameOver: true, Draw: true}, nil
	}
	return Result{}, nil
}

// Undo reverses the last move.
func (g *gomokuRules) Undo() error {
	return g.board.UndoLast()
}

// axes are the four line directions: horizontal, vertical, both diagonals.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// fiveInARow reports whether the stone just placed at p completes a run of
// winRun. Each axis is counted outward in both directions, inclusive of p.
func (g *gomokuRules) fiveInARow(p board.Pos, c board.Color) bool {
	for _, d := range axes {
		count := 1
		count += g.countRun(p, c, d[0], d[1])
		count += g.countRun(p, c, -d[0], -d[1])
		if count >= winRun {
			return true
		}
	}
	return false
}

// countRun counts consecutive stones of color c from p (exclusive) along
// (dx,dy).
func (g *gomokuRules) countRun(p board.Pos, c board.Color, dx, dy int) int {
	n := 0
	q := board.Pos{X: p.X + dx, Y: p.Y + dy}
	for g.board.InBounds(q) && g.board.Get(q) == c {
		n++
		q.X += dx
		q.Y += dy
	}
	return n
}
