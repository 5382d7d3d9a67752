package engine

import (
	"testing"

	"banmen/board"
)

func mustApply(t *testing.T, r Rules, p board.Pos, c board.Color) Result {
	t.Helper()
	res, err := r.ApplyMove(p, c)
	if err != nil {
		t.Fatalf("ApplyMove(%v, %v): %v", p, c, err)
	}
	return res
}

func TestGomokuValidity(t *testing.T) {
	b := newBoard(t, 9)
	r, _ := New(VariantGomoku, b)

	if !r.IsValidMove(board.Pos{X: 0, Y: 0}, board.Black) {
		t.Error("empty in-bounds cell should be valid")
	}
	if r.IsValidMove(board.Pos{X: 9, Y: 0}, board.Black) {
		t.Error("out-of-bounds cell should be invalid")
	}
	mustApply(t, r, board.Pos{X: 0, Y: 0}, board.Black)
	if r.IsValidMove(board.Pos{X: 0, Y: 0}, board.White) {
		t.Error("occupied cell should be valid for no one")
	}
}

func TestGomokuFifthStoneWins(t *testing.T) {
	b := newBoard(t, 9)
	r, _ := New(VariantGomoku, b)

	// Vertical run at x=1: (1,1)..(1,4), then the winning (1,5).
	for y := 1; y <= 4; y++ {
		res := mustApply(t, r, board.Pos{X: 1, Y: y}, board.Black)
		if res.GameOver {
			t.Fatalf("premature game over at (1,%d)", y)
		}
	}
	res := mustApply(t, r, board.Pos{X: 1, Y: 5}, board.Black)
	if !res.GameOver || res.Winner != board.Black {
		t.Fatalf("fifth stone: got %+v, want black win", res)
	}
	if rec, ok := b.LastMove(); !ok || len(rec.Captured) != 0 {
		t.Error("gomoku move record must have an empty captured list")
	}
}

func TestGomokuAxes(t *testing.T) {
	dirs := []struct {
		name   string
		dx, dy int
	}{
		{"horizontal", 1, 0},
		{"vertical", 0, 1},
		{"diagonal", 1, 1},
		{"antidiagonal", 1, -1},
	}
	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			b := newBoard(t, 11)
			r, _ := New(VariantGomoku, b)
			start := board.Pos{X: 5, Y: 5}
			// Place stones 1..4 outward, then the winning one back at start.
			for i := 1; i <= 4; i++ {
				p := board.Pos{X: start.X + i*d.dx, Y: start.Y + i*d.dy}
				if res := mustApply(t, r, p, board.White); res.GameOver {
					t.Fatalf("premature game over at %v", p)
				}
			}
			res := mustApply(t, r, start, board.White)
			if !res.GameOver || res.Winner != board.White {
				t.Fatalf("%s run: got %+v, want white win", d.name, res)
			}
		})
	}
}

func TestGomokuBlockedFourDoesNotWin(t *testing.T) {
	b := newBoard(t, 9)
	r, _ := New(VariantGomoku, b)

	// White blocks both ends of a black run of four: W B B B B W.
	mustApply(t, r, board.Pos{X: 0, Y: 2}, board.White)
	mustApply(t, r, board.Pos{X: 5, Y: 2}, board.White)
	for x := 1; x <= 3; x++ {
		mustApply(t, r, board.Pos{X: x, Y: 2}, board.Black)
	}
	res := mustApply(t, r, board.Pos{X: 4, Y: 2}, board.Black)
	if res.GameOver {
		t.Fatalf("run of four with blocked ends ended the game: %+v", res)
	}
}

// drawColor tiles the board so that no line of winRun same-color cells
// exists in any axis: runs never exceed two.
func drawColor(x, y int) board.Color {
	if (x+2*y)%4 < 2 {
		return board.Black
	}
	return board.White
}

func TestGomokuFullBoardDraw(t *testing.T) {
	b := newBoard(t, 8)
	r, _ := New(VariantGomoku, b)

	last := board.Pos{X: 7, Y: 7}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := board.Pos{X: x, Y: y}
			res := mustApply(t, r, p, drawColor(x, y))
			if p == last {
				if !res.GameOver || !res.Draw || res.Winner != board.Empty {
					t.Fatalf("final stone: got %+v, want draw", res)
				}
			} else if res.GameOver {
				t.Fatalf("premature game over at %v: %+v", p, res)
			}
		}
	}
}

func TestGomokuUndoRoundTrip(t *testing.T) {
	b := newBoard(t, 9)
	r, _ := New(VariantGomoku, b)

	mustApply(t, r, board.Pos{X: 4, Y: 4}, board.Black)
	before := b.Rows()
	mustApply(t, r, board.Pos{X: 5, Y: 5}, board.White)

	if err := r.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	after := b.Rows()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("row %d differs after undo: %q vs %q", i, before[i], after[i])
		}
	}
	if b.MoveCount() != 1 {
		t.Fatalf("log length = %d, want 1", b.MoveCount())
	}
}
