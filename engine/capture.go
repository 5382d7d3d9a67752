package engine

import (
	"banmen/board"
)

// goRules implements the territorial capture variant: connected groups with
// no liberties are captured, suicide is rejected, two consecutive passes end
// the game and the winner is decided by a plain stone count.
//
// Not implemented, deliberately: ko/superko, territory scoring, komi.
type goRules struct {
	board *board.Board

	// passesInRow counts consecutive pass moves. It is reset by any stone
	// placement and recomputed from the log tail after an undo.
	passesInRow int
}

func (g *goRules) Name() string {
	return VariantGo
}

// IsValidMove reports whether placing c at p is legal: the cell is on the
// board and empty, and the placement either captures at least one opponent
// group or leaves the placed stone's own group with a liberty. The stone is
// placed speculatively and always reverted.
func (g *goRules) IsValidMove(p board.Pos, c board.Color) bool {
	if !g.board.InBounds(p) || g.board.Get(p) != board.Empty {
		return false
	}
	if err := g.board.PlaceStone(p, c); err != nil {
		return false
	}
	captured := g.deadOpponents(p, c)
	ok := len(captured) > 0 || g.hasLiberty(p, c)
	g.board.RemoveStones([]board.Pos{p})
	return ok
}

// ApplyMove applies a validated move. A pass (the sentinel position) is
// logged, bumps the pass counter and is terminal once two passes occur in a
// row; the result then carries the stone-count winner. A stone placement
// resets the counter, captures adjacent opponent groups left without
// liberties and logs the move with its captured list. Capture removal
// happens before the placed stone's own liberties matter, so a capturing
// move can free its own liberty.
func (g *goRules) ApplyMove(p board.Pos, c board.Color) (Result, error) {
	if p.IsPass() {
		g.passesInRow++
		g.board.AppendRecord(board.MoveRecord{Pos: board.Pass, Color: c})
		if g.passesInRow >= 2 {
			return g.scoreResult(), nil
		}
		return Result{}, nil
	}

	if err := g.board.PlaceStone(p, c); err != nil {
		return Result{}, err
	}
	g.passesInRow = 0

	captured := g.deadOpponents(p, c)
	if len(captured) > 0 {
		g.board.RemoveStones(captured)
	}
	g.board.AppendRecord(board.MoveRecord{Pos: p, Color: c, Captured: captured})

	// Board fill never ends this variant; only passes or resignation do.
	return Result{}, nil
}

// Undo reverses the last logged move and recomputes the pass counter as the
// number of trailing pass records, so undoing a pass leaves the counter
// consistent with the restored log.
func (g *goRules) Undo() error {
	if err := g.board.UndoLast(); err != nil {
		return err
	}
	g.passesInRow = g.trailingPasses()
	return nil
}

// Score returns the per-color stone count. This is a pure area proxy; no
// territory enclosure is computed.
func (g *goRules) Score() (black, white int) {
	return g.board.Count(board.Black), g.board.Count(board.White)
}

func (g *goRules) scoreResult() Result {
	black, white := g.Score()
	r := Result{GameOver: true}
	switch {
	case black > white:
		r.Winner = board.Black
	case white > black:
		r.Winner = board.White
	default:
		r.Draw = true
	}
	return r
}

func (g *goRules) trailingPasses() int {
	history := g.board.History()
	n := 0
	for i := len(history) - 1; i >= 0 && history[i].Pos.IsPass(); i-- {
		n++
	}
	return n
}

// deadOpponents collects the stones of every opponent group orthogonally
// adjacent to p that has no liberties left. The board is not modified; each
// dead group's stones are appended in flood-fill order.
func (g *goRules) deadOpponents(p board.Pos, c board.Color) []board.Pos {
	opp := c.Opponent()
	var captured []board.Pos
	seen := make(map[board.Pos]bool)
	for _, d := range neighbors4 {
		q := board.Pos{X: p.X + d[0], Y: p.Y + d[1]}
		if !g.board.InBounds(q) || g.board.Get(q) != opp || seen[q] {
			continue
		}
		group, liberties := g.groupSearch(q, opp)
		for _, s := range group {
			seen[s] = true
		}
		if len(liberties) == 0 {
			captured = append(captured, group...)
		}
	}
	return captured
}

// hasLiberty reports whether the group containing p has at least one liberty.
func (g *goRules) hasLiberty(p board.Pos, c board.Color) bool {
	_, liberties := g.groupSearch(p, c)
	return len(liberties) > 0
}

// groupSearch flood-fills the maximal same-color group containing start,
// returning its stones and the set of empty cells adjacent to any of them.
// The result is never cached; the grid can change between calls.
func (g *goRules) groupSearch(start board.Pos, c board.Color) ([]board.Pos, map[board.Pos]bool) {
	stack := []board.Pos{start}
	visited := make(map[board.Pos]bool)
	liberties := make(map[board.Pos]bool)
	var group []board.Pos

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		group = append(group, cur)

		for _, d := range neighbors4 {
			q := board.Pos{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !g.board.InBounds(q) {
				continue
			}
			switch g.board.Get(q) {
			case c:
				stack = append(stack, q)
			case board.Empty:
				liberties[q] = true
			}
		}
	}
	return group, liberties
}
