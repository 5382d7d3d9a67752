// Package ui provides the tview/tcell widgets for playing banmen in the
// terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"banmen/board"
	"banmen/config"
	"banmen/engine"
	"banmen/game"
	"banmen/sgf"
)

// BoardView renders a session's board and carries the cursor both players
// share in hot-seat play.
type BoardView struct {
	Box  *tview.Box
	sess *game.Session

	hint      *tview.TextView
	cfg       *config.Config
	app       *tview.Application
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	record    *sgf.Record

	selX   int
	selY   int
	notice string // one-shot status line (save confirmation, errors)
}

// NewBoardView creates the board widget.
func NewBoardView(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardView {
	bv := &BoardView{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
		selX: -1,
		selY: -1,
	}
	bv.SetConfig(c)
	bv.Box.SetDrawFunc(bv.draw)
	return bv
}

// StartSession attaches a session (and an optional SGF record) to the view.
func (bv *BoardView) StartSession(s *game.Session, rec *sgf.Record) {
	bv.closeRecord()
	bv.sess = s
	bv.record = rec
	bv.selX, bv.selY = -1, -1
	bv.notice = ""

	s.OnChange(func() {
		if bv.infoPanel != nil {
			bv.infoPanel.Refresh()
		}
	})
	s.OnGameEnd(func(outcome string) {
		bv.ResetSelection()
		bv.refreshHint()
	})

	if bv.infoPanel != nil {
		bv.infoPanel.SetSession(s)
	}
	bv.refreshHint()
}

// Session returns the attached session, if any.
func (bv *BoardView) Session() *game.Session {
	return bv.sess
}

// SelectedTile returns the cursor position, or nil when no cursor is shown.
func (bv *BoardView) SelectedTile() *board.Pos {
	if bv.selX == -1 && bv.selY == -1 {
		return nil
	}
	return &board.Pos{X: bv.selX, Y: bv.selY}
}

// MoveSelection moves the cursor by (h, v), clamped to the board. The first
// movement places the cursor on the last move, or the board center.
func (bv *BoardView) MoveSelection(h, v int) {
	if bv.sess == nil || bv.sess.Finished() {
		bv.ResetSelection()
		return
	}
	size := bv.sess.Board().Size()
	if bv.SelectedTile() == nil {
		if rec, ok := bv.sess.Board().LastMove(); ok && !rec.Pos.IsPass() {
			bv.selX, bv.selY = rec.Pos.X, rec.Pos.Y
		} else {
			bv.selX, bv.selY = size/2, size/2
		}
		return
	}
	if bv.selX+h < 0 || bv.selX+h >= size {
		return
	}
	if bv.selY+v < 0 || bv.selY+v >= size {
		return
	}
	bv.selX += h
	bv.selY += v
}

// ResetSelection hides the cursor.
func (bv *BoardView) ResetSelection() {
	bv.selX = -1
	bv.selY = -1
}

// PlayMove plays the current player's stone at the cursor.
func (bv *BoardView) PlayMove(p board.Pos) {
	if bv.sess == nil || bv.sess.Finished() {
		return
	}
	mover := bv.sess.CurrentPlayer()
	if err := bv.sess.PlayMove(p); err != nil {
		bv.notice = "That point is not playable"
		bv.refreshHint()
		return
	}
	bv.notice = ""
	if bv.record != nil {
		bv.record.AddMove(p.X, p.Y, mover.Color == board.Black)
	}
	if bv.sess.Finished() {
		bv.finishRecord()
	}
	bv.refreshHint()
}

// Pass passes the turn (capture variant only).
func (bv *BoardView) Pass() {
	if bv.sess == nil || bv.sess.Finished() {
		return
	}
	mover := bv.sess.CurrentPlayer()
	if err := bv.sess.Pass(); err != nil {
		bv.notice = err.Error()
		bv.refreshHint()
		return
	}
	bv.notice = fmt.Sprintf("%s passed", mover.Name)
	if bv.record != nil {
		bv.record.AddMove(-1, -1, mover.Color == board.Black)
	}
	if bv.sess.Finished() {
		bv.finishRecord()
	}
	bv.refreshHint()
}

// Undo takes back the last move.
func (bv *BoardView) Undo() {
	if bv.sess == nil {
		return
	}
	if err := bv.sess.Undo(); err != nil {
		bv.notice = "Nothing to undo"
		bv.refreshHint()
		return
	}
	bv.notice = "Move taken back"
	if bv.record != nil {
		bv.record.UndoMoves(1)
	}
	bv.refreshHint()
}

// Resign ends the game against the player to move.
func (bv *BoardView) Resign() {
	if bv.sess == nil || bv.sess.Finished() {
		return
	}
	bv.sess.Resign()
	bv.finishRecord()
}

// SetNotice shows a one-shot status line in the hint box.
func (bv *BoardView) SetNotice(msg string) {
	bv.notice = msg
	bv.refreshHint()
}

// Close detaches the session, finalizing the SGF record.
func (bv *BoardView) Close() {
	bv.closeRecord()
	bv.sess = nil
}

// SetConfig applies theme colors.
func (bv *BoardView) SetConfig(c *config.Config) {
	bv.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 9
	}
	bv.cfg = c
}

func (bv *BoardView) finishRecord() {
	if bv.record == nil || bv.sess == nil {
		return
	}
	winner, resigned := bv.sess.Winner()
	bv.record.SetResult(winner == board.Black, winner == board.White, resigned)
	bv.record.Close()
	bv.record = nil
}

func (bv *BoardView) closeRecord() {
	if bv.record != nil {
		bv.record.Close()
		bv.record = nil
	}
}

// draw is the tview draw func for the board.
func (bv *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if bv.sess == nil {
		return x, y, 1, 1
	}
	b := bv.sess.Board()
	size := b.Size()
	lastMove := board.Pass
	if rec, ok := b.LastMove(); ok && !rec.Pos.IsPass() {
		lastMove = rec.Pos
	}

	for boardY := 0; boardY < size; boardY++ {
		for boardX := 0; boardX < size; boardX++ {
			stone := b.Get(board.Pos{X: boardX, Y: boardY})
			i := int(stone)
			if !bv.cfg.Theme.DrawStoneBackground {
				i = 0
			}
			iInv := 0
			if i == 1 {
				iInv = 2
			} else if i == 2 {
				iInv = 1
			}
			if (boardX%2+boardY%2) == 1 {
				i += 3
				iInv += 3
			}

			var drawRune rune
			var fgColor tcell.Color
			if bv.cfg.Theme.UseGridLines && stone == board.Empty {
				hoshi := isHoshiPoint(boardX, boardY, size, bv.sess.Variant())
				drawRune = getGridRune(boardX, boardY, size, size, hoshi)
			} else {
				drawRune = bv.cfg.Theme.Symbols.BoardSquare
			}

			if stone != board.Empty {
				switch stone {
				case board.Black:
					drawRune = bv.cfg.Theme.Symbols.BlackStone
				case board.White:
					drawRune = bv.cfg.Theme.Symbols.WhiteStone
				}
				if bv.cfg.Theme.DrawStoneBackground {
					fgColor = bv.styles[iInv]
				} else {
					fgColor = bv.styles[stone]
				}
			} else {
				fgColor = bv.styles[9]
			}

			if boardX == bv.selX && boardY == bv.selY {
				if bv.cfg.Theme.DrawCursorBackground {
					i = 8
				} else if !bv.cfg.Theme.UseGridLines {
					drawRune = bv.cfg.Theme.Symbols.Cursor
				}
			} else if boardX == lastMove.X && boardY == lastMove.Y {
				if bv.cfg.Theme.DrawLastPlayedBackground {
					i = 7
				} else if !bv.cfg.Theme.UseGridLines {
					drawRune = bv.cfg.Theme.Symbols.LastPlayed
				}
			}

			style := tcell.StyleDefault.Background(bv.styles[i]).Foreground(fgColor)
			if bv.cfg.Theme.UseGridLines && stone == board.Empty {
				hasStoneRight := boardX < size-1 && b.Get(board.Pos{X: boardX + 1, Y: boardY}) != board.Empty
				drawGridCell(screen, style, drawRune, boardX, boardY, x+4, y, size, hasStoneRight)
			} else {
				drawStoneCell(screen, style, drawRune, boardX, boardY, x+4, y)
			}
		}
	}
	bv.drawCoordinates(screen, x, y)
	return x, y, size*2 + 4, size + 2
}

func (bv *BoardView) refreshHint() {
	if bv.infoPanel != nil {
		bv.infoPanel.Refresh()
	}
	if bv.sess == nil {
		bv.hint.SetText("")
		return
	}

	var statusLine, turnLine, controlsLine string

	if bv.sess.Finished() {
		statusLine = "───────── Game Complete ─────────\n"
		turnLine = fmt.Sprintf("  Result: %s\n", bv.sess.Outcome())
		controlsLine = "  q · return to menu"
	} else {
		if bv.notice != "" {
			statusLine = fmt.Sprintf("  %s\n", bv.notice)
		}
		cur := bv.sess.CurrentPlayer()
		stone := "●"
		if cur.Color == board.White {
			stone = "○"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", stone, cur.Name)
		if bv.sess.Variant() == engine.VariantGo {
			controlsLine = "  hjkl/↑↓←→ move  ⏎ play  p pass  u undo  s save  r resign  q quit"
		} else {
			controlsLine = "  hjkl/↑↓←→ move  ⏎ play  u undo  s save  r resign  q quit"
		}
	}
	bv.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawStoneCell draws a stone cell (2 characters wide).
func drawStoneCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawGridCell draws a cell using box-drawing characters for grid lines.
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the box-drawing character for a grid position.
func getGridRune(x, y, width, height int, isHoshi bool) rune {
	if isHoshi {
		return '◦'
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// isHoshiPoint checks for a star point. Star points are a go convention at
// the traditional sizes; the gomoku board stays plain.
func isHoshiPoint(x, y, boardSize int, variant string) bool {
	if variant != engine.VariantGo {
		return false
	}

	var hoshiPositions [][2]int
	switch boardSize {
	case 9:
		hoshiPositions = [][2]int{
			{2, 2}, {2, 6},
			{4, 4},
			{6, 2}, {6, 6},
		}
	case 13:
		hoshiPositions = [][2]int{
			{3, 3}, {3, 9},
			{6, 6},
			{9, 3}, {9, 9},
		}
	case 19:
		hoshiPositions = [][2]int{
			{3, 3}, {3, 9}, {3, 15},
			{9, 3}, {9, 9}, {9, 15},
			{15, 3}, {15, 9}, {15, 15},
		}
	default:
		return false
	}

	for _, pos := range hoshiPositions {
		if x == pos[0] && y == pos[1] {
			return true
		}
	}
	return false
}

func (bv *BoardView) drawCoordinates(s tcell.Screen, x, y int) {
	size := bv.sess.Board().Size()
	lastMove := board.Pass
	if rec, ok := bv.sess.Board().LastMove(); ok && !rec.Pos.IsPass() {
		lastMove = rec.Pos
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(bv.styles[8])
	lpHighlight := tcell.StyleDefault.Background(bv.styles[7])

	for ix := 0; ix < size; ix++ {
		_style := style
		if ix == bv.selX {
			_style = highlight
		} else if ix == lastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+4+(ix*2), y+size+1, colLetter(ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+size+1, ' ', nil, _style)
	}

	for iy := 0; iy < size; iy++ {
		// Row numbers count from the bottom, display is top-down.
		iyInv := size - iy - 1
		_style := style
		if iyInv == bv.selY {
			_style = highlight
		} else if iyInv == lastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+size-iy-1, tensRune, nil, _style)
		s.SetContent(x+2, y+size-iy-1, rune('0'+(displayNum%10)), nil, _style)
	}
	s.Show()
}
