package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"banmen/board"
	"banmen/engine"
	"banmen/game"
)

// GameInfoPanel displays game information and the recent move list
// alongside the board.
type GameInfoPanel struct {
	box  *tview.TextView
	sess *game.Session
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetSession points the panel at a session and refreshes.
func (p *GameInfoPanel) SetSession(s *game.Session) {
	p.sess = s
	p.Refresh()
}

// Refresh re-renders the panel from the session state.
func (p *GameInfoPanel) Refresh() {
	if p.sess == nil {
		p.box.SetText("")
		return
	}
	b := p.sess.Board()

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Variant:[-:-:-] %s\n", p.sess.Variant())
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", b.MoveCount())

	if p.sess.Finished() {
		text += fmt.Sprintf("[white]Result:[-:-:-] %s\n", p.sess.Outcome())
	} else {
		cur := p.sess.CurrentPlayer()
		stone := "●"
		if cur.Color == board.White {
			stone = "○"
		}
		text += fmt.Sprintf("[white]To move:[-:-:-] %s %s\n", stone, cur.Name)
	}

	text += p.scoreSection(b)
	text += p.moveSection(b)

	p.box.SetText(text)
}

// scoreSection shows stone counts, plus captures in the go variant.
func (p *GameInfoPanel) scoreSection(b *board.Board) string {
	text := "\n[white::b]Stones[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]● %s:[-:-:-] %d\n", p.sess.PlayerByColor(board.Black).Name, b.Count(board.Black))
	text += fmt.Sprintf("[white]○ %s:[-:-:-] %d\n", p.sess.PlayerByColor(board.White).Name, b.Count(board.White))

	if p.sess.Variant() == engine.VariantGo {
		capturedByBlack, capturedByWhite := 0, 0
		for _, r := range b.History() {
			if r.Color == board.Black {
				capturedByBlack += len(r.Captured)
			} else {
				capturedByWhite += len(r.Captured)
			}
		}
		text += fmt.Sprintf("[dimgray]captures %d / %d[-]\n", capturedByBlack, capturedByWhite)
	}
	return text
}

// moveSection shows the tail of the move log.
func (p *GameInfoPanel) moveSection(b *board.Board) string {
	history := b.History()
	if len(history) == 0 {
		return ""
	}

	text := "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	maxVisible := 12
	start := 0
	if len(history) > maxVisible {
		start = len(history) - maxVisible
	}

	for i := start; i < len(history); i++ {
		m := history[i]
		colorStr := "[white]B[-]"
		if m.Color == board.White {
			colorStr = "[dimgray]W[-]"
		}
		marker := " "
		if i == len(history)-1 {
			marker = "[white]>[-]"
		}
		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, posDisplay(m.Pos, b.Size()))
	}
	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(bv *BoardView, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	bv.infoPanel = infoPanel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(bv.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}
