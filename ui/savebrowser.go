package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"banmen/config"
	"banmen/savefile"
)

// SaveBrowserUI provides a screen for browsing and resuming saved games.
type SaveBrowserUI struct {
	flex     *tview.Flex
	saveList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	entries  []savefile.Entry
	snaps    map[int]*savefile.SaveGame // cached decoded snapshots
	selected int
	onLoad   func(path string)
	onDone   func()
}

// NewSaveBrowser creates a new save browser screen. onLoad is called with
// the snapshot path when the user picks a save.
func NewSaveBrowser(onLoad func(path string), onDone func()) *SaveBrowserUI {
	sb := &SaveBrowserUI{
		onLoad: onLoad,
		onDone: onDone,
		snaps:  make(map[int]*savefile.SaveGame),
	}

	sb.saveList = tview.NewList()
	sb.saveList.SetBorder(true)
	sb.saveList.SetTitle(" Saved Games ")
	sb.saveList.ShowSecondaryText(false)
	sb.saveList.SetHighlightFullLine(true)
	sb.saveList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	sb.saveList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	sb.preview = tview.NewBox()
	sb.preview.SetBorder(true)
	sb.preview.SetTitle(" Preview ")
	sb.preview.SetDrawFunc(sb.drawPreview)

	sb.hint = tview.NewTextView()
	sb.hint.SetDynamicColors(true)
	sb.hint.SetBorder(false)
	sb.hint.SetText("  [dimgray]⏎[-] resume  [dimgray]d[-] delete  [dimgray]q[-] back")

	sb.saveList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		sb.selected = index
	})
	sb.saveList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		sb.loadSelected()
	})
	sb.saveList.SetInputCapture(sb.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(sb.saveList, 44, 0, true).
		AddItem(sb.preview, 0, 1, false)

	sb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(sb.hint, 1, 0, false)

	sb.loadEntries()
	return sb
}

// Flex returns the flex container for this UI.
func (sb *SaveBrowserUI) Flex() *tview.Flex {
	return sb.flex
}

// Refresh reloads the save list from disk.
func (sb *SaveBrowserUI) Refresh() {
	sb.snaps = make(map[int]*savefile.SaveGame)
	sb.loadEntries()
}

// loadEntries scans the save directory for snapshots.
func (sb *SaveBrowserUI) loadEntries() {
	sb.saveList.Clear()
	sb.entries = nil
	sb.selected = 0

	dir, err := config.SaveDir()
	if err != nil {
		sb.saveList.AddItem("[dimgray]Save directory unavailable[-]", "", 0, nil)
		return
	}
	entries, err := savefile.List(dir)
	if err != nil || len(entries) == 0 {
		sb.saveList.AddItem("[dimgray]No saved games[-]", "", 0, nil)
		return
	}

	sb.entries = entries
	for _, e := range entries {
		label := fmt.Sprintf("%s  %s %dx%d  %d moves", e.SavedAt, e.Variant, e.Size, e.Size, e.Moves)
		sb.saveList.AddItem(label, "", 0, nil)
	}
}

// handleInput processes keyboard input for the save browser.
func (sb *SaveBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if sb.onDone != nil {
			sb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if sb.onDone != nil {
				sb.onDone()
			}
			return nil
		case 'd':
			sb.deleteSelected()
			return nil
		}
	}
	return event
}

// loadSelected resumes the currently selected save.
func (sb *SaveBrowserUI) loadSelected() {
	if sb.selected < 0 || sb.selected >= len(sb.entries) {
		return
	}
	if sb.onLoad != nil {
		sb.onLoad(sb.entries[sb.selected].Path)
	}
}

// deleteSelected removes the currently selected snapshot.
func (sb *SaveBrowserUI) deleteSelected() {
	if sb.selected < 0 || sb.selected >= len(sb.entries) {
		return
	}
	savefile.Delete(sb.entries[sb.selected].Path)
	sb.snaps = make(map[int]*savefile.SaveGame)
	sb.loadEntries()
}

// drawPreview renders a mini board preview and save metadata.
func (sb *SaveBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if sb.selected < 0 || sb.selected >= len(sb.entries) {
		return x, y, width, height
	}

	entry := sb.entries[sb.selected]

	// Lazy-load and cache the snapshot
	snap, ok := sb.snaps[sb.selected]
	if !ok {
		loaded, err := savefile.Load(entry.Path)
		if err == nil {
			snap = loaded
			sb.snaps[sb.selected] = snap
		}
	}
	if snap == nil {
		return x, y, width, height
	}

	size := snap.Size
	startX := x + 2
	startY := y + 1

	if width >= size+4 && height >= size+6 {
		emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
		blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
		whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))

		for by := 0; by < size && by < len(snap.Rows); by++ {
			row := snap.Rows[by]
			for bx := 0; bx < size && bx < len(row); bx++ {
				ch := '·'
				style := emptyStyle
				switch row[bx] {
				case 'B':
					ch = '●'
					style = blackStyle
				case 'W':
					ch = '○'
					style = whiteStyle
				}
				screen.SetContent(startX+bx, startY+by, ch, nil, style)
			}
		}

		infoY := startY + size + 1
		infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
		dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

		drawText(screen, startX, infoY, fmt.Sprintf("%s %dx%d", snap.Variant, size, size), infoStyle)
		drawText(screen, startX+12, infoY, fmt.Sprintf("| %d moves", len(snap.Moves)), dimStyle)

		infoY++
		drawText(screen, startX, infoY, fmt.Sprintf("B: %s", snap.Black), dimStyle)
		infoY++
		drawText(screen, startX, infoY, fmt.Sprintf("W: %s", snap.White), dimStyle)

		infoY++
		toMove := "Black"
		if snap.Turn == 1 {
			toMove = "White"
		}
		turnStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(109))
		drawText(screen, startX, infoY, fmt.Sprintf("%s to move", toMove), turnStyle)
	}

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
