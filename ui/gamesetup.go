package ui

import (
	"strconv"

	"github.com/rivo/tview"

	"banmen/config"
	"banmen/engine"
)

// SetupResult is the outcome of the new game form.
type SetupResult struct {
	Variant   string
	BoardSize int
	BlackName string
	WhiteName string
}

var setupSizes = []int{8, 9, 13, 15, 19}

// NewGameForm builds the new game form. onStart receives the chosen setup,
// onSaved opens the save browser and onQuit stops the application.
func NewGameForm(cfg *config.Config, onStart func(SetupResult), onSaved func(), onQuit func()) *tview.Form {
	res := SetupResult{
		Variant:   cfg.Game.DefaultVariant,
		BoardSize: cfg.Game.DefaultBoardSize,
		BlackName: cfg.Game.BlackName,
		WhiteName: cfg.Game.WhiteName,
	}

	variants := engine.Variants()
	variantIdx := 0
	for i, v := range variants {
		if v == res.Variant {
			variantIdx = i
		}
	}
	sizeLabels := make([]string, len(setupSizes))
	sizeIdx := 0
	for i, s := range setupSizes {
		sizeLabels[i] = strconv.Itoa(s)
		if s == res.BoardSize {
			sizeIdx = i
		}
	}

	form := tview.NewForm().
		AddDropDown("Variant", variants, variantIdx, func(option string, _ int) {
			res.Variant = option
		}).
		AddDropDown("Board size", sizeLabels, sizeIdx, func(_ string, idx int) {
			res.BoardSize = setupSizes[idx]
		}).
		AddInputField("Black player", res.BlackName, 20, nil, func(text string) {
			res.BlackName = text
		}).
		AddInputField("White player", res.WhiteName, 20, nil, func(text string) {
			res.WhiteName = text
		}).
		AddButton("Start game", func() {
			onStart(res)
		}).
		AddButton("Saved games", func() {
			onSaved()
		}).
		AddButton("Quit", func() {
			onQuit()
		})
	form.SetBorder(true).SetTitle(" banmen ").SetTitleAlign(tview.AlignLeft)
	return form
}
