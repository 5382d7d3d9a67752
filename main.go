// banmen is a terminal application for hot-seat go (capture rules) and
// gomoku on the same board.
package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"banmen/board"
	"banmen/config"
	"banmen/game"
	"banmen/savefile"
	"banmen/sgf"
	"banmen/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagVariant    = flag.String("variant", "", "Game variant (go or gomoku)")
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (8-19)")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardView
var gameFrame *tview.Flex
var gameHint *tview.TextView
var saveBrowser *ui.SaveBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("banmen %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	quickStart := *flagQuickStart || *flagVariant != "" || *flagBoardSize > 0

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ banmen ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardView(app, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(*selTile)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'p':
				gameBoard.Pass()
			case 'u':
				gameBoard.Undo()
			case 's':
				saveCurrentGame()
			case 'r':
				gameBoard.Resign()
			}
		}
		return event
	})

	// Game setup screen
	setupForm := ui.NewGameForm(cfg,
		func(res ui.SetupResult) {
			startGame(res)
		},
		func() {
			saveBrowser.Refresh()
			rootPage.SwitchToPage("saves")
		},
		func() {
			app.Stop()
		},
	)

	// Save browser screen
	saveBrowser = ui.NewSaveBrowser(
		func(path string) {
			loadGame(path)
		},
		func() {
			rootPage.SwitchToPage("setup")
		},
	)

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", setupForm, true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("saves", saveBrowser.Flex(), true, false)

	if quickStart {
		startGame(buildSetupFromFlags())
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// startGame starts a fresh game from the setup form result.
func startGame(res ui.SetupResult) {
	sess, err := game.NewSession(res.Variant, res.BoardSize, res.BlackName, res.WhiteName)
	if err != nil {
		showError(fmt.Sprintf("Failed to start game:\n%s", err.Error()))
		return
	}
	gameBoard.StartSession(sess, newRecord(sess))
	rootPage.SwitchToPage("gameview")
}

// loadGame resumes a saved game from a snapshot file.
func loadGame(path string) {
	snap, err := savefile.Load(path)
	if err != nil {
		showError(fmt.Sprintf("Failed to load game:\n%s", err.Error()))
		return
	}
	sess, err := snap.Session()
	if err != nil {
		showError(fmt.Sprintf("Failed to load game:\n%s", err.Error()))
		return
	}
	// Resumed games are not recorded; the record would miss the earlier moves.
	gameBoard.StartSession(sess, nil)
	rootPage.SwitchToPage("gameview")
}

// saveCurrentGame snapshots the running game to the save directory.
func saveCurrentGame() {
	sess := gameBoard.Session()
	if sess == nil || sess.Finished() {
		return
	}
	dir, err := config.SaveDir()
	if err != nil {
		gameBoard.SetNotice("Save failed")
		return
	}
	name := savefile.DefaultName(sess.Variant(), sess.Board().Size())
	if err := savefile.Capture(sess).Save(filepath.Join(dir, name)); err != nil {
		gameBoard.SetNotice("Save failed")
		return
	}
	gameBoard.SetNotice(fmt.Sprintf("Saved as %s", name))
}

// newRecord opens an SGF record for a new game if recording is enabled.
func newRecord(sess *game.Session) *sgf.Record {
	if !cfg.Game.RecordGames {
		return nil
	}
	dir, err := config.RecordDir()
	if err != nil {
		return nil
	}
	b := sess.Board()
	rec, err := sgf.NewRecord(dir, sess.Variant(), b.Size(),
		sess.PlayerByColor(board.Black).Name, sess.PlayerByColor(board.White).Name)
	if err != nil {
		return nil
	}
	return rec
}

// buildSetupFromFlags creates a setup result from command-line flags.
func buildSetupFromFlags() ui.SetupResult {
	res := ui.SetupResult{
		Variant:   cfg.Game.DefaultVariant,
		BoardSize: cfg.Game.DefaultBoardSize,
		BlackName: cfg.Game.BlackName,
		WhiteName: cfg.Game.WhiteName,
	}
	if *flagVariant == "go" || *flagVariant == "gomoku" {
		res.Variant = *flagVariant
	}
	if *flagBoardSize >= 8 && *flagBoardSize <= 19 {
		res.BoardSize = *flagBoardSize
	}
	return res
}

// showError displays an error modal over the current page.
func showError(msg string) {
	modal := tview.NewModal().
		SetText(msg).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.HidePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
