// Package game holds the hot-seat session: two local players, the board,
// the selected rule engine and the turn index.
package game

import (
	"errors"
	"fmt"

	"banmen/board"
	"banmen/engine"
)

var (
	// ErrGameOver occurs when acting on a finished game.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalMove occurs when PlayMove is called with a move the rule
	// engine rejects.
	ErrIllegalMove = errors.New("illegal move")
	// ErrPassUnsupported occurs when passing in a variant without passes.
	ErrPassUnsupported = errors.New("only the go variant supports pass")
)

// Player is one of the two seats at the board.
type Player struct {
	Name  string
	Color board.Color
}

// Session drives one game from start to finish. It is single-threaded: the
// UI event loop is the only caller, so no locking is needed.
type Session struct {
	board *board.Board
	rules engine.Rules

	players [2]Player
	current int // index of the player to move

	finished bool
	outcome  string
	winner   board.Color
	resigned bool

	changeCallback func()
	endCallback    func(outcome string)
}

// NewSession creates a fresh game of the given variant and size. Empty
// player names get defaults. Black moves first.
func NewSession(variant string, size int, blackName, whiteName string) (*Session, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	return newSession(variant, b, 0, blackName, whiteName)
}

// RestoreSession rebuilds a session around an already-restored board, with
// turn selecting the player to move (0=black, 1=white).
func RestoreSession(variant string, b *board.Board, turn int, blackName, whiteName string) (*Session, error) {
	if turn != 0 && turn != 1 {
		return nil, fmt.Errorf("invalid turn index %d", turn)
	}
	return newSession(variant, b, turn, blackName, whiteName)
}

func newSession(variant string, b *board.Board, turn int, blackName, whiteName string) (*Session, error) {
	rules, err := engine.New(variant, b)
	if err != nil {
		return nil, err
	}
	if blackName == "" {
		blackName = "Black"
	}
	if whiteName == "" {
		whiteName = "White"
	}
	return &Session{
		board: b,
		rules: rules,
		players: [2]Player{
			{Name: blackName, Color: board.Black},
			{Name: whiteName, Color: board.White},
		},
		current: turn,
	}, nil
}

// Board returns the session's board for rendering and persistence.
func (s *Session) Board() *board.Board {
	return s.board
}

// Variant returns the selected variant name.
func (s *Session) Variant() string {
	return s.rules.Name()
}

// CurrentPlayer returns the player to move.
func (s *Session) CurrentPlayer() Player {
	return s.players[s.current]
}

// PlayerByColor returns the player holding color c.
func (s *Session) PlayerByColor(c board.Color) Player {
	if s.players[0].Color == c {
		return s.players[0]
	}
	return s.players[1]
}

// TurnIndex returns the index of the player to move (0=black, 1=white).
func (s *Session) TurnIndex() int {
	return s.current
}

// Finished reports whether the game has ended.
func (s *Session) Finished() bool {
	return s.finished
}

// Outcome returns the human-readable result once the game has ended.
func (s *Session) Outcome() string {
	return s.outcome
}

// Winner returns the winning color once the game has ended, and whether the
// win came by resignation. Draws and unfinished games report Empty.
func (s *Session) Winner() (board.Color, bool) {
	return s.winner, s.resigned
}

// OnChange registers a callback fired after every successful state change
// (move, pass, undo).
func (s *Session) OnChange(cb func()) {
	s.changeCallback = cb
}

// OnGameEnd registers a callback fired once when the game ends.
func (s *Session) OnGameEnd(cb func(outcome string)) {
	s.endCallback = cb
}

// IsValidMove reports whether the player to move may play at p.
func (s *Session) IsValidMove(p board.Pos) bool {
	if s.finished {
		return false
	}
	return s.rules.IsValidMove(p, s.CurrentPlayer().Color)
}

// PlayMove validates and applies a stone placement for the player to move,
// then alternates the turn.
func (s *Session) PlayMove(p board.Pos) error {
	if s.finished {
		return ErrGameOver
	}
	mover := s.CurrentPlayer()
	if !s.rules.IsValidMove(p, mover.Color) {
		return fmt.Errorf("%w: (%d,%d)", ErrIllegalMove, p.X, p.Y)
	}
	res, err := s.rules.ApplyMove(p, mover.Color)
	if err != nil {
		return err
	}
	debugf("move %s (%d,%d) over=%v", mover.Color, p.X, p.Y, res.GameOver)
	s.switchPlayer()
	s.settle(res)
	return nil
}

// Pass plays a pass for the player to move. Capture variant only.
func (s *Session) Pass() error {
	if s.finished {
		return ErrGameOver
	}
	if s.rules.Name() != engine.VariantGo {
		return ErrPassUnsupported
	}
	mover := s.CurrentPlayer()
	res, err := s.rules.ApplyMove(board.Pass, mover.Color)
	if err != nil {
		return err
	}
	debugf("pass %s over=%v", mover.Color, res.GameOver)
	s.switchPlayer()
	s.settle(res)
	return nil
}

// Undo takes back the most recent move and hands the turn back to the
// player who made it. A finished game cannot be reopened.
func (s *Session) Undo() error {
	if s.finished {
		return ErrGameOver
	}
	if err := s.rules.Undo(); err != nil {
		return err
	}
	s.switchPlayer()
	s.notifyChange()
	return nil
}

// Resign ends the game: the player to move loses.
func (s *Session) Resign() {
	if s.finished {
		return
	}
	loser := s.CurrentPlayer()
	winner := s.PlayerByColor(loser.Color.Opponent())
	s.winner = winner.Color
	s.resigned = true
	s.finish(fmt.Sprintf("%s wins by resignation", winner.Name))
}

func (s *Session) switchPlayer() {
	s.current = 1 - s.current
}

// settle records a terminal result and fires callbacks.
func (s *Session) settle(res engine.Result) {
	if !res.GameOver {
		s.notifyChange()
		return
	}
	if !res.Draw {
		s.winner = res.Winner
	}
	s.notifyChange()
	s.finish(s.describe(res))
}

func (s *Session) describe(res engine.Result) string {
	if res.Draw {
		if scorer, ok := s.rules.(engine.Scorer); ok {
			black, white := scorer.Score()
			return fmt.Sprintf("Draw (%d-%d stones)", black, white)
		}
		return "Draw"
	}
	winner := s.PlayerByColor(res.Winner)
	if scorer, ok := s.rules.(engine.Scorer); ok {
		black, white := scorer.Score()
		return fmt.Sprintf("%s wins (%d-%d stones)", winner.Name, black, white)
	}
	return fmt.Sprintf("%s wins (five in a row)", winner.Name)
}

func (s *Session) finish(outcome string) {
	s.finished = true
	s.outcome = outcome
	debugf("game over: %s", outcome)
	if s.endCallback != nil {
		s.endCallback(outcome)
	}
}

func (s *Session) notifyChange() {
	if s.changeCallback != nil {
		s.changeCallback()
	}
}
