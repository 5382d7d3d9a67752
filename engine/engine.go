// Package engine implements the rule engines for banmen's game variants.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"banmen/board"
)

// Variant names accepted by New.
const (
	VariantGo     = "go"
	VariantGomoku = "gomoku"
)

// ErrUnknownVariant occurs when New is called with an unrecognized variant name.
var ErrUnknownVariant = errors.New("unknown game variant")

// Variants lists the supported variant names.
func Variants() []string {
	return []string{VariantGo, VariantGomoku}
}

// Result describes the outcome of an applied move.
type Result struct {
	GameOver bool
	Winner   board.Color // Empty when the game continues or ends drawn
	Draw     bool
}

// Rules is the capability surface of a rule engine. The concrete variant is
// selected once at game start and never switched.
//
// ApplyMove assumes the caller consulted IsValidMove first; it applies the
// move, appends it to the board's move log and reports whether the game is
// over. Undo reverses the most recent logged move.
type Rules interface {
	Name() string
	IsValidMove(p board.Pos, c board.Color) bool
	ApplyMove(p board.Pos, c board.Color) (Result, error)
	Undo() error
}

// Scorer is implemented by variants that can score a position. Only the
// capture variant does; the line variant's outcome is decided move by move.
type Scorer interface {
	Score() (black, white int)
}

// New creates the rule engine for the named variant over b.
func New(variant string, b *board.Board) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantGo:
		// Seed the pass counter from the log tail so a restored board
		// that ends in a pass still terminates on the next one.
		g := &goRules{board: b}
		g.passesInRow = g.trailingPasses()
		return g, nil
	case VariantGomoku:
		return &gomokuRules{board: b}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}

// neighbors4 is the 4-adjacency used by both variants' neighbor walks.
var neighbors4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
