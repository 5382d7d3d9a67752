// Package board implements the shared board state for banmen: a fixed-size
// grid of cells plus the append-only move log that makes every move
// reversible. It knows nothing about game rules.
package board

import (
	"errors"
	"fmt"
)

const (
	// MinSize and MaxSize bound the board edge length at creation.
	MinSize = 8
	MaxSize = 19
)

var (
	// ErrInvalidSize occurs when New is called with a size outside MinSize..MaxSize.
	ErrInvalidSize = errors.New("board size is out of range (8..19)")
	// ErrOutOfBounds occurs when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position is out of bounds")
	// ErrOccupied occurs when placing a stone on a non-empty cell.
	ErrOccupied = errors.New("the position is occupied")
	// ErrEmptyHistory occurs when popping or undoing with no moves recorded.
	ErrEmptyHistory = errors.New("no moves to undo")
)

// Color is the state of a single cell.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the opposing color. Empty maps to Empty.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// Code returns the single-character cell code used in save files.
func (c Color) Code() byte {
	switch c {
	case Black:
		return 'B'
	case White:
		return 'W'
	}
	return '.'
}

// Pos is a board position. X runs left to right, Y top to bottom, 0-indexed.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pass is the sentinel position for a pass move.
var Pass = Pos{X: -1, Y: -1}

// IsPass reports whether p is the pass sentinel.
func (p Pos) IsPass() bool {
	return p.X == -1 && p.Y == -1
}

// MoveRecord is one entry in the move log. Captured holds the positions of
// opponent stones removed by this move, in removal order; it is nil for the
// line variant and for passes.
type MoveRecord struct {
	Pos      Pos
	Color    Color
	Captured []Pos
}

// Board holds the grid and the ordered move log. The size is immutable
// after creation.
type Board struct {
	size    int
	grid    [][]Color
	history []MoveRecord
}

// New creates an empty size x size board.
func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	grid := make([][]Color, size)
	for i := range grid {
		grid[i] = make([]Color, size)
	}
	return &Board{size: size, grid: grid}, nil
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// Get returns the cell state at p. Out-of-bounds positions read as Empty;
// callers that care must check InBounds first.
func (b *Board) Get(p Pos) Color {
	if !b.InBounds(p) {
		return Empty
	}
	return b.grid[p.Y][p.X]
}

// PlaceStone sets the cell at p to c. It checks bounds and occupancy only;
// game legality is the rule engine's job.
func (b *Board) PlaceStone(p Pos, c Color) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	if b.grid[p.Y][p.X] != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, p.X, p.Y)
	}
	b.grid[p.Y][p.X] = c
	return nil
}

// RemoveStones clears every given position. Already-empty and out-of-bounds
// positions are ignored, so the call is idempotent.
func (b *Board) RemoveStones(positions []Pos) {
	for _, p := range positions {
		if b.InBounds(p) {
			b.grid[p.Y][p.X] = Empty
		}
	}
}

// AppendRecord appends r to the move log.
func (b *Board) AppendRecord(r MoveRecord) {
	b.history = append(b.history, r)
}

// PopRecord removes and returns the most recent move record.
func (b *Board) PopRecord() (MoveRecord, error) {
	if len(b.history) == 0 {
		return MoveRecord{}, ErrEmptyHistory
	}
	r := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	return r, nil
}

// UndoLast reverses the most recent move: the recorded position is cleared
// (a pass leaves the grid untouched) and every captured stone is revived to
// the mover's opponent color.
func (b *Board) UndoLast() error {
	r, err := b.PopRecord()
	if err != nil {
		return err
	}
	if !r.Pos.IsPass() {
		b.grid[r.Pos.Y][r.Pos.X] = Empty
	}
	opp := r.Color.Opponent()
	for _, p := range r.Captured {
		if b.InBounds(p) {
			b.grid[p.Y][p.X] = opp
		}
	}
	return nil
}

// History returns the move log. The slice must not be mutated by callers.
func (b *Board) History() []MoveRecord {
	return b.history
}

// LastMove returns the most recent record, if any.
func (b *Board) LastMove() (MoveRecord, bool) {
	if len(b.history) == 0 {
		return MoveRecord{}, false
	}
	return b.history[len(b.history)-1], true
}

// MoveCount returns the number of recorded moves.
func (b *Board) MoveCount() int {
	return len(b.history)
}

// Full reports whether every cell holds a stone.
func (b *Board) Full() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.grid[y][x] == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns the number of stones of color c on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.grid[y][x] == c {
				n++
			}
		}
	}
	return n
}

// Rows flattens the grid to one string per row using the cell codes
// '.', 'B' and 'W'. Used by the save file format.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	buf := make([]byte, b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			buf[x] = b.grid[y][x].Code()
		}
		rows[y] = string(buf)
	}
	return rows
}

// Restore rebuilds a board from its persisted shape: the flattened rows and
// the full move log. The history is copied, so undo keeps working on the
// restored board.
func Restore(size int, rows []string, history []MoveRecord) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(rows) != size {
		return nil, fmt.Errorf("%w: got %d rows for size %d", ErrInvalidSize, len(rows), size)
	}
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidSize, y, len(row))
		}
		for x := 0; x < size; x++ {
			switch row[x] {
			case 'B':
				b.grid[y][x] = Black
			case 'W':
				b.grid[y][x] = White
			case '.':
				// empty
			default:
				return nil, fmt.Errorf("invalid cell code %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	b.history = make([]MoveRecord, len(history))
	copy(b.history, history)
	return b, nil
}
