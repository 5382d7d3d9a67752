// Package sgf writes SGF FF[4] records of banmen games. Records are
// export-only: the app never reads them back, saves use the JSON snapshot.
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SGF game numbers for the GM property.
const (
	gameGo     = 1
	gameGomoku = 4
)

// Record tracks a game in progress and writes it as SGF.
type Record struct {
	FilePath    string
	Variant     string
	BoardSize   int
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[pd]", ";W[]", ...
	file        *os.File
}

// NewRecord creates an SGF file in dir and writes the initial header. The
// file name carries the timestamp, variant and board size.
func NewRecord(dir, variant string, boardSize int, black, white string) (*Record, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s_%s_%dx%d.sgf", now.Format("2006-01-02_150405"), variant, boardSize, boardSize)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	rec := &Record{
		FilePath:    path,
		Variant:     variant,
		BoardSize:   boardSize,
		PlayerBlack: black,
		PlayerWhite: white,
		Date:        now.Format("2006-01-02"),
		Result:      "?",
		file:        f,
	}
	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}
	return rec, nil
}

// sgfCoord converts 0-indexed board coordinates to an SGF letter pair.
// (0,0) -> "aa", (3,4) -> "de".
func sgfCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// AddMove appends a move. Pass is indicated by x==-1 && y==-1. colorBlack
// selects between the B and W properties.
func (r *Record) AddMove(x, y int, colorBlack bool) error {
	prop := "B"
	if !colorBlack {
		prop = "W"
	}
	var node string
	if x == -1 && y == -1 {
		node = fmt.Sprintf(";%s[]", prop)
	} else {
		node = fmt.Sprintf(";%s[%s]", prop, sgfCoord(x, y))
	}
	r.moves = append(r.moves, node)
	return r.flush()
}

// UndoMoves removes the last n moves from the record.
func (r *Record) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	return r.flush()
}

// MoveCount returns the number of recorded moves.
func (r *Record) MoveCount() int {
	return len(r.moves)
}

// SetResult stores the outcome as the SGF RE property. blackWins/whiteWins
// select the winner; neither set means a draw ("0"); byResign appends "+R",
// otherwise the winner is recorded without a margin.
func (r *Record) SetResult(blackWins, whiteWins, byResign bool) error {
	switch {
	case blackWins && byResign:
		r.Result = "B+R"
	case whiteWins && byResign:
		r.Result = "W+R"
	case blackWins:
		r.Result = "B+"
	case whiteWins:
		r.Result = "W+"
	default:
		r.Result = "0"
	}
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *Record) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// flush rewrites the complete SGF file from scratch.
func (r *Record) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	gm := gameGo
	if r.Variant == "gomoku" {
		gm = gameGomoku
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("(;GM[%d]FF[4]CA[UTF-8]", gm))
	b.WriteString("AP[banmen:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("PB[%s]", r.PlayerBlack))
	b.WriteString(fmt.Sprintf("PW[%s]", r.PlayerWhite))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}
	b.WriteString(")\n")

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}
