// Package savefile reads and writes banmen save games: a JSON snapshot of
// the variant, the grid, the full move log and the player to move. The log
// is included so undo keeps working after a reload.
package savefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"banmen/board"
	"banmen/game"
)

// Move is one persisted move-log entry. Captured positions are stored as
// [x, y] pairs; a pass is x=-1, y=-1.
type Move struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Color    string   `json:"color"` // "B" or "W"
	Captured [][2]int `json:"captured,omitempty"`
}

// SaveGame is the persisted-state shape.
type SaveGame struct {
	Variant string   `json:"variant"`
	Size    int      `json:"size"`
	Rows    []string `json:"rows"` // one string per row, cells '.', 'B', 'W'
	Moves   []Move   `json:"moves"`
	Turn    int      `json:"turn"` // 0=black to move, 1=white
	Black   string   `json:"black"`
	White   string   `json:"white"`
	SavedAt string   `json:"saved_at"`
}

// Capture snapshots a running session.
func Capture(s *game.Session) *SaveGame {
	b := s.Board()
	sg := &SaveGame{
		Variant: s.Variant(),
		Size:    b.Size(),
		Rows:    b.Rows(),
		Turn:    s.TurnIndex(),
		Black:   s.PlayerByColor(board.Black).Name,
		White:   s.PlayerByColor(board.White).Name,
		SavedAt: time.Now().Format(time.RFC3339),
	}
	for _, r := range b.History() {
		m := Move{X: r.Pos.X, Y: r.Pos.Y, Color: string(r.Color.Code())}
		for _, c := range r.Captured {
			m.Captured = append(m.Captured, [2]int{c.X, c.Y})
		}
		sg.Moves = append(sg.Moves, m)
	}
	return sg
}

// Session reconstructs an equivalent session from the snapshot.
func (sg *SaveGame) Session() (*game.Session, error) {
	history := make([]board.MoveRecord, 0, len(sg.Moves))
	for i, m := range sg.Moves {
		var c board.Color
		switch m.Color {
		case "B":
			c = board.Black
		case "W":
			c = board.White
		default:
			return nil, fmt.Errorf("move %d: invalid color %q", i, m.Color)
		}
		rec := board.MoveRecord{Pos: board.Pos{X: m.X, Y: m.Y}, Color: c}
		for _, cap := range m.Captured {
			rec.Captured = append(rec.Captured, board.Pos{X: cap[0], Y: cap[1]})
		}
		history = append(history, rec)
	}
	b, err := board.Restore(sg.Size, sg.Rows, history)
	if err != nil {
		return nil, err
	}
	return game.RestoreSession(sg.Variant, b, sg.Turn, sg.Black, sg.White)
}

// Save writes the snapshot to path, creating parent directories as needed.
func (sg *SaveGame) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	data, err := json.MarshalIndent(sg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a snapshot from path.
func Load(path string) (*SaveGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sg SaveGame
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("parse save file %s: %w", filepath.Base(path), err)
	}
	return &sg, nil
}

// Entry describes one save file found by List.
type Entry struct {
	Path    string
	Name    string
	Variant string
	Size    int
	Moves   int
	SavedAt string
}

// List scans dir for .json save files, newest first. A missing directory is
// not an error; it just yields no entries.
func List(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read save dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		sg, err := Load(path)
		if err != nil {
			continue // skip unreadable files, don't fail the listing
		}
		entries = append(entries, Entry{
			Path:    path,
			Name:    strings.TrimSuffix(f.Name(), ".json"),
			Variant: sg.Variant,
			Size:    sg.Size,
			Moves:   len(sg.Moves),
			SavedAt: sg.SavedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt > entries[j].SavedAt
	})
	return entries, nil
}

// Delete removes a save file.
func Delete(path string) error {
	return os.Remove(path)
}

// DefaultName builds a timestamped file name for a new save.
func DefaultName(variant string, size int) string {
	return fmt.Sprintf("%s_%s_%dx%d.json", time.Now().Format("2006-01-02_150405"), variant, size, size)
}
