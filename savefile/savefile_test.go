package savefile

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"banmen/board"
	"banmen/engine"
	"banmen/game"
)

func playedGoSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(engine.VariantGo, 9, "Aki", "Ben")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	// Black captures the white stone at (0,0).
	moves := []board.Pos{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 4}, {X: 5, Y: 5}, {X: 0, Y: 1}}
	for _, p := range moves {
		if err := s.PlayMove(p); err != nil {
			t.Fatalf("PlayMove(%v): %v", p, err)
		}
	}
	if s.Board().Get(board.Pos{X: 0, Y: 0}) != board.Empty {
		t.Fatal("setup: capture did not happen")
	}
	return s
}

func TestCaptureShape(t *testing.T) {
	s := playedGoSession(t)
	sg := Capture(s)

	if sg.Variant != "go" || sg.Size != 9 {
		t.Fatalf("header = %s/%d", sg.Variant, sg.Size)
	}
	if sg.Turn != 1 {
		t.Fatalf("turn = %d, want 1 (white to move)", sg.Turn)
	}
	if len(sg.Moves) != 5 {
		t.Fatalf("moves = %d, want 5", len(sg.Moves))
	}
	last := sg.Moves[4]
	if last.Color != "B" || !reflect.DeepEqual(last.Captured, [][2]int{{0, 0}}) {
		t.Fatalf("last move = %+v, want black capture of (0,0)", last)
	}
	if len(sg.Rows) != 9 || len(sg.Rows[0]) != 9 {
		t.Fatalf("rows shape %dx%d", len(sg.Rows), len(sg.Rows[0]))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := playedGoSession(t)
	sg := Capture(s)

	path := filepath.Join(t.TempDir(), "game.json")
	if err := sg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	restored, err := loaded.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}

	if restored.Variant() != s.Variant() {
		t.Errorf("variant = %q, want %q", restored.Variant(), s.Variant())
	}
	if restored.TurnIndex() != s.TurnIndex() {
		t.Errorf("turn = %d, want %d", restored.TurnIndex(), s.TurnIndex())
	}
	if !reflect.DeepEqual(restored.Board().Rows(), s.Board().Rows()) {
		t.Errorf("restored grid differs")
	}
	if restored.PlayerByColor(board.Black).Name != "Aki" {
		t.Errorf("black name lost")
	}
}

func TestUndoAfterReload(t *testing.T) {
	s := playedGoSession(t)
	path := filepath.Join(t.TempDir(), "game.json")
	if err := Capture(s).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	restored, err := loaded.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}

	// Undo the capturing move: the captured white stone must come back.
	if err := restored.Undo(); err != nil {
		t.Fatalf("Undo after reload: %v", err)
	}
	if got := restored.Board().Get(board.Pos{X: 0, Y: 0}); got != board.White {
		t.Fatalf("revived stone = %v, want White", got)
	}
	if got := restored.Board().Get(board.Pos{X: 0, Y: 1}); got != board.Empty {
		t.Fatalf("undone move cell = %v, want Empty", got)
	}
}

func TestSessionRejectsCorruptSnapshot(t *testing.T) {
	s := playedGoSession(t)
	sg := Capture(s)

	sg.Moves[0].Color = "X"
	if _, err := sg.Session(); err == nil {
		t.Error("invalid move color accepted")
	}

	sg = Capture(s)
	sg.Variant = "chess"
	if _, err := sg.Session(); !errors.Is(err, engine.ErrUnknownVariant) {
		t.Errorf("unknown variant: got %v", err)
	}

	sg = Capture(s)
	sg.Rows = sg.Rows[:3]
	if _, err := sg.Session(); err == nil {
		t.Error("truncated grid accepted")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	// Missing directory yields no entries, no error.
	entries, err := List(filepath.Join(dir, "absent"))
	if err != nil || entries != nil {
		t.Fatalf("List on missing dir = %v, %v", entries, err)
	}

	s := playedGoSession(t)
	sg := Capture(s)
	sg.SavedAt = "2026-01-02T10:00:00Z"
	if err := sg.Save(filepath.Join(dir, "older.json")); err != nil {
		t.Fatal(err)
	}
	sg2 := Capture(s)
	sg2.SavedAt = "2026-03-04T10:00:00Z"
	if err := sg2.Save(filepath.Join(dir, "newer.json")); err != nil {
		t.Fatal(err)
	}

	entries, err = List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Name != "newer" || entries[1].Name != "older" {
		t.Fatalf("order = %s, %s; want newest first", entries[0].Name, entries[1].Name)
	}
	if entries[0].Variant != "go" || entries[0].Moves != 5 {
		t.Fatalf("entry = %+v", entries[0])
	}
}

func TestDefaultName(t *testing.T) {
	name := DefaultName("gomoku", 9)
	if !strings.HasSuffix(name, "_gomoku_9x9.json") {
		t.Fatalf("DefaultName = %q", name)
	}
}
