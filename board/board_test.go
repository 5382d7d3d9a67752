package board

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSizeBounds(t *testing.T) {
	tests := []struct {
		size int
		ok   bool
	}{
		{7, false},
		{8, true},
		{9, true},
		{19, true},
		{20, false},
		{0, false},
		{-3, false},
	}
	for _, tt := range tests {
		b, err := New(tt.size)
		if tt.ok && err != nil {
			t.Errorf("New(%d): unexpected error %v", tt.size, err)
		}
		if !tt.ok {
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%d): want ErrInvalidSize, got %v", tt.size, err)
			}
			continue
		}
		if b.Size() != tt.size {
			t.Errorf("New(%d): Size() = %d", tt.size, b.Size())
		}
	}
}

func TestPlaceStone(t *testing.T) {
	b, _ := New(9)

	if err := b.PlaceStone(Pos{4, 4}, Black); err != nil {
		t.Fatalf("PlaceStone: %v", err)
	}
	if got := b.Get(Pos{4, 4}); got != Black {
		t.Fatalf("Get after place = %v, want Black", got)
	}

	if err := b.PlaceStone(Pos{4, 4}, White); !errors.Is(err, ErrOccupied) {
		t.Fatalf("place on occupied: want ErrOccupied, got %v", err)
	}
	if got := b.Get(Pos{4, 4}); got != Black {
		t.Fatalf("occupied cell changed to %v", got)
	}

	for _, p := range []Pos{{-1, 0}, {0, -1}, {9, 0}, {0, 9}} {
		if err := b.PlaceStone(p, Black); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("place at %v: want ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestRemoveStonesIdempotent(t *testing.T) {
	b, _ := New(9)
	b.PlaceStone(Pos{1, 1}, White)

	b.RemoveStones([]Pos{{1, 1}, {2, 2}, {-4, 7}})
	if got := b.Get(Pos{1, 1}); got != Empty {
		t.Fatalf("removed cell = %v, want Empty", got)
	}

	// Removing again must not fail or change anything.
	b.RemoveStones([]Pos{{1, 1}})
	if got := b.Get(Pos{1, 1}); got != Empty {
		t.Fatalf("cell after double remove = %v", got)
	}
}

func TestPopRecordEmptyHistory(t *testing.T) {
	b, _ := New(9)
	if _, err := b.PopRecord(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("PopRecord on empty log: want ErrEmptyHistory, got %v", err)
	}
	if err := b.UndoLast(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("UndoLast on empty log: want ErrEmptyHistory, got %v", err)
	}
}

func TestUndoLastRestoresGrid(t *testing.T) {
	b, _ := New(9)

	b.PlaceStone(Pos{3, 3}, White)
	before := b.Rows()

	// A black move that captured the white stone at (3,3).
	b.PlaceStone(Pos{3, 4}, Black)
	b.RemoveStones([]Pos{{3, 3}})
	b.AppendRecord(MoveRecord{Pos: Pos{3, 4}, Color: Black, Captured: []Pos{{3, 3}}})

	if err := b.UndoLast(); err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if got := b.Get(Pos{3, 4}); got != Empty {
		t.Errorf("undone move cell = %v, want Empty", got)
	}
	if got := b.Get(Pos{3, 3}); got != White {
		t.Errorf("captured stone revived as %v, want White", got)
	}
	if !reflect.DeepEqual(b.Rows(), before) {
		t.Errorf("grid not restored:\n got %v\nwant %v", b.Rows(), before)
	}
	if b.MoveCount() != 0 {
		t.Errorf("log length after undo = %d, want 0", b.MoveCount())
	}
}

func TestUndoLastPassIsGridNoop(t *testing.T) {
	b, _ := New(9)
	b.PlaceStone(Pos{0, 0}, Black)
	b.AppendRecord(MoveRecord{Pos: Pos{0, 0}, Color: Black})
	b.AppendRecord(MoveRecord{Pos: Pass, Color: White})

	before := b.Rows()
	if err := b.UndoLast(); err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if !reflect.DeepEqual(b.Rows(), before) {
		t.Errorf("pass undo changed the grid")
	}
	if b.MoveCount() != 1 {
		t.Errorf("log length = %d, want 1", b.MoveCount())
	}
}

func TestFullAndCount(t *testing.T) {
	b, _ := New(8)
	if b.Full() {
		t.Fatal("empty board reported full")
	}
	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := Black
			if (x+y)%2 == 1 {
				c = White
			}
			if err := b.PlaceStone(Pos{x, y}, c); err != nil {
				t.Fatalf("PlaceStone(%d,%d): %v", x, y, err)
			}
			n++
		}
	}
	if !b.Full() {
		t.Fatal("filled board not reported full")
	}
	if got := b.Count(Black) + b.Count(White); got != n {
		t.Fatalf("Count sum = %d, want %d", got, n)
	}
	if b.Count(Black) != 32 || b.Count(White) != 32 {
		t.Fatalf("Count = %d/%d, want 32/32", b.Count(Black), b.Count(White))
	}
}

func TestRowsRestoreRoundTrip(t *testing.T) {
	b, _ := New(9)
	b.PlaceStone(Pos{0, 0}, Black)
	b.PlaceStone(Pos{8, 8}, White)
	b.AppendRecord(MoveRecord{Pos: Pos{0, 0}, Color: Black})
	b.AppendRecord(MoveRecord{Pos: Pos{8, 8}, Color: White})

	restored, err := Restore(b.Size(), b.Rows(), b.History())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !reflect.DeepEqual(restored.Rows(), b.Rows()) {
		t.Errorf("restored grid differs")
	}
	if restored.MoveCount() != 2 {
		t.Errorf("restored log length = %d, want 2", restored.MoveCount())
	}

	// Undo must work on the restored board.
	if err := restored.UndoLast(); err != nil {
		t.Fatalf("UndoLast after restore: %v", err)
	}
	if got := restored.Get(Pos{8, 8}); got != Empty {
		t.Errorf("undone cell = %v, want Empty", got)
	}
}

func TestRestoreRejectsBadShape(t *testing.T) {
	if _, err := Restore(9, []string{"........."}, nil); err == nil {
		t.Error("short row list accepted")
	}
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = "........."
	}
	rows[4] = "....X...."
	if _, err := Restore(9, rows, nil); err == nil {
		t.Error("invalid cell code accepted")
	}
}

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Error("Opponent mapping wrong")
	}
	if Empty.Opponent() != Empty {
		t.Error("Empty.Opponent() should be Empty")
	}
}
