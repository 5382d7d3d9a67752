package engine

import (
	"errors"
	"testing"

	"banmen/board"
)

func newBoard(t *testing.T, size int) *board.Board {
	t.Helper()
	b, err := board.New(size)
	if err != nil {
		t.Fatalf("board.New(%d): %v", size, err)
	}
	return b
}

func TestNewDispatch(t *testing.T) {
	b := newBoard(t, 9)
	tests := []struct {
		variant string
		name    string
		ok      bool
	}{
		{"go", "go", true},
		{"gomoku", "gomoku", true},
		{"GO", "go", true},
		{" Gomoku ", "gomoku", true},
		{"chess", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r, err := New(tt.variant, b)
		if !tt.ok {
			if !errors.Is(err, ErrUnknownVariant) {
				t.Errorf("New(%q): want ErrUnknownVariant, got %v", tt.variant, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q): %v", tt.variant, err)
			continue
		}
		if r.Name() != tt.name {
			t.Errorf("New(%q).Name() = %q, want %q", tt.variant, r.Name(), tt.name)
		}
	}
}

func TestScorerOnlyForCaptureVariant(t *testing.T) {
	b := newBoard(t, 9)
	goEngine, _ := New(VariantGo, b)
	if _, ok := goEngine.(Scorer); !ok {
		t.Error("go engine should implement Scorer")
	}
	gomokuEngine, _ := New(VariantGomoku, b)
	if _, ok := gomokuEngine.(Scorer); ok {
		t.Error("gomoku engine should not implement Scorer")
	}
}
