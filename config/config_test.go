package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsControlSymbols(t *testing.T) {
	cfg := DefaultConfig
	cfg.Theme.Symbols.BlackStone = 7 // BEL
	if err := cfg.Validate(); err == nil {
		t.Error("control-character symbol accepted")
	}
}

func TestValidateGameDefaults(t *testing.T) {
	cfg := DefaultConfig
	cfg.Game.DefaultVariant = "chess"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "variant") {
		t.Errorf("bad variant: got %v", err)
	}

	cfg = DefaultConfig
	cfg.Game.DefaultBoardSize = 25
	if err := cfg.Validate(); err == nil {
		t.Error("board size 25 accepted")
	}
}
