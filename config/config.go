// Package config loads and saves banmen's configuration and resolves the
// xdg directories for save files and game records.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "banmen/config.json"
	dataDir = "banmen"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds new-game defaults.
type GameConfig struct {
	DefaultVariant   string `json:"default_variant"` // "go" or "gomoku"
	DefaultBoardSize int    `json:"default_board_size"`
	BlackName        string `json:"black_name"`
	WhiteName        string `json:"white_name"`
	RecordGames      bool   `json:"record_games"` // write SGF records
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.DefaultVariant != "go" && c.Game.DefaultVariant != "gomoku" {
		return &InvalidConfig{fmt.Sprintf("unknown default variant %q", c.Game.DefaultVariant)}
	}
	if c.Game.DefaultBoardSize < 8 || c.Game.DefaultBoardSize > 19 {
		return &InvalidConfig{fmt.Sprintf("default board size %d outside 8..19", c.Game.DefaultBoardSize)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// SaveDir returns the directory for save-game snapshots, creating it if
// needed.
func SaveDir() (string, error) {
	return dataSubdir("saves")
}

// RecordDir returns the directory for SGF game records, creating it if
// needed.
func RecordDir() (string, error) {
	return dataSubdir("records")
}

func dataSubdir(name string) (string, error) {
	dir := filepath.Join(xdg.DataHome, dataDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s dir: %w", name, err)
	}
	return dir, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil // missing file falls back to defaults
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}
