package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

var (
	cfgFile      = "squares/config.json"
	debugLogFile = "squares/debug.log"
)

// MinUnitSize is the smallest number of terminal cells per board unit. Below it some edge bands
// contain no cell centre and could never be clicked.
const MinUnitSize = 3

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-color palette indices.
type ConfigColors struct {
	BoardColor     int `json:"board"`
	DotColor       int `json:"dot"`
	LineColor      int `json:"line"`
	IdleColor      int `json:"idle"`
	HighlightColor int `json:"highlight"`
	PlayerOne      int `json:"player_one"`
	PlayerTwo      int `json:"player_two"`
}

type ConfigSymbols struct {
	Dot  rune `json:"dot"`
	Idle rune `json:"idle"`
}

// Layout sets how many terminal cells one board unit spans.
type Layout struct {
	UnitWidth  int `json:"unit_width" env:"SQUARES_UNIT_WIDTH"`
	UnitHeight int `json:"unit_height" env:"SQUARES_UNIT_HEIGHT"`
}

type Theme struct {
	DrawIdleEdges bool          `json:"draw_idle_edges"`
	Colors        ConfigColors  `json:"colors"`
	Symbols       ConfigSymbols `json:"symbols"`
	Layout        Layout        `json:"layout"`
}

// SnapshotConfig controls PNG snapshots of the board.
type SnapshotConfig struct {
	Dir        string `json:"dir" env:"SQUARES_SNAPSHOT_DIR"`
	UnitPixels int    `json:"unit_pixels" env:"SQUARES_SNAPSHOT_UNIT_PIXELS"`
}

// PlayerConfig holds the default player names.
type PlayerConfig struct {
	One string `json:"one" env:"SQUARES_PLAYER_ONE"`
	Two string `json:"two" env:"SQUARES_PLAYER_TWO"`
}

type Config struct {
	Theme    Theme          `json:"theme"`
	Snapshot SnapshotConfig `json:"snapshot"`
	Players  PlayerConfig   `json:"players"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyEnv overrides file settings with SQUARES_* environment variables.
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Dot, c.Theme.Symbols.Idle} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	colors := c.Theme.Colors
	for _, color := range []int{colors.BoardColor, colors.DotColor, colors.LineColor, colors.IdleColor,
		colors.HighlightColor, colors.PlayerOne, colors.PlayerTwo} {
		if color < 0 || color > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", color)}
		}
	}
	if c.Theme.Layout.UnitWidth < MinUnitSize || c.Theme.Layout.UnitHeight < MinUnitSize {
		return &InvalidConfig{fmt.Sprintf("layout unit size must be at least %dx%d, got %dx%d",
			MinUnitSize, MinUnitSize, c.Theme.Layout.UnitWidth, c.Theme.Layout.UnitHeight)}
	}
	if c.Snapshot.UnitPixels < 10 {
		return &InvalidConfig{fmt.Sprintf("snapshot unit_pixels must be at least 10, got %d", c.Snapshot.UnitPixels)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// SnapshotDir returns the directory PNG snapshots are written to.
func (c *Config) SnapshotDir() string {
	if c.Snapshot.Dir != "" {
		return c.Snapshot.Dir
	}
	return filepath.Join(xdg.DataHome, "squares", "snapshots")
}

// DebugLogPath returns the path of the debug log, creating its directory.
func DebugLogPath() (string, error) {
	return xdg.StateFile(debugLogFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
