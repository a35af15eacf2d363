// Package config loads the editor's TOML configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds nodegraph configuration.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	Terminal TerminalConfig `toml:"terminal"`
	Log      LogConfig      `toml:"log"`
}

// EditorConfig tunes the interaction core.
type EditorConfig struct {
	ZoomSpeed    float64    `toml:"zoom_speed"`
	HistoryDepth int        `toml:"history_depth"`
	HistoryChunk int        `toml:"history_chunk"`
	PasteOffset  [2]float64 `toml:"paste_offset"`
	Debug        bool       `toml:"debug"`
}

// TerminalConfig sets how many screen pixels one terminal cell covers.
type TerminalConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// LogConfig controls the log sink. An empty File discards logs.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			ZoomSpeed:    1,
			HistoryDepth: 128,
			HistoryChunk: 12,
			PasteOffset:  [2]float64{30, 30},
		},
		Terminal: TerminalConfig{CellWidth: 8, CellHeight: 16},
		Log:      LogConfig{Level: "info"},
	}
}

// Dir returns the nodegraph config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nodegraph")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path, or DefaultPath when path is empty. A
// missing default file yields the defaults; a missing explicit file is an
// error. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes a TOML document over the defaults and validates it.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the editor cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Editor.ZoomSpeed <= 0:
		return fmt.Errorf("editor.zoom_speed must be positive, got %g", c.Editor.ZoomSpeed)
	case c.Editor.HistoryDepth <= 0:
		return fmt.Errorf("editor.history_depth must be positive, got %d", c.Editor.HistoryDepth)
	case c.Editor.HistoryChunk <= 0 || c.Editor.HistoryChunk >= c.Editor.HistoryDepth:
		return fmt.Errorf("editor.history_chunk must be in [1, %d), got %d", c.Editor.HistoryDepth, c.Editor.HistoryChunk)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell metrics must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// Write encodes the config as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
