package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultPalette returns the stock block colors.
func DefaultPalette() map[string]string {
	return map[string]string{
		"cyan":    "#00f5ff",
		"yellow":  "#ffd700",
		"magenta": "#9d4edd",
		"green":   "#2dc653",
		"red":     "#e63946",
		"blue":    "#4361ee",
		"orange":  "#f77f00",
		"white":   "#f8f9fa",
		"gray":    "#4a4e69",
	}
}

// DefaultTetrisConfig returns the built-in configuration. It is also the
// base every loaded file is merged onto.
func DefaultTetrisConfig() Config {
	return Config{
		Keys: KeysConfig{
			Left:       []string{"left"},
			Right:      []string{"right"},
			Down:       []string{"down"},
			Rotate:     []string{"up"},
			Start:      []string{"enter"},
			Restart:    []string{"r", "R"},
			Quit:       []string{"q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
			Help:       []string{"?"},
		},
		Theme: ThemeConfig{
			Palette: DefaultPalette(),
		},
		Storage: StorageConfig{
			DBPath: "~/.tetris/scores.db",
		},
		Log: LogConfig{
			File:  "~/.tetris/tetris.log",
			Level: "info",
		},
		Source: "built-in defaults",
	}
}
