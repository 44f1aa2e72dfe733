// Package config provides YAML-based configuration loading for the game:
// key bindings, the color palette, storage and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Config is the full application configuration.
type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Source names where the configuration was read from.
	Source string `yaml:"-"`
}

// KeysConfig lists the key names bound to each action, in the notation
// Bubble Tea uses for key messages ("left", "enter", "ctrl+c", "r").
type KeysConfig struct {
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Down       []string `yaml:"down"`
	Rotate     []string `yaml:"rotate"`
	Start      []string `yaml:"start"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
	Help       []string `yaml:"help"`
}

// Binding pairs an action with its keys.
type Binding struct {
	Action core.Action
	Keys   []string
}

// Bindings returns every binding in a stable order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
		{core.ActionSoftDrop, k.Down},
		{core.ActionRotate, k.Rotate},
		{core.ActionStart, k.Start},
		{core.ActionRestart, k.Restart},
		{core.ActionQuit, k.Quit},
		{core.ActionScreenshot, k.Screenshot},
		{core.ActionHelp, k.Help},
	}
}

// ThemeConfig maps color names ("cyan", "orange", ...) to terminal colors
// in any form lipgloss accepts: "#00f5ff", "14", "201".
type ThemeConfig struct {
	Palette map[string]string `yaml:"palette"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // empty disables persistence
}

// LogConfig controls the application log.
type LogConfig struct {
	File  string `yaml:"file"`  // empty discards log output
	Level string `yaml:"level"` // debug, info, warn, error
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that every action has at least one key, that no key is
// bound twice, and that theme and log settings are recognised.
func (c Config) Validate() error {
	var errs []error

	owner := map[string]core.Action{}
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", b.Action))
			continue
		}
		for _, k := range b.Keys {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Errorf("keys: empty key name for %s", b.Action))
				continue
			}
			if prev, ok := owner[k]; ok {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, b.Action))
				continue
			}
			owner[k] = b.Action
		}
	}

	for name, value := range c.Theme.Palette {
		if _, ok := core.ColorByName(name); !ok {
			errs = append(errs, fmt.Errorf("theme: unknown color %q", name))
		}
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("theme: empty value for %q", name))
		}
	}

	level := strings.ToLower(c.Log.Level)
	if level != "" && !contains(logLevels, level) {
		errs = append(errs, fmt.Errorf("log: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// HomeDir returns the per-user data directory, ~/.tetris, or "" if the
// home directory is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris")
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
