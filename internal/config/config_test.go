package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultTetrisConfig().Validate())
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultTetrisYAML, "embedded")
	require.NoError(t, err)

	def := DefaultTetrisConfig()
	assert.Equal(t, def.Keys, cfg.Keys)
	assert.Equal(t, def.Theme, cfg.Theme)
	assert.Equal(t, def.Storage, cfg.Storage)
	assert.Equal(t, def.Log, cfg.Log)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("keys:\n  left: [a, h]\n"), "test.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "h"}, cfg.Keys.Left)
	assert.Equal(t, []string{"right"}, cfg.Keys.Right)
	assert.Equal(t, DefaultPalette(), cfg.Theme.Palette)
	assert.Equal(t, "test.yaml", cfg.Source)
}

func TestParsePaletteMerges(t *testing.T) {
	cfg, err := Parse([]byte("theme:\n  palette:\n    cyan: \"14\"\n"), "test.yaml")
	require.NoError(t, err)

	assert.Equal(t, "14", cfg.Theme.Palette["cyan"])
	assert.Equal(t, "#ffd700", cfg.Theme.Palette["yellow"])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "keys: [", "failed to parse"},
		{"duplicate key", "keys:\n  left: [r]\n", "bound to both"},
		{"unbound action", "keys:\n  quit: []\n", "no key bound to Quit"},
		{"blank key", "keys:\n  help: [\"\"]\n", "empty key name"},
		{"unknown color", "theme:\n  palette:\n    pink: \"#fff\"\n", "unknown color"},
		{"unknown level", "log:\n  level: loud\n", "unknown level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "bad.yaml")
		})
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := map[core.Action]bool{}
	for _, b := range DefaultTetrisConfig().Keys.Bindings() {
		seen[b.Action] = true
	}
	for _, a := range []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionSoftDrop, core.ActionRotate,
		core.ActionStart, core.ActionRestart, core.ActionQuit, core.ActionScreenshot, core.ActionHelp,
	} {
		assert.Truef(t, seen[a], "no binding for %s", a)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded defaults", cfg.Source)

	local := filepath.Join(work, "configs", "tetris.yaml")
	writeFile(t, local, "log:\n  level: debug\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	user := filepath.Join(home, ".tetris", "config.yaml")
	writeFile(t, user, "log:\n  level: warn\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, user, cfg.Source)
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".tetris", "config.yaml"), "keys: [")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded defaults", cfg.Source)
}

func TestLoadCustomPath(t *testing.T) {
	_, work := isolate(t)

	_, err := Load(filepath.Join(work, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")

	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "storage:\n  db_path: /tmp/x.db\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.DBPath)

	writeFile(t, path, "keys:\n  quit: []\n")
	_, err = Load(path)
	assert.Error(t, err, "an explicit path is never silently skipped")
}

func TestExpandPath(t *testing.T) {
	home, _ := isolate(t)

	assert.Equal(t, filepath.Join(home, ".tetris", "scores.db"), ExpandPath("~/.tetris/scores.db"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/var/x", ExpandPath("/var/x"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
	assert.Equal(t, filepath.Join(home, ".tetris"), HomeDir())
}
