package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameID is the key scores are stored under.
const GameID = "tetris"

// Options configures the game model. Zero values get working defaults.
type Options struct {
	Keys          *KeyMap
	Theme         config.ThemeConfig
	Store         *storage.Store // nil plays without persistence
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.tetris/screenshots
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	engine   *tetris.Engine
	timer    *gravityTimer
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	renderer *Renderer
	keeper   *storage.HighScoreKeeper
	logger   *log.Logger
	config   core.RuntimeConfig
	shotDir  string
	status   string // one-line notice under the help bar
	quitting bool
}

// NewModel creates a game model. The game waits for the start key.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(config.HomeDir(), "screenshots")
	}

	timer := &gravityTimer{}
	keeper := storage.NewHighScoreKeeper(opts.Store, GameID, logger)
	engine := tetris.New(tetris.Options{
		Rand:       rand.New(rand.NewSource(cfg.Seed)),
		Scheduler:  timer,
		HighScores: keeper,
	})

	m := Model{
		engine:   engine,
		timer:    timer,
		keys:     keys,
		help:     help.New(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(opts.Theme),
		keeper:   keeper,
		logger:   logger,
		config:   cfg,
		shotDir:  shotDir,
	}
	m.help.Width = cfg.ScreenW
	engine.Subscribe(m.onEvent)
	return m
}

// onEvent logs engine events and records finished games.
func (m Model) onEvent(ev tetris.Event) {
	switch ev := ev.(type) {
	case tetris.Started:
		m.logger.Info("game started", "best", ev.HighScore)
	case tetris.LinesCleared:
		m.logger.Debug("lines cleared", "count", ev.Count, "points", ev.Points)
	case tetris.GameOver:
		m.logger.Info("game over", "score", ev.FinalScore, "lines", ev.Lines, "best", ev.HighScore)
		if ev.FinalScore > 0 {
			m.keeper.RecordGame(ev.FinalScore, ev.Lines)
		}
	}
}

// Engine exposes the running engine.
func (m Model) Engine() *tetris.Engine {
	return m.engine
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case gravityMsg:
		return m.handleGravity(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Recognised keys stop here; nothing
// else sees them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.timer.Cancel()
		if m.engine.Started() {
			m.keeper.SaveHighScore(m.engine.HighScore())
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + path
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:

	default:
		if dispatch(m.engine, action) && !action.IsMovement() {
			m.status = ""
		}
	}

	return m, m.timer.Cmd()
}

// handleGravity runs one engine tick for a live timer message and chains
// the next one.
func (m Model) handleGravity(msg gravityMsg) (tea.Model, tea.Cmd) {
	if !m.timer.live(msg) {
		return m, nil
	}
	m.engine.Tick()

	if cmd := m.timer.Cmd(); cmd != nil {
		return m, cmd
	}
	if m.timer.live(msg) {
		return m, m.timer.next()
	}
	return m, nil
}

// saveScreenshot saves the current board to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	tetris.Render(m.engine.Snapshot(), m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", m.shotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "\n" + m.status
	}
	footerH := strings.Count(footer, "\n") + 1

	m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-footerH))
	tetris.Render(m.engine.Snapshot(), m.screen)

	return m.renderer.Render(m.screen) + "\n" + statusStyle.Render(footer)
}

// Run starts a game session and blocks until the player quits.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
