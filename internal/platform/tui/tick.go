// Package tui provides the Bubble Tea front end: key mapping, the gravity
// timer, screen rendering, the game model, the menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gravityMsg is one gravity tick. gen identifies the schedule it belongs to.
type gravityMsg struct {
	gen uint64
}

// gravityTimer is the engine's Scheduler on top of tea.Tick. Bubble Tea
// timers cannot be stopped, so cancellation works by generation: every
// Schedule starts a new generation and ticks from an older one, or any tick
// after Cancel, are dropped on arrival.
type gravityTimer struct {
	gen      uint64
	interval time.Duration
	armed    bool
	pending  bool // a new schedule still needs its first tick command
}

// Schedule starts a new tick chain at the given interval.
func (t *gravityTimer) Schedule(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.armed = true
	t.pending = true
}

// Cancel stops the current chain. Calling it again is harmless.
func (t *gravityTimer) Cancel() {
	t.armed = false
	t.pending = false
}

// Cmd returns the first tick of a schedule made since the last call, or nil.
func (t *gravityTimer) Cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.next()
}

// live reports whether msg belongs to the running chain.
func (t *gravityTimer) live(msg gravityMsg) bool {
	return t.armed && msg.gen == t.gen
}

func (t *gravityTimer) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return gravityMsg{gen: gen}
	})
}
