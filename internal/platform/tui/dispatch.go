package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// dispatch applies a game action to the engine. Start only begins a game
// when none is running, Restart only works after game over, and piece
// movement is ignored unless a game is in progress. Platform actions
// (quit, screenshot, help) are handled by the caller. It reports whether
// the action was accepted.
func dispatch(e *tetris.Engine, a core.Action) bool {
	switch a {
	case core.ActionStart:
		return e.Start()
	case core.ActionRestart:
		if !e.GameOver() {
			return false
		}
		e.Restart()
		return true
	}

	if !e.Started() || e.GameOver() {
		return false
	}
	switch a {
	case core.ActionLeft:
		return e.MoveLeft()
	case core.ActionRight:
		return e.MoveRight()
	case core.ActionSoftDrop:
		e.SoftDrop()
		return true
	case core.ActionRotate:
		return e.Rotate()
	}
	return false
}
