package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // terminal columns per grid cell, keeps cells roughly square
	hudWidth  = 14
	hudGap    = 2

	wellW = Cols*cellWidth + 2 // inner width plus borders
	wellH = Rows + 2

	// MinScreenW and MinScreenH are the smallest terminal that fits the
	// well and the side panel.
	MinScreenW = wellW + hudGap + hudWidth
	MinScreenH = wellH
)

// Render draws the snapshot into dst. dst is cleared first.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	well := core.NewRect(
		(dst.Width()-MinScreenW)/2,
		(dst.Height()-MinScreenH)/2,
		wellW,
		wellH,
	)

	renderWell(s, dst, well)
	renderHUD(s, dst, well.Right()+hudGap, well.Y)
	renderOverlay(s, dst, well)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func renderWell(s Snapshot, dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)

	inner := well.Inset(1)
	for row := range Rows {
		for col := range Cols {
			x := inner.X + col*cellWidth
			y := inner.Y + row

			t := s.CellAt(row, col)
			if t == Empty {
				dst.SetCell(x+1, y, core.Cell{Rune: '·', Color: core.ColorGray})
				continue
			}
			block := core.Cell{Rune: '█', Color: t.Color()}
			dst.SetCell(x, y, block)
			dst.SetCell(x+1, y, block)
		}
	}
}

func renderHUD(s Snapshot, dst *core.Screen, x, y int) {
	dst.DrawTextColor(x, y, "T E T R I S", core.ColorCyan)

	line := y + 2
	for _, stat := range []struct {
		label string
		value int
	}{
		{"Score", s.Score},
		{"Best", s.HighScore},
		{"Lines", s.Lines},
	} {
		dst.DrawTextColor(x, line, stat.label, core.ColorGray)
		dst.DrawText(x, line+1, strconv.Itoa(stat.value))
		line += 3
	}
}

func renderOverlay(s Snapshot, dst *core.Screen, well core.Rect) {
	var lines []string
	switch s.State {
	case StateIdle:
		lines = []string{"Press Enter", "to Start"}
	case StateGameOver:
		lines = []string{"GAME OVER", "", "Press R", "to Restart"}
	default:
		return
	}

	inner := well.Inset(1)
	top := inner.Y + (inner.H-len(lines))/2 - 1
	band := core.NewRect(inner.X, top, inner.W, len(lines)+2)
	dst.DrawRect(band, core.Cell{Rune: ' '})

	for i, text := range lines {
		x := inner.X + (inner.W-len(text))/2
		dst.DrawTextColor(x, top+1+i, text, core.ColorWhite)
	}
}
