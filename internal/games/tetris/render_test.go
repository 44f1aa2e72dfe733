package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func renderSnapshot(s Snapshot) *core.Screen {
	dst := core.NewScreen(MinScreenW, MinScreenH)
	Render(s, dst)
	return dst
}

// cellPos maps a grid cell to its left screen column on a minimum-size screen.
func cellPos(row, col int) (x, y int) {
	return 1 + col*cellWidth, 1 + row
}

func TestRenderIdleOverlay(t *testing.T) {
	h := newHarness()
	out := renderSnapshot(h.Snapshot()).String()

	assert.Contains(t, out, "Press Enter")
	assert.Contains(t, out, "to Start")
	assert.NotContains(t, out, "GAME OVER")
	assert.Contains(t, out, "T E T R I S")
}

func TestRenderPlayingHasNoOverlay(t *testing.T) {
	h := newHarness(O)
	h.Start()
	out := renderSnapshot(h.Snapshot()).String()

	assert.NotContains(t, out, "Press Enter")
	assert.NotContains(t, out, "GAME OVER")
}

func TestRenderGameOverOverlay(t *testing.T) {
	h := newHarness(O)
	h.Start()
	blockSpawn(h)
	require.True(t, h.GameOver())

	out := renderSnapshot(h.Snapshot()).String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press R")
	assert.Contains(t, out, "to Restart")
}

func TestRenderBlocksUseTypeColor(t *testing.T) {
	h := newHarness(O)
	h.Start()
	h.grid[Rows-1][0] = L

	dst := renderSnapshot(h.Snapshot())

	x, y := cellPos(Rows-1, 0)
	assert.Equal(t, core.Cell{Rune: '█', Color: L.Color()}, dst.GetCell(x, y))
	assert.Equal(t, core.Cell{Rune: '█', Color: L.Color()}, dst.GetCell(x+1, y))

	// Falling O spawns at column 4.
	x, y = cellPos(0, 4)
	assert.Equal(t, O.Color(), dst.GetCell(x, y).Color)
	assert.Equal(t, '█', dst.GetCell(x, y).Rune)

	// Empty cells show a dot in the right half.
	x, y = cellPos(5, 0)
	assert.Equal(t, '·', dst.GetCell(x+1, y).Rune)
}

func TestRenderHUDValues(t *testing.T) {
	h := newHarness(O)
	h.store.stored = 4321
	h.Start()
	h.SoftDrop()
	h.SoftDrop()

	screen := renderSnapshot(h.Snapshot())
	out := screen.String()
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "Best")

	hud := func(y int) string {
		return strings.TrimSpace(string([]rune(screen.Row(y))[wellW+hudGap:]))
	}
	assert.Equal(t, "2", hud(3))
	assert.Equal(t, "4321", hud(6))
}

func TestRenderWellBorder(t *testing.T) {
	dst := renderSnapshot(newHarness().Snapshot())

	assert.Equal(t, '┌', dst.Get(0, 0))
	assert.Equal(t, '┘', dst.Get(wellW-1, wellH-1))
	assert.Equal(t, core.ColorGray, dst.GetCell(0, 5).Color)
}

func TestRenderTooSmall(t *testing.T) {
	dst := core.NewScreen(20, 10)
	Render(newHarness().Snapshot(), dst)

	out := dst.String()
	assert.Contains(t, out, "Window too small")
	assert.Contains(t, out, "Need 38x22")
}

func TestRenderCentersOnLargeScreen(t *testing.T) {
	dst := core.NewScreen(MinScreenW+10, MinScreenH+4)
	Render(newHarness().Snapshot(), dst)

	assert.Equal(t, '┌', dst.Get(5, 2))
}
