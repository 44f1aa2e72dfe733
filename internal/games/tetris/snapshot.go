package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle     GameStateType = "idle"
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// never affects the engine.
type Snapshot struct {
	Grid      Grid
	Piece     *Piece // nil when no piece is falling
	Score     int
	HighScore int
	Lines     int
	State     GameStateType
}

// Snapshot returns the current state. Engines fed the same random sequence
// and commands produce equal snapshots.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case e.gameOver:
		state = StateGameOver
	case !e.started:
		state = StateIdle
	}

	var piece *Piece
	if p, ok := e.Current(); ok {
		piece = &p
	}

	return Snapshot{
		Grid:      e.Grid(),
		Piece:     piece,
		Score:     e.score,
		HighScore: e.highScore,
		Lines:     e.lines,
		State:     state,
	}
}

// CellAt returns what a renderer should show at (row, col): the falling
// piece if it covers that cell, otherwise the locked grid value.
func (s Snapshot) CellAt(row, col int) Type {
	if p := s.Piece; p != nil {
		r, c := row-p.Y, col-p.X
		if r >= 0 && r < p.Shape.Height() && c >= 0 && c < p.Shape.Width() {
			if t := p.Shape[r][c]; t != Empty {
				return t
			}
		}
	}
	if row < 0 || row >= len(s.Grid) || col < 0 || col >= len(s.Grid[row]) {
		return Empty
	}
	return s.Grid[row][col]
}
