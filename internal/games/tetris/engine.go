// Package tetris implements the falling-block game engine: grid, pieces,
// collision checks, line clears, scoring and the spawn/move/lock state
// machine. It has no terminal or storage dependencies; collaborators drive
// it through commands and read it through queries and events.
package tetris

import (
	"math/rand"
	"time"
)

// GravityInterval is the cadence at which the scheduler should call Tick.
const GravityInterval = 800 * time.Millisecond

// RandomSource picks piece types. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Scheduler arms and disarms the periodic gravity tick. The engine only
// asks; whoever implements it owns the actual timer.
type Scheduler interface {
	Schedule(interval time.Duration)
	Cancel()
}

// HighScoreStore persists the best score between runs.
// LoadHighScore returns 0 when nothing usable is stored.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Options configures a new Engine. Nil fields get inert defaults.
type Options struct {
	Rand       RandomSource
	Scheduler  Scheduler
	HighScores HighScoreStore
}

// Engine is the game state machine. It is not safe for concurrent use;
// every command runs to completion before the next one starts.
type Engine struct {
	grid    Grid
	current *Piece

	score     int
	highScore int
	lines     int
	gameOver  bool
	started   bool

	rng       RandomSource
	scheduler Scheduler
	store     HighScoreStore
	listeners []Listener
}

// New creates an engine with an empty grid. The game does not begin until
// Start or Restart is called.
func New(opts Options) *Engine {
	e := &Engine{
		grid:      NewGrid(),
		rng:       opts.Rand,
		scheduler: opts.Scheduler,
		store:     opts.HighScores,
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.scheduler == nil {
		e.scheduler = nopScheduler{}
	}
	if e.store == nil {
		e.store = nopStore{}
	}
	e.highScore = max(0, e.store.LoadHighScore())
	return e
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}

// Start begins a game if none is in progress. It reports whether a new
// game was started.
func (e *Engine) Start() bool {
	if e.started && !e.gameOver {
		return false
	}
	e.Restart()
	return true
}

// Restart throws away the current game and begins a new one. It may be
// called at any time.
func (e *Engine) Restart() {
	e.scheduler.Cancel()

	e.grid = NewGrid()
	e.current = nil
	e.score = 0
	e.lines = 0
	e.gameOver = false
	e.started = true
	e.highScore = max(e.highScore, e.store.LoadHighScore())

	e.spawn()
	if e.gameOver {
		return
	}
	e.emit(Started{HighScore: e.highScore})
	e.scheduler.Schedule(GravityInterval)
}

// spawn installs a random piece at the top center, or ends the game if
// that spot is already blocked.
func (e *Engine) spawn() {
	t := Type(e.rng.Intn(TypeCount) + 1)
	shape := TemplateFor(t)
	p := &Piece{
		Shape: shape,
		X:     SpawnX(shape.Width()),
		Y:     0,
		Type:  t,
	}

	if e.grid.Collides(p.Shape, p.X, p.Y) {
		e.endGame()
		return
	}
	e.current = p
}

func (e *Engine) endGame() {
	e.gameOver = true
	e.current = nil
	e.scheduler.Cancel()
	e.store.SaveHighScore(e.highScore)
	e.emit(GameOver{FinalScore: e.score, HighScore: e.highScore, Lines: e.lines})
}

func (e *Engine) active() bool {
	return !e.gameOver && e.current != nil
}

// Move shifts the current piece by (dx, dy) if the destination is free.
// Each row of downward movement scores SoftDropPoints. It returns false
// when the move was blocked or there is nothing to move; a blocked move
// changes nothing.
func (e *Engine) Move(dx, dy int) bool {
	if !e.active() {
		return false
	}
	p := e.current
	if e.grid.Collides(p.Shape, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	if dy > 0 {
		e.addScore(DropScore(dy))
	}
	return true
}

// MoveLeft shifts the current piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.Move(-1, 0)
}

// MoveRight shifts the current piece one column right.
func (e *Engine) MoveRight() bool {
	return e.Move(1, 0)
}

// SoftDrop moves the current piece down one row. If it cannot move, the
// piece locks, exactly as on a gravity tick, and false is returned.
func (e *Engine) SoftDrop() bool {
	return e.fall()
}

// Tick applies one step of gravity.
func (e *Engine) Tick() {
	e.fall()
}

func (e *Engine) fall() bool {
	if !e.active() {
		return false
	}
	if e.Move(0, 1) {
		return true
	}
	e.lock()
	return false
}

// Rotate turns the current piece clockwise in place. The rotation is
// rejected, leaving the piece untouched, if the turned shape would collide.
// There is no wall kick.
func (e *Engine) Rotate() bool {
	if !e.active() {
		return false
	}
	p := e.current
	rotated := p.Shape.Rotate()
	if e.grid.Collides(rotated, p.X, p.Y) {
		return false
	}
	p.Shape = rotated
	return true
}

// lock commits the current piece to the grid, clears full rows, scores
// them and spawns the next piece.
func (e *Engine) lock() {
	if e.current == nil {
		return
	}
	e.grid.Lock(*e.current)

	n := e.grid.ClearLines()
	if n > 0 {
		e.lines += n
		points := LineClearScore(n)
		e.emit(LinesCleared{Count: n, Points: points})
		e.addScore(points)
	}

	e.current = nil
	e.spawn()
}

func (e *Engine) addScore(points int) {
	if points <= 0 {
		return
	}
	e.score += points
	e.highScore = max(e.highScore, e.score)
	e.emit(ScoreChanged{Score: e.score, HighScore: e.highScore})
}

// Grid returns a copy of the locked cells.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}

// Current returns a copy of the falling piece. ok is false when there is
// none (before the first start and after game over).
func (e *Engine) Current() (p Piece, ok bool) {
	if e.current == nil {
		return Piece{}, false
	}
	return e.current.Clone(), true
}

// Score returns the current game's score.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score seen by this engine or its store.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Lines returns the number of rows cleared in the current game.
func (e *Engine) Lines() int {
	return e.lines
}

// GameOver reports whether the current game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Started reports whether a game has ever been started.
func (e *Engine) Started() bool {
	return e.started
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Cancel() {}

type nopStore struct{}

func (nopStore) LoadHighScore() int { return 0 }
func (nopStore) SaveHighScore(int) {}
