package tetris

// Event is raised by the engine toward its collaborators.
type Event interface {
	isEvent()
}

// ScoreChanged is raised whenever the score increases.
type ScoreChanged struct {
	Score     int
	HighScore int
}

// GameOver is raised once, when a new piece cannot be placed.
// The high score has already been handed to the HighScoreStore.
type GameOver struct {
	FinalScore int
	HighScore  int
	Lines      int
}

// Started is raised by Start and Restart after the first piece spawns.
type Started struct {
	HighScore int
}

// LinesCleared is raised after a lock removes one or more rows.
type LinesCleared struct {
	Count  int
	Points int
}

func (ScoreChanged) isEvent() {}
func (GameOver) isEvent()     {}
func (Started) isEvent()      {}
func (LinesCleared) isEvent() {}

// Listener receives engine events synchronously, inside the command that
// produced them. Listeners must not call back into the engine.
type Listener func(Event)
