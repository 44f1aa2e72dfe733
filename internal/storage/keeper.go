package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreKeeper adapts a Store to the engine's high-score interface for
// one game. Failures are logged and never reach the game: a load error
// reads as 0 and a save error is dropped. A nil store disables persistence.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScoreKeeper creates a keeper. logger may be nil.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreKeeper{store: store, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored best, or 0 if it cannot be read.
func (k *HighScoreKeeper) LoadHighScore() int {
	if k.store == nil {
		return 0
	}
	score, err := k.store.HighScore(k.gameID)
	if err != nil {
		k.logger.Warn("cannot load high score", "game", k.gameID, "err", err)
		return 0
	}
	return max(0, score)
}

// SaveHighScore persists score if it beats the stored best.
func (k *HighScoreKeeper) SaveHighScore(score int) {
	if k.store == nil {
		return
	}
	if err := k.store.SaveHighScore(k.gameID, score); err != nil {
		k.logger.Warn("cannot save high score", "game", k.gameID, "score", score, "err", err)
		return
	}
	k.logger.Debug("high score saved", "game", k.gameID, "score", score)
}

// RecordGame stores a finished game in the history.
func (k *HighScoreKeeper) RecordGame(score, lines int) {
	if k.store == nil {
		return
	}
	if _, err := k.store.SaveScore(k.gameID, score, lines); err != nil {
		k.logger.Warn("cannot save score", "game", k.gameID, "score", score, "err", err)
	}
}
