// Package scores keeps the per-game best and last scores.
//
// Persistence is best effort: a failing store is logged and otherwise
// ignored, so games never observe storage errors.
package scores

import (
	"github.com/charmbracelet/log"
)

// KV is the key-value store scores are persisted in.
type KV interface {
	Get(key string) (int, bool, error)
	Set(key string, value int) error
}

// Persisted key suffixes per game ID.
var keyNames = map[string]string{
	"2048":   "2048",
	"tetris": "Tetris",
	"snake":  "Snake",
}

// BestKey returns the key holding the best score for a game ID.
func BestKey(gameID string) string {
	return "bestScore" + keyName(gameID)
}

// LastKey returns the key holding the most recent score for a game ID.
func LastKey(gameID string) string {
	return "lastScore" + keyName(gameID)
}

func keyName(gameID string) string {
	if name, ok := keyNames[gameID]; ok {
		return name
	}
	return gameID
}

// Keeper records scores into a KV store.
type Keeper struct {
	kv     KV
	logger *log.Logger
}

// NewKeeper creates a keeper. A nil kv makes every call a no-op.
func NewKeeper(kv KV, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{kv: kv, logger: logger}
}

// Record stores score as the last score and raises the best score if
// score beats it.
func (k *Keeper) Record(gameID string, score int) {
	if k == nil || k.kv == nil {
		return
	}

	if err := k.kv.Set(LastKey(gameID), score); err != nil {
		k.logger.Warn("cannot save last score", "game", gameID, "err", err)
	}

	best, ok, err := k.kv.Get(BestKey(gameID))
	if err != nil {
		// Without the current best we cannot tell whether score beats it.
		k.logger.Warn("cannot read best score", "game", gameID, "err", err)
		return
	}
	if ok && score <= best {
		return
	}
	if err := k.kv.Set(BestKey(gameID), score); err != nil {
		k.logger.Warn("cannot save best score", "game", gameID, "err", err)
	}
}

// Best returns the best score, or false when none is stored or the store failed.
func (k *Keeper) Best(gameID string) (int, bool) {
	return k.get(BestKey(gameID))
}

// Last returns the last recorded score, or false when none is stored.
func (k *Keeper) Last(gameID string) (int, bool) {
	return k.get(LastKey(gameID))
}

func (k *Keeper) get(key string) (int, bool) {
	if k == nil || k.kv == nil {
		return 0, false
	}
	v, ok, err := k.kv.Get(key)
	if err != nil {
		k.logger.Warn("cannot read score", "key", key, "err", err)
		return 0, false
	}
	return v, ok
}
