package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// hud receives session updates from the state machine. It keeps the latest
// status for drawing and records finished runs.
type hud struct {
	store  *storage.Store
	player string
	logger *log.Logger

	status game.Status
	result *game.Result
}

var _ game.Notifier = (*hud)(nil)

func (h *hud) StatusChanged(s game.Status) {
	h.status = s
}

func (h *hud) SessionEnded(r game.Result) {
	h.result = &r
	h.logger.Info("session ended",
		"level", r.LevelID,
		"player", h.player,
		"won", r.Won,
		"score", r.Score,
		"record", r.NewRecord,
	)
	if h.store == nil {
		return
	}
	_, err := h.store.SaveRun(storage.RunEntry{
		LevelID:  r.LevelID,
		Player:   h.player,
		Score:    r.Score,
		Won:      r.Won,
		Coins:    r.CoinsCollected,
		Kills:    r.EnemiesKilled,
		TimeLeft: r.TimeLeft,
	})
	if err != nil {
		h.logger.Warn("could not save run", "level", r.LevelID, "error", err)
	}
}

// reset forgets the previous session's result.
func (h *hud) reset() {
	h.result = nil
}
