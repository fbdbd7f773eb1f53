// Package tui hosts the platformer in a terminal with Bubble Tea: tick
// scheduling, key holding, world rendering, the level menu, the
// scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Generation ties it to the session
// epoch that scheduled it; ticks from an older epoch are dropped.
type TickMsg struct {
	Generation uint64
	Time       time.Time
}

// tickCmd schedules the next tick for the given epoch.
func tickCmd(tickRate int, generation uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Generation: generation, Time: t}
	})
}
