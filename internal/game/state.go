// Package game owns the session lifecycle of the platformer: menu,
// playing, paused and ended. It drives the physics engine from a single
// tick loop, folds physics events into score and lives, and runs the
// one-second countdown from accumulated tick time.
package game

// State is the lifecycle state of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how an ended session finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Session holds the counters of one play-through.
type Session struct {
	Score          int
	Lives          int
	TimeLeft       int // seconds
	CoinsCollected int
	TotalCoins     int
	EnemiesKilled  int
}

// Status is the HUD view of a session.
type Status struct {
	Score          int
	TimeLeft       int
	Lives          int
	CoinsCollected int
	TotalCoins     int
}

// Result describes a finished session.
type Result struct {
	LevelID        string
	Won            bool
	Score          int
	CoinsCollected int
	EnemiesKilled  int
	TimeLeft       int
	BestScore      int
	NewRecord      bool
}

// Notifier receives session updates for display.
type Notifier interface {
	StatusChanged(Status)
	SessionEnded(Result)
}

// BestScores persists the best score per level.
type BestScores interface {
	BestScore(levelID string) (int, error)
	SetBestScore(levelID string, score int) error
}

func (s Session) status() Status {
	return Status{
		Score:          s.Score,
		TimeLeft:       s.TimeLeft,
		Lives:          s.Lives,
		CoinsCollected: s.CoinsCollected,
		TotalCoins:     s.TotalCoins,
	}
}
