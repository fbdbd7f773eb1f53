package core

// Input holds the three movement signals sampled once per tick.
// The simulation does not care whether they come from a keyboard,
// a touch surface or a network peer.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// Idle reports whether no signal is held.
func (in Input) Idle() bool {
	return !in.MoveLeft && !in.MoveRight && !in.Jump
}

// Action represents a semantic host action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, h
	ActionRight          // D, Right arrow, l
	ActionJump           // Space, W, Up arrow, k
	ActionPause          // P, Escape
	ActionConfirm        // Enter - start / restart
	ActionBack           // B - back to level menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// HeldInput turns discrete key presses into held signals.
// Terminals only report presses (plus auto-repeat), never releases, so a
// press keeps its signal alive for a fixed number of ticks.
type HeldInput struct {
	holdTicks int
	left      int
	right     int
	jump      int
}

// NewHeldInput creates a tracker that holds each press for holdTicks ticks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldInput{holdTicks: holdTicks}
}

// Press registers a key press for the given action.
// Pressing a direction releases the opposite one.
func (h *HeldInput) Press(a Action) {
	switch a {
	case ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case ActionRight:
		h.right = h.holdTicks
		h.left = 0
	case ActionJump:
		h.jump = h.holdTicks
	}
}

// Sample returns the current signals and ages the holds by one tick.
func (h *HeldInput) Sample() Input {
	in := Input{
		MoveLeft:  h.left > 0,
		MoveRight: h.right > 0,
		Jump:      h.jump > 0,
	}
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	if h.jump > 0 {
		h.jump--
	}
	return in
}

// Release drops every held signal.
func (h *HeldInput) Release() {
	h.left, h.right, h.jump = 0, 0, 0
}
