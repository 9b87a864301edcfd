package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - start a fresh run
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource yields the input events collected since the last poll.
// Poll must not block; it returns nil when nothing happened.
type InputSource interface {
	Poll() []Action
}

// InputQueue buffers actions in arrival order until the next tick polls them.
// The zero value is ready to use.
type InputQueue struct {
	actions []Action
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an action. ActionNone is dropped.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.actions = append(q.actions, a)
}

// Poll drains the queue and returns the buffered actions in order.
func (q *InputQueue) Poll() []Action {
	if len(q.actions) == 0 {
		return nil
	}
	out := q.actions
	q.actions = nil
	return out
}

// Len returns the number of buffered actions.
func (q *InputQueue) Len() int {
	return len(q.actions)
}

// ScriptedInput replays a fixed list of per-tick actions.
// Tick i receives Frames[i]; ticks beyond the script receive nothing.
type ScriptedInput struct {
	Frames [][]Action
	next   int
}

// Poll returns the next scripted frame.
func (s *ScriptedInput) Poll() []Action {
	if s.next >= len(s.Frames) {
		return nil
	}
	frame := s.Frames[s.next]
	s.next++
	return frame
}
