package core

import "testing"

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(ActionUp)
	q.Push(ActionNone) // dropped
	q.Push(ActionLeft)
	q.Push(ActionQuit)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	got := q.Poll()
	expected := []Action{ActionUp, ActionLeft, ActionQuit}
	if len(got) != len(expected) {
		t.Fatalf("Poll() returned %d actions, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Poll()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be drained after Poll, has %d", q.Len())
	}
	if again := q.Poll(); again != nil {
		t.Errorf("second Poll() = %v, expected nil", again)
	}
}

func TestInputQueueZeroValue(t *testing.T) {
	var q InputQueue
	q.Push(ActionPause)
	if got := q.Poll(); len(got) != 1 || got[0] != ActionPause {
		t.Errorf("Poll() = %v, expected [Pause]", got)
	}
}

func TestScriptedInput(t *testing.T) {
	s := &ScriptedInput{Frames: [][]Action{
		{ActionDown},
		nil,
		{ActionLeft, ActionUp},
	}}

	if got := s.Poll(); len(got) != 1 || got[0] != ActionDown {
		t.Errorf("frame 0 = %v, expected [Down]", got)
	}
	if got := s.Poll(); got != nil {
		t.Errorf("frame 1 = %v, expected nil", got)
	}
	if got := s.Poll(); len(got) != 2 {
		t.Errorf("frame 2 = %v, expected two actions", got)
	}
	if got := s.Poll(); got != nil {
		t.Errorf("past end = %v, expected nil", got)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionUp:    "Up",
		ActionRight: "Right",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}
