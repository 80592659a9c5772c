package core

import "testing"

func TestIntentQueueOrder(t *testing.T) {
	var q IntentQueue
	q.Push(IntentStart)
	q.Push(IntentNone)
	q.Push(IntentFlap)
	q.Push(IntentTogglePause)

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d intents, expected 3 (None is dropped)", len(got))
	}
	want := []Intent{IntentStart, IntentFlap, IntentTogglePause}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if q.Drain() != nil {
		t.Error("Drain on empty queue should return nil")
	}
}

func TestIntentString(t *testing.T) {
	tests := map[Intent]string{
		IntentStart:       "Start",
		IntentFlap:        "Flap",
		IntentTogglePause: "TogglePause",
		IntentResume:      "Resume",
		IntentLeaveToMenu: "LeaveToMenu",
		IntentRestart:     "Restart",
		Intent(99):        "Unknown",
	}
	for in, want := range tests {
		if in.String() != want {
			t.Errorf("%d.String() = %q, expected %q", int(in), in.String(), want)
		}
	}
}
