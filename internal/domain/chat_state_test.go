package domain

import "testing"

func TestChatState_FocusEntryClearsSense(t *testing.T) {
	t.Parallel()

	var s ChatState
	if s.HasEntry() {
		t.Fatal("zero state should have no entry")
	}

	s.FocusEntry("e1")
	s.FocusSense("s1", "syn1")
	s.FocusEntry("e2")

	want := ChatState{
		CurrentEntry:   "e2",
		PreviousEntry:  "e1",
		PreviousSense:  "s1",
		PreviousSynset: "syn1",
	}
	if s != want {
		t.Fatalf("state = %+v, want %+v", s, want)
	}
}

func TestChatState_Move(t *testing.T) {
	t.Parallel()

	s := ChatState{CurrentEntry: "e1", CurrentSense: "s1", CurrentSynset: "syn1"}
	s.Move("e2", "s2", "syn2")

	if s.CurrentEntry != "e2" || s.CurrentSense != "s2" || s.CurrentSynset != "syn2" {
		t.Errorf("current = %s/%s/%s", s.CurrentEntry, s.CurrentSense, s.CurrentSynset)
	}
	if s.PreviousEntry != "e1" || s.PreviousSense != "s1" || s.PreviousSynset != "syn1" {
		t.Errorf("previous = %s/%s/%s", s.PreviousEntry, s.PreviousSense, s.PreviousSynset)
	}
}

func TestChatState_SwitchEntryKeepsSense(t *testing.T) {
	t.Parallel()

	s := ChatState{CurrentEntry: "e1", CurrentSense: "s1", CurrentSynset: "syn1"}
	s.SwitchEntry("e1")
	if s.PreviousEntry != "" {
		t.Fatalf("switching to the same entry must not shift history, got %q", s.PreviousEntry)
	}

	s.SwitchEntry("e2")
	if s.CurrentEntry != "e2" || s.PreviousEntry != "e1" || s.CurrentSense != "s1" {
		t.Fatalf("unexpected state %+v", s)
	}
}
