package session

import "testing"

func TestStore_AppendAndSnapshot(t *testing.T) {
	store := NewStore(Options{})

	store.Append("a",
		Turn{Role: RoleUser, Text: "I have a headache"},
		Turn{Role: RoleAssistant, Text: "Here is what might help."},
	)

	got := store.Snapshot("a")
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Role != RoleUser || got[0].Text != "I have a headache" {
		t.Errorf("unexpected first turn: %+v", got[0])
	}
	if got[1].Role != RoleAssistant {
		t.Errorf("unexpected second turn: %+v", got[1])
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore(Options{})
	store.Append("a", Turn{Role: RoleUser, Text: "original"})

	snap := store.Snapshot("a")
	snap[0].Text = "mutated"

	if got := store.Snapshot("a"); got[0].Text != "original" {
		t.Errorf("snapshot mutation leaked into store: %q", got[0].Text)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(Options{})
	store.Append("a", Turn{Role: RoleUser, Text: "for a"})

	if got := store.Snapshot("b"); len(got) != 0 {
		t.Errorf("expected empty transcript for fresh session, got %d turns", len(got))
	}
	if got := store.Snapshot("a"); len(got) != 1 {
		t.Errorf("expected 1 turn for session a, got %d", len(got))
	}
}

func TestStore_TrimsOldestTurns(t *testing.T) {
	store := NewStore(Options{MaxTurns: 3})

	store.Append("a",
		Turn{Role: RoleUser, Text: "one"},
		Turn{Role: RoleAssistant, Text: "two"},
		Turn{Role: RoleUser, Text: "three"},
		Turn{Role: RoleAssistant, Text: "four"},
	)

	got := store.Snapshot("a")
	if len(got) != 3 {
		t.Fatalf("expected transcript capped at 3 turns, got %d", len(got))
	}
	if got[0].Text != "two" {
		t.Errorf("expected oldest turn dropped, first is %q", got[0].Text)
	}
	if got[2].Text != "four" {
		t.Errorf("expected newest turn kept, last is %q", got[2].Text)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(Options{})
	store.Append("a", Turn{Role: RoleUser, Text: "hello"})

	store.Clear("a")

	if got := store.Snapshot("a"); len(got) != 0 {
		t.Errorf("expected empty transcript after clear, got %d turns", len(got))
	}
}

func TestStore_AppendNothing(t *testing.T) {
	store := NewStore(Options{})
	store.Append("a")

	if got := store.Snapshot("a"); len(got) != 0 {
		t.Errorf("expected no turns, got %d", len(got))
	}
}
