package engine

import (
	"testing"

	"github.com/seedrunner/seedrunner/core"
)

type tag struct {
	Name string
}

func TestStoreQueueFlushRoundTrip(t *testing.T) {
	s := NewStore[tag]()
	e := core.Entity(1)

	s.Add(e, tag{Name: "a"})
	s.QueueRemoval(e)

	if !s.Has(e) {
		t.Errorf("Expected queued removal to be invisible before flush")
	}

	s.FlushQueuedRemovals()

	if s.Has(e) {
		t.Errorf("Expected component gone after flush")
	}
	for _, entry := range s.Entries() {
		if entry.Entity == e {
			t.Errorf("Expected entries to exclude flushed entity")
		}
	}
}

func TestStoreCancelOnReadd(t *testing.T) {
	s := NewStore[tag]()
	e := core.Entity(1)

	s.Add(e, tag{Name: "v1"})
	s.QueueRemoval(e)
	s.Add(e, tag{Name: "v2"})
	s.FlushQueuedRemovals()

	if !s.Has(e) {
		t.Fatalf("Expected re-add to cancel the queued removal")
	}
	v, _ := s.Get(e)
	if v.Name != "v2" {
		t.Errorf("Expected last write to win, got %q", v.Name)
	}
}

func TestStoreQueueRemovalAbsentIsNoop(t *testing.T) {
	s := NewStore[tag]()
	s.QueueRemoval(core.Entity(42))
	s.FlushQueuedRemovals() // must not panic or create anything

	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d", s.Len())
	}
}

func TestStoreEntriesSortedByEntity(t *testing.T) {
	s := NewStore[tag]()
	for _, id := range []core.Entity{7, 2, 10} {
		s.Add(id, tag{})
	}

	entries := s.Entries()
	want := []core.Entity{2, 7, 10}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry.Entity != want[i] {
			t.Errorf("Expected entry %d to be entity %d, got %d", i, want[i], entry.Entity)
		}
	}
}

func TestStoreRemoveClearsQueuedRemoval(t *testing.T) {
	s := NewStore[tag]()
	e := core.Entity(3)

	s.Add(e, tag{})
	s.QueueRemoval(e)
	s.Remove(e)

	if len(s.pending) != 0 {
		t.Errorf("Expected Remove to clear the queued removal")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[tag]()
	s.Add(1, tag{})
	s.Add(2, tag{})
	s.QueueRemoval(1)

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Len())
	}
	s.Add(1, tag{})
	s.FlushQueuedRemovals()
	if !s.Has(1) {
		t.Errorf("Expected Clear to drop queued removals too")
	}
}
