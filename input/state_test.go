package input

import "testing"

func TestStateEdgeDetection(t *testing.T) {
	s := NewState()

	// Frame 0: nothing down
	s.BeginFrame(0)
	if s.IsHeld(Attack) || s.IsPressed(Attack) || s.IsReleased(Attack) {
		t.Errorf("Expected no state for unfed binding")
	}

	// Event arrives between frames
	s.Feed(Attack)
	s.BeginFrame(1)
	if !s.IsHeld(Attack) {
		t.Errorf("Expected Attack held on frame 1")
	}
	if !s.IsPressed(Attack) {
		t.Errorf("Expected Attack pressed on frame 1")
	}
	if s.IsReleased(Attack) {
		t.Errorf("Did not expect Attack released on frame 1")
	}

	// Auto-repeat keeps it held, no longer a press edge
	s.Feed(Attack)
	s.BeginFrame(2)
	if !s.IsHeld(Attack) || s.IsPressed(Attack) {
		t.Errorf("Expected held-without-press on frame 2")
	}

	// Nothing fed: release edge
	s.BeginFrame(3)
	if s.IsHeld(Attack) {
		t.Errorf("Expected Attack up on frame 3")
	}
	if !s.IsReleased(Attack) {
		t.Errorf("Expected Attack released on frame 3")
	}

	// Release edge lasts one frame only
	s.BeginFrame(4)
	if s.IsReleased(Attack) {
		t.Errorf("Release edge should not persist past one frame")
	}
}

func TestStateFeedIsCoalesced(t *testing.T) {
	s := NewState()
	s.Feed(MoveLeft)
	s.Feed(MoveLeft)
	s.Feed(MoveLeft)
	s.BeginFrame(0)

	if !s.IsPressed(MoveLeft) {
		t.Errorf("Expected a single press edge from repeated feeds")
	}
}

func TestScriptedProvider(t *testing.T) {
	s := NewScripted(map[int64][]Binding{
		2: {Restart},
		3: {Restart},
	})

	s.BeginFrame(0)
	if s.IsPressed(Restart) {
		t.Errorf("Did not expect Restart on frame 0")
	}
	s.BeginFrame(1)
	s.BeginFrame(2)
	if !s.IsPressed(Restart) || !s.IsHeld(Restart) {
		t.Errorf("Expected Restart pressed on frame 2")
	}
	s.BeginFrame(3)
	if s.IsPressed(Restart) {
		t.Errorf("Expected Restart held but not pressed on frame 3")
	}
	s.BeginFrame(4)
	if !s.IsReleased(Restart) {
		t.Errorf("Expected Restart released on frame 4")
	}
}
