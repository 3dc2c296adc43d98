package input

// State is the live input provider fed by the host event loop
// Terminal hosts only deliver key-down events (auto-repeat stands in for
// hold), so a binding fed since the previous frame counts as held for that
// frame; pressed and released are edges against the prior frame's snapshot
//
// Feed may be called from the host between frames; BeginFrame snapshots the
// staged set so systems see a stable view for the whole step
type State struct {
	staged   map[Binding]struct{}
	held     map[Binding]struct{}
	prevHeld map[Binding]struct{}
}

// NewState creates an empty live provider
func NewState() *State {
	return &State{
		staged:   make(map[Binding]struct{}),
		held:     make(map[Binding]struct{}),
		prevHeld: make(map[Binding]struct{}),
	}
}

// Feed stages a binding event for the next frame snapshot
func (s *State) Feed(b Binding) {
	s.staged[b] = struct{}{}
}

// BeginFrame promotes staged events into the current frame snapshot
func (s *State) BeginFrame(frame int64) {
	s.prevHeld, s.held = s.held, s.prevHeld
	clear(s.held)
	for b := range s.staged {
		s.held[b] = struct{}{}
	}
	clear(s.staged)
}

// IsHeld reports whether the binding is down this frame
func (s *State) IsHeld(b Binding) bool {
	_, ok := s.held[b]
	return ok
}

// IsPressed reports whether the binding went down this frame
func (s *State) IsPressed(b Binding) bool {
	if _, now := s.held[b]; !now {
		return false
	}
	_, before := s.prevHeld[b]
	return !before
}

// IsReleased reports whether the binding went up this frame
func (s *State) IsReleased(b Binding) bool {
	if _, now := s.held[b]; now {
		return false
	}
	_, before := s.prevHeld[b]
	return before
}
