package input

// Scripted is a deterministic provider for tests and replays: the exact set
// of bindings held on each frame is fixed up front
type Scripted struct {
	frames  map[int64][]Binding
	current map[Binding]struct{}
	prev    map[Binding]struct{}
}

// NewScripted creates a provider from a frame → held-bindings script
func NewScripted(frames map[int64][]Binding) *Scripted {
	return &Scripted{
		frames:  frames,
		current: make(map[Binding]struct{}),
		prev:    make(map[Binding]struct{}),
	}
}

// BeginFrame loads the scripted bindings for the given frame
func (s *Scripted) BeginFrame(frame int64) {
	s.prev, s.current = s.current, s.prev
	clear(s.current)
	for _, b := range s.frames[frame] {
		s.current[b] = struct{}{}
	}
}

// IsHeld reports whether the binding is scripted down this frame
func (s *Scripted) IsHeld(b Binding) bool {
	_, ok := s.current[b]
	return ok
}

// IsPressed reports whether the binding went down this frame
func (s *Scripted) IsPressed(b Binding) bool {
	if _, now := s.current[b]; !now {
		return false
	}
	_, before := s.prev[b]
	return !before
}

// IsReleased reports whether the binding went up this frame
func (s *Scripted) IsReleased(b Binding) bool {
	if _, now := s.current[b]; now {
		return false
	}
	_, before := s.prev[b]
	return before
}
