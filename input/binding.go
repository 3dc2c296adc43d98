package input

// Binding is the semantic name of one game action
// The core polls bindings, never physical keys; the keymap owns the mapping
type Binding string

const (
	MoveUp    Binding = "move_up"
	MoveDown  Binding = "move_down"
	MoveLeft  Binding = "move_left"
	MoveRight Binding = "move_right"
	Attack    Binding = "attack"
	Restart   Binding = "restart"
	Quit      Binding = "quit"
)

// Provider is the collaborator contract the simulation core consumes
// BeginFrame is called once per logical step before systems run, promoting
// whatever arrived since the previous step into that frame's snapshot
type Provider interface {
	BeginFrame(frame int64)
	IsPressed(b Binding) bool
	IsHeld(b Binding) bool
	IsReleased(b Binding) bool
}
