package input

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Keymap maps key names to bindings. Key names are single runes ("w", "j")
// or the named specials below ("up", "space", "esc"); the host translates
// raw terminal events into these names before lookup
type Keymap map[string]Binding

// Named specials accepted in keymap files alongside single-rune keys
var specialKeys = map[string]struct{}{
	"up":    {},
	"down":  {},
	"left":  {},
	"right": {},
	"space": {},
	"esc":   {},
	"enter": {},
	"tab":   {},
}

var knownBindings = map[Binding]struct{}{
	MoveUp:    {},
	MoveDown:  {},
	MoveLeft:  {},
	MoveRight: {},
	Attack:    {},
	Restart:   {},
	Quit:      {},
}

// DefaultKeymap returns the built-in layout: vi motion keys plus arrows
func DefaultKeymap() Keymap {
	return Keymap{
		"k":     MoveUp,
		"j":     MoveDown,
		"h":     MoveLeft,
		"l":     MoveRight,
		"up":    MoveUp,
		"down":  MoveDown,
		"left":  MoveLeft,
		"right": MoveRight,
		"space": Attack,
		"r":     Restart,
		"q":     Quit,
		"esc":   Quit,
	}
}

// keymapFile is the on-disk shape: [bindings] key = "action"
type keymapFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// ParseKeymap parses TOML keymap data into sparse overrides on the default
// layout. Unknown action names and malformed key names are errors
func ParseKeymap(data []byte) (Keymap, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	km := DefaultKeymap()
	for key, action := range file.Bindings {
		if err := validateKeyName(key); err != nil {
			return nil, err
		}
		b := Binding(action)
		if _, ok := knownBindings[b]; !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for key %q", action, key)
		}
		km[key] = b
	}
	return km, nil
}

// LoadKeymap reads and parses a keymap file; empty path yields the defaults
func LoadKeymap(path string) (Keymap, error) {
	if path == "" {
		return DefaultKeymap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}

func validateKeyName(key string) error {
	if _, ok := specialKeys[key]; ok {
		return nil
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return fmt.Errorf("keymap: invalid key name %q", key)
	}
	return nil
}
