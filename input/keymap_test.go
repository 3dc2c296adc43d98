package input

import "testing"

func TestParseKeymapOverrides(t *testing.T) {
	data := []byte(`
[bindings]
w = "move_up"
s = "move_down"
a = "move_left"
d = "move_right"
`)
	km, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("ParseKeymap failed: %v", err)
	}

	if km["w"] != MoveUp {
		t.Errorf("Expected w -> move_up, got %s", km["w"])
	}
	// Defaults survive under sparse overrides
	if km["r"] != Restart {
		t.Errorf("Expected default r -> restart to survive, got %s", km["r"])
	}
}

func TestParseKeymapUnknownAction(t *testing.T) {
	data := []byte(`
[bindings]
x = "launch_missiles"
`)
	if _, err := ParseKeymap(data); err == nil {
		t.Errorf("Expected error for unknown action name")
	}
}

func TestParseKeymapInvalidKeyName(t *testing.T) {
	data := []byte(`
[bindings]
ctrl-alt-del = "attack"
`)
	if _, err := ParseKeymap(data); err == nil {
		t.Errorf("Expected error for invalid key name")
	}
}

func TestParseKeymapSpecialKeys(t *testing.T) {
	data := []byte(`
[bindings]
space = "restart"
`)
	km, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("ParseKeymap failed: %v", err)
	}
	if km["space"] != Restart {
		t.Errorf("Expected space -> restart, got %s", km["space"])
	}
}
