package mapgen

import (
	"testing"

	"github.com/seedrunner/seedrunner/core"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Width: 41, Height: 25, Braiding: 0.3}

	a := Generate(cfg, core.NewRand(777))
	b := Generate(cfg, core.NewRand(777))

	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("Dimensions diverged: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("Grids diverged at (%d,%d) for identical seed", x, y)
			}
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	cfg := Config{Width: 41, Height: 25, Braiding: 0.3}
	a := Generate(cfg, core.NewRand(1))
	b := Generate(cfg, core.NewRand(2))

	same := true
	for y := 0; y < a.Height && same; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Errorf("Expected different seeds to carve different maps")
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	m := Generate(Config{Width: 21, Height: 15}, core.NewRand(5))
	for x := 0; x < m.Width; x++ {
		if m.At(x, 0) != TileWall || m.At(x, m.Height-1) != TileWall {
			t.Fatalf("Expected wall border at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.At(0, y) != TileWall || m.At(m.Width-1, y) != TileWall {
			t.Fatalf("Expected wall border at row %d", y)
		}
	}
}

func TestGenerateStartWalkable(t *testing.T) {
	m := Generate(Config{Width: 21, Height: 15, Braiding: 1.0}, core.NewRand(11))
	if !m.IsWalkable(m.Start.X, m.Start.Y) {
		t.Errorf("Expected start %v to be walkable", m.Start)
	}
}

func TestGenerateRoundsDimensionsDown(t *testing.T) {
	m := Generate(Config{Width: 20, Height: 14}, core.NewRand(3))
	if m.Width != 19 || m.Height != 13 {
		t.Errorf("Expected 19x13 after odd rounding, got %dx%d", m.Width, m.Height)
	}
}

func TestSpawnPointsDistinctAndDistant(t *testing.T) {
	m := Generate(Config{Width: 41, Height: 25, Braiding: 0.5}, core.NewRand(42))
	points := SpawnPoints(m, 8, 6, core.NewRand(42))

	if len(points) != 8 {
		t.Fatalf("Expected 8 spawn points, got %d", len(points))
	}
	seen := make(map[Point]bool)
	for _, p := range points {
		if seen[p] {
			t.Errorf("Duplicate spawn point %v", p)
		}
		seen[p] = true
		if !m.IsWalkable(p.X, p.Y) {
			t.Errorf("Spawn point %v is not walkable", p)
		}
		if manhattan(p, m.Start) < 6 {
			t.Errorf("Spawn point %v too close to start %v", p, m.Start)
		}
	}
}

func TestOutOfBoundsReadsAreWalls(t *testing.T) {
	m := NewTileMap(5, 5)
	if m.At(-1, 0) != TileWall || m.At(0, 99) != TileWall {
		t.Errorf("Expected out-of-bounds reads to be walls")
	}
}
