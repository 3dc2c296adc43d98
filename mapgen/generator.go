package mapgen

import (
	"github.com/seedrunner/seedrunner/core"
)

// Config controls map generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, all dead ends) to 1.0 (heavily looped).
	// Loops give the player escape routes, so action maps want some braiding
	Braiding float64
}

// Generate carves a stochastic tile map from the supplied random stream.
// Everything the generator does draws from rng, so an identical seed yields
// a bit-identical map on every platform: no wall-clock, no global generator
func Generate(cfg Config, rng core.Source) *TileMap {
	// Odd dimensions keep the node/wall lattice aligned; round down to stay
	// within the requested bounds
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	m := NewTileMap(cols, rows)

	carve(m, rng)

	if cfg.Braiding > 0 {
		braid(m, cfg.Braiding, rng)
	}

	m.Start = Point{1, 1}
	m.Set(m.Start.X, m.Start.Y, TileFloor)

	return m
}

// carve runs a recursive backtracker over the odd node lattice, producing a
// spanning tree of corridors
func carve(m *TileMap, rng core.Source) {
	start := Point{1, 1}
	stack := []Point{start}
	m.Set(start.X, start.Y, TileFloor)

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave a one-cell wall border
			if nx > 0 && nx < m.Width-1 && ny > 0 && ny < m.Height-1 {
				if m.At(nx, ny) == TileWall {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) > 0 {
			d := candidates[rng.NextInt(0, len(candidates)-1)]
			m.Set(curr.X+d.X/2, curr.Y+d.Y/2, TileFloor)
			m.Set(curr.X+d.X, curr.Y+d.Y, TileFloor)
			stack = append(stack, Point{curr.X + d.X, curr.Y + d.Y})
		} else {
			stack = stack[:len(stack)-1]
		}
	}
}

// braid knocks out walls next to dead ends with the given probability,
// introducing cycles while refusing 2x2 plazas and free-standing pillars
func braid(m *TileMap, probability float64, rng core.Source) {
	checkDirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumpDirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if m.At(x, y) == TileWall {
				continue
			}

			exits := 0
			for _, d := range checkDirs {
				if m.At(x+d.X, y+d.Y) == TileFloor {
					exits++
				}
			}
			if exits != 1 || rng.NextFloat() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, jd := range jumpDirs {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2
				if m.InBounds(nx, ny) && m.At(nx, ny) == TileFloor && m.At(wx, wy) == TileWall {
					if canSafelyRemoveWall(m, wx, wy) {
						candidates = append(candidates, Point{wx, wy})
					}
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.NextInt(0, len(candidates)-1)]
				m.Set(c.X, c.Y, TileFloor)
			}
		}
	}
}

// canSafelyRemoveWall checks whether opening the wall at (x,y) creates
// prohibited topology: a 2x2 open plaza or an isolated wall pillar
func canSafelyRemoveWall(m *TileMap, x, y int) bool {
	isFloor := func(tx, ty int) bool {
		return m.At(tx, ty) == TileFloor
	}

	// Plaza check: the four 2x2 quadrants that would contain (x,y)
	if isFloor(x-1, y-1) && isFloor(x, y-1) && isFloor(x-1, y) {
		return false
	}
	if isFloor(x, y-1) && isFloor(x+1, y-1) && isFloor(x+1, y) {
		return false
	}
	if isFloor(x-1, y) && isFloor(x-1, y+1) && isFloor(x, y+1) {
		return false
	}
	if isFloor(x+1, y) && isFloor(x, y+1) && isFloor(x+1, y+1) {
		return false
	}

	// Pillar check: an orthogonal wall neighbor must keep at least one wall
	// connection once (x,y) opens
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if !m.InBounds(nx, ny) || m.At(nx, ny) != TileWall {
			continue
		}
		connections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2.X, ny+d2.Y
			if nnx == x && nny == y {
				continue
			}
			if !m.InBounds(nnx, nny) || m.At(nnx, nny) == TileWall {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}

// SpawnPoints picks n distinct floor cells at least minDist (manhattan) away
// from the player start, drawing from rng over the deterministic floor scan
func SpawnPoints(m *TileMap, n, minDist int, rng core.Source) []Point {
	floors := m.Floors()
	candidates := make([]Point, 0, len(floors))
	for _, p := range floors {
		if manhattan(p, m.Start) >= minDist {
			candidates = append(candidates, p)
		}
	}

	result := make([]Point, 0, n)
	for len(result) < n && len(candidates) > 0 {
		i := rng.NextInt(0, len(candidates)-1)
		result = append(result, candidates[i])
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return result
}

func manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
