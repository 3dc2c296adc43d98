package mapgen

// Tile is one cell of the generated map
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// TileMap is the walkable grid a run plays out on. Cells are stored row-major
type TileMap struct {
	Width  int
	Height int
	Start  Point // player spawn
	cells  []Tile
}

// NewTileMap creates an all-wall map of the given dimensions
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		Width:  width,
		Height: height,
		cells:  make([]Tile, width*height),
	}
}

// InBounds reports whether the coordinate lies on the map
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at a coordinate; out-of-bounds reads are walls
func (m *TileMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.cells[y*m.Width+x]
}

// Set writes a tile; out-of-bounds writes are ignored
func (m *TileMap) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y*m.Width+x] = t
}

// IsWalkable reports whether an entity may occupy the coordinate
func (m *TileMap) IsWalkable(x, y int) bool {
	return m.At(x, y) == TileFloor
}

// Floors returns every floor coordinate in row-major scan order
// The order is a pure function of the grid, never of map iteration
func (m *TileMap) Floors() []Point {
	result := make([]Point, 0, len(m.cells)/2)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.cells[y*m.Width+x] == TileFloor {
				result = append(result, Point{x, y})
			}
		}
	}
	return result
}
