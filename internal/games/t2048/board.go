// Package t2048 implements the 2048 sliding-tile puzzle: the board and tile
// arena, the shift/merge engine, the spawner, and the session state machine.
package t2048

// BoardSize is the board dimension.
const BoardSize = 4

// Pos is a board cell.
type Pos struct {
	Row, Col int
}

// Board is a 4x4 grid of tile handles. It is a value type: assigning or
// returning a Board copies the grid while the tiles themselves stay shared.
type Board [BoardSize][BoardSize]TileID

// Grid is a 4x4 grid of tile values, 0 meaning empty.
type Grid [BoardSize][BoardSize]int

// Placed is a tile together with the cell holding it.
type Placed struct {
	Tile TileID
	Pos  Pos
}

// At returns the handle in the given cell.
func (b Board) At(p Pos) TileID {
	return b[p.Row][p.Col]
}

// Set stores a handle in the given cell.
func (b *Board) Set(p Pos, id TileID) {
	b[p.Row][p.Col] = id
}

// Clone returns a copy of the board that shares tile identities.
func (b Board) Clone() Board {
	return b
}

// EmptyCells returns all unoccupied positions in row-major order.
func (b Board) EmptyCells() []Pos {
	var cells []Pos
	for row := range BoardSize {
		for col := range BoardSize {
			if b[row][col] == NoTile {
				cells = append(cells, Pos{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Placed returns all occupied cells in row-major order.
func (b Board) Placed() []Placed {
	var tiles []Placed
	for row := range BoardSize {
		for col := range BoardSize {
			if id := b[row][col]; id != NoTile {
				tiles = append(tiles, Placed{Tile: id, Pos: Pos{Row: row, Col: col}})
			}
		}
	}
	return tiles
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	return BoardSize*BoardSize - len(b.EmptyCells())
}

// Grid resolves every handle to its value.
func (b Board) Grid(tiles TileValues) Grid {
	var g Grid
	for row := range BoardSize {
		for col := range BoardSize {
			if id := b[row][col]; id != NoTile {
				g[row][col] = tiles.Value(id)
			}
		}
	}
	return g
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(tiles TileValues, b Board) int {
	maxVal := 0
	for _, p := range b.Placed() {
		if v := tiles.Value(p.Tile); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
