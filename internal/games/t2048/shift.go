package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// step returns the row/column offset of one move toward the target edge.
func (d Direction) step() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// linePos returns the cell of the given line that lies dist cells away
// from the target edge. Lines are rows for horizontal moves and columns
// for vertical ones.
func (d Direction) linePos(line, dist int) Pos {
	switch d {
	case DirUp:
		return Pos{Row: dist, Col: line}
	case DirDown:
		return Pos{Row: BoardSize - 1 - dist, Col: line}
	case DirLeft:
		return Pos{Row: line, Col: dist}
	default:
		return Pos{Row: line, Col: BoardSize - 1 - dist}
	}
}

// Removal describes a tile consumed by a merge.
type Removal struct {
	Tile  TileID
	Value int // value before the merge
	From  Pos // cell the tile started the move in
	To    Pos // cell it slid into before disappearing
}

// Slide describes where a surviving tile started and ended a move.
type Slide struct {
	Tile TileID
	From Pos
	To   Pos
}

// MoveReport is the outcome of one shift computation.
type MoveReport struct {
	// Moved is true iff at least one tile changed cell or was consumed.
	Moved bool
	// Next is the board after the shift, before any spawn.
	Next Board
	// Removed lists consumed tiles in the order they merged.
	Removed []Removal
	// Merged maps each tile that absorbed another to its new value.
	Merged map[TileID]int
	// Points is the sum of the pre-merge values of consumed tiles.
	Points int
	// Slides holds the start and end cell of every surviving tile.
	Slides []Slide
	// Spawned is the tile added after the move; filled by Session.
	Spawned Placed
}

// ComputeShift shifts every tile of board toward the edge named by dir and
// reports the result. Neither board nor tiles is modified.
//
// Each line is scanned from the cell next to the target edge outward, and
// every tile looks at the one cell in front of it: it moves into an empty
// cell, merges into an equal tile when neither has merged during this move,
// or stays. One pass moves a tile by at most one cell, so passes repeat
// until a pass changes nothing.
func ComputeShift(tiles TileValues, board Board, dir Direction) MoveReport {
	report := MoveReport{
		Next:   board.Clone(),
		Merged: make(map[TileID]int),
	}
	if !dir.Valid() {
		return report
	}

	origin := make(map[TileID]Pos, BoardSize*BoardSize)
	for _, p := range board.Placed() {
		origin[p.Tile] = p.Pos
	}

	value := func(id TileID) int {
		if v, ok := report.Merged[id]; ok {
			return v
		}
		return tiles.Value(id)
	}

	next := &report.Next
	dRow, dCol := dir.step()

	// Every pass that changes something either consumes a tile or moves
	// one a cell closer to the edge, so the number of passes is bounded by
	// the total distance of all tiles from the edge plus the tile count.
sweep:
	for {
		changed := false

		for line := range BoardSize {
			for dist := 1; dist < BoardSize; dist++ {
				cur := dir.linePos(line, dist)
				id := next.At(cur)
				if id == NoTile {
					continue
				}

				ahead := Pos{Row: cur.Row + dRow, Col: cur.Col + dCol}
				target := next.At(ahead)

				switch {
				case target == NoTile:
					next.Set(ahead, id)
					next.Set(cur, NoTile)
					changed = true

				case value(id) == value(target) && !merged(report.Merged, id) && !merged(report.Merged, target):
					v := value(id)
					report.Merged[target] = v * 2
					report.Points += v
					report.Removed = append(report.Removed, Removal{
						Tile:  id,
						Value: v,
						From:  origin[id],
						To:    ahead,
					})
					next.Set(cur, NoTile)
					changed = true
				}
			}
		}

		if !changed {
			break sweep
		}
		report.Moved = true
	}

	for _, p := range next.Placed() {
		report.Slides = append(report.Slides, Slide{
			Tile: p.Tile,
			From: origin[p.Tile],
			To:   p.Pos,
		})
	}

	return report
}

func merged(m map[TileID]int, id TileID) bool {
	_, ok := m[id]
	return ok
}

// CanMove returns true if any direction changes the board.
func CanMove(tiles TileValues, board Board) bool {
	for _, dir := range Directions {
		if ComputeShift(tiles, board, dir).Moved {
			return true
		}
	}
	return false
}

// IsGameOver returns true if no direction changes the board.
func IsGameOver(tiles TileValues, board Board) bool {
	return !CanMove(tiles, board)
}
