package t2048

// TileID is a stable handle to a tile owned by a Tiles arena.
// The zero value means "no tile".
type TileID uint32

// NoTile marks an empty board cell.
const NoTile TileID = 0

// TileValues reads tile values by handle.
// The shift engine only ever reads through this interface.
type TileValues interface {
	Value(id TileID) int
}

// Tiles is the arena that owns every tile of one session.
// Handles are never reused within an arena, so a MoveReport cannot
// refer to a recycled tile.
type Tiles struct {
	values []int // indexed by TileID; 0 = freed
	live   int
}

// NewTiles creates an empty arena.
func NewTiles() *Tiles {
	return &Tiles{values: make([]int, 1, 32)} // slot 0 is NoTile
}

// Alloc creates a tile with the given value and returns its handle.
func (t *Tiles) Alloc(value int) TileID {
	t.values = append(t.values, value)
	t.live++
	return TileID(len(t.values) - 1)
}

// Value returns the tile's value, or 0 for NoTile and freed handles.
func (t *Tiles) Value(id TileID) int {
	if int(id) >= len(t.values) {
		return 0
	}
	return t.values[id]
}

// Live reports whether the handle refers to a tile that has not been freed.
func (t *Tiles) Live(id TileID) bool {
	return t.Value(id) != 0
}

// Len returns the number of live tiles.
func (t *Tiles) Len() int {
	return t.live
}

// set changes the value of a live tile.
func (t *Tiles) set(id TileID, value int) {
	if t.Live(id) {
		t.values[id] = value
	}
}

// free releases a tile consumed by a merge.
func (t *Tiles) free(id TileID) {
	if t.Live(id) {
		t.values[id] = 0
		t.live--
	}
}
