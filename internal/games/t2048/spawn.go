package t2048

// Random is the source of randomness used for spawning.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Spawn4Probability is the chance that a spawned tile is a 4 instead of a 2.
const Spawn4Probability = 0.10

// Spawned is a tile chosen by Spawn, not yet inserted into a board.
type Spawned struct {
	Pos   Pos
	Value int
}

// Spawn picks a uniformly random empty cell and a value for a new tile:
// 4 with probability Spawn4Probability, otherwise 2. It returns false when
// the board is full. The caller inserts the tile.
func Spawn(board Board, rng Random) (Spawned, bool) {
	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 {
		return Spawned{}, false
	}

	cell := emptyCells[rng.Intn(len(emptyCells))]

	value := 2
	if rng.Float64() < Spawn4Probability {
		value = 4
	}

	return Spawned{Pos: cell, Value: value}, true
}
