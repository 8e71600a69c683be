package t2048

import "fmt"

// WinValue is the tile value that wins the game.
const WinValue = 2048

// Status is the session state machine position.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusGameOver:
		return "game_over"
	default:
		return "playing"
	}
}

// State is the score bookkeeping and flags of a session.
type State struct {
	Score           int
	BestScore       int
	GameOver        bool
	Won             bool
	WonAcknowledged bool
}

// Status derives the state machine position from the flags.
func (s State) Status() Status {
	switch {
	case s.GameOver:
		return StatusGameOver
	case s.Won && !s.WonAcknowledged:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// Sink receives the serialized session after every state change.
// The session never depends on a Save succeeding.
type Sink interface {
	Save(key string, saved Saved) error
}

// Session owns one game: the tile arena, the board and the state.
// A Session is not safe for concurrent use; callers serialize moves.
type Session struct {
	tiles *Tiles
	board Board
	state State
	rng   Random

	sink    Sink
	sinkKey string
}

// NewSession creates a session with an empty board. Call NewGame to start.
func NewSession(rng Random) *Session {
	return &Session{
		tiles: NewTiles(),
		rng:   rng,
	}
}

// SetSink attaches a persistence sink; key identifies the saved game.
func (s *Session) SetSink(sink Sink, key string) {
	s.sink = sink
	s.sinkKey = key
}

// SetBestScore raises the best score, e.g. from a stored leaderboard.
// Lower values are ignored.
func (s *Session) SetBestScore(best int) {
	if best > s.state.BestScore {
		s.state.BestScore = best
	}
}

// NewGame clears the board, resets the score and spawns two tiles.
// The best score is kept.
func (s *Session) NewGame() State {
	s.tiles = NewTiles()
	s.board = Board{}
	s.state = State{BestScore: s.state.BestScore}

	s.spawn()
	s.spawn()

	s.persist()
	return s.state
}

// ApplyMove shifts the board in the given direction. When the shift moves
// anything, the score is updated, one tile is spawned and the win and
// game-over conditions are checked. Moves are ignored once the game is over
// and while the win banner is waiting to be acknowledged.
func (s *Session) ApplyMove(dir Direction) (MoveReport, error) {
	if !dir.Valid() {
		return MoveReport{Next: s.board}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if s.state.Status() != StatusPlaying {
		return MoveReport{Next: s.board}, nil
	}

	report := ComputeShift(s.tiles, s.board, dir)
	if !report.Moved {
		return report, nil
	}

	s.board = report.Next
	for _, r := range report.Removed {
		s.tiles.free(r.Tile)
	}
	for id, v := range report.Merged {
		s.tiles.set(id, v)
	}

	s.state.Score += report.Points
	if s.state.Score > s.state.BestScore {
		s.state.BestScore = s.state.Score
	}

	// A full board after a move is normal; nothing is spawned.
	if placed, ok := s.spawn(); ok {
		report.Spawned = placed
	}

	if !s.state.Won && MaxTile(s.tiles, s.board) >= WinValue {
		s.state.Won = true
	} else if IsGameOver(s.tiles, s.board) {
		s.state.GameOver = true
	}

	s.persist()
	return report, nil
}

// AcknowledgeWin dismisses the win banner so play can continue. It only
// applies while the status is StatusWon and reports whether it did anything.
// The banner does not come back for the rest of the session.
func (s *Session) AcknowledgeWin() bool {
	if s.state.Status() != StatusWon {
		return false
	}

	s.state.WonAcknowledged = true
	// The winning move skipped the game-over check.
	if IsGameOver(s.tiles, s.board) {
		s.state.GameOver = true
	}

	s.persist()
	return true
}

// State returns a copy of the session state.
func (s *Session) State() State {
	return s.state
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Tiles exposes the arena for reading tile values.
func (s *Session) Tiles() TileValues {
	return s.tiles
}

// Grid returns the current board as values.
func (s *Session) Grid() Grid {
	return s.board.Grid(s.tiles)
}

// spawn inserts a random tile and returns where it went.
func (s *Session) spawn() (Placed, bool) {
	sp, ok := Spawn(s.board, s.rng)
	if !ok {
		return Placed{}, false
	}

	id := s.tiles.Alloc(sp.Value)
	s.board.Set(sp.Pos, id)
	return Placed{Tile: id, Pos: sp.Pos}, true
}

// persist hands the current state to the sink, if any.
func (s *Session) persist() {
	if s.sink == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the session is already consistent
	s.sink.Save(s.sinkKey, s.Serialize())
}
