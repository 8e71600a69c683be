package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	BestScore int
	Board     Grid
	MaxTile   int // Highest tile on board
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	default:
		switch g.session.State().Status() {
		case StatusWon:
			state = StateWin
		case StatusGameOver:
			state = StateGameOver
		}
	}

	st := g.session.State()
	return Snapshot{
		Tick:      g.tick,
		Score:     st.Score,
		BestScore: st.BestScore,
		Board:     g.session.Grid(),
		MaxTile:   MaxTile(g.session.Tiles(), g.session.Board()),
		State:     state,
	}
}
