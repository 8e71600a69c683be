package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game drives a Session from fixed-tick platform input and draws it.
type Game struct {
	rng     *rand.Rand
	tick    uint64
	session *Session

	sink      Sink
	saveKey   string
	restore   *Saved
	bestScore int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	anim       animation
	slideTicks int
	popTicks   int
}

// New creates a 2048 game. Reset must be called before the first Step.
func New() *Game {
	return &Game{
		slideTicks: defaultSlideTicks,
		popTicks:   defaultPopTicks,
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// SetSink makes the session save itself under key after every change.
func (g *Game) SetSink(sink Sink, key string) {
	g.sink = sink
	g.saveKey = key
	if g.session != nil {
		g.session.SetSink(sink, key)
	}
}

// SetBestScore seeds the best score, e.g. from the leaderboard.
func (g *Game) SetBestScore(best int) {
	g.bestScore = max(g.bestScore, best)
	if g.session != nil {
		g.session.SetBestScore(best)
	}
}

// SetAnimation sets the slide and pop durations in ticks. Zero disables a phase.
func (g *Game) SetAnimation(slideTicks, popTicks int) {
	g.slideTicks = max(slideTicks, 0)
	g.popTicks = max(popTicks, 0)
}

// Restore makes the next Reset resume the saved game instead of starting a
// new one. The saved game is validated immediately.
func (g *Game) Restore(saved Saved) error {
	if err := saved.Validate(); err != nil {
		return err
	}
	g.restore = &saved
	return nil
}

// Reset initializes the game: it resumes a restored game if one was given,
// otherwise it starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.anim = animation{}

	g.session = nil
	if g.restore != nil {
		if s, err := Load(*g.restore, g.rng); err == nil {
			g.session = s
		}
		g.restore = nil
	}

	if g.session == nil {
		g.session = NewSession(g.rng)
		g.session.SetBestScore(g.bestScore)
		g.session.SetSink(g.sink, g.saveKey)
		g.session.NewGame()
	} else {
		g.session.SetBestScore(g.bestScore)
		g.session.SetSink(g.sink, g.saveKey)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Restart starts a new game, keeping the best score.
func (g *Game) Restart() {
	g.paused = false
	g.anim = animation{}
	g.session.NewGame()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board plus the HUD above it
	minW := boardWidth + 2
	minH := hudHeight + boardHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.update(g.slideTicks, g.popTicks)

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionConfirm) {
		g.session.AcknowledgeWin()
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	report, err := g.session.ApplyMove(dir)
	if err != nil || !report.Moved {
		return core.StepResult{State: g.State()}
	}

	g.startAnimation(report)
	return core.StepResult{State: g.State(), Moved: true}
}

// directionFor maps the frame's first movement action to a direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:     st.Score,
		BestScore: st.BestScore,
		MaxTile:   MaxTile(g.session.Tiles(), g.session.Board()),
		GameOver:  st.GameOver,
		Won:       st.Status() == StatusWon,
		Paused:    g.paused || g.tooSmall,
	}
}
