package t2048

// Animation defaults
const (
	defaultSlideTicks = 8 // ~133ms at 60fps
	defaultPopTicks   = 6 // ~100ms at 60fps
)

// TileAnimation represents an animated tile.
type TileAnimation struct {
	Value    int     // Value shown while animating
	From     Pos     // Start cell
	To       Pos     // End cell
	Progress float64 // 0.0 → 1.0
	Merged   bool    // Grew by absorbing another tile
	Removed  bool    // Consumed by a merge, hidden once the slide ends
	IsNew    bool    // Spawned after the move
}

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animation sequences "slide, then pop" for one move.
type animation struct {
	phase AnimationPhase
	ticks int
	slide []TileAnimation
	pop   []TileAnimation
}

// startAnimation builds the slide and pop animations for an applied move.
// Consumed tiles slide into the cell they merged with and then disappear;
// grown and spawned tiles pop once the slide is over.
func (g *Game) startAnimation(report MoveReport) {
	tiles := g.session.Tiles()
	a := animation{}

	for _, s := range report.Slides {
		value := tiles.Value(s.Tile)
		_, grew := report.Merged[s.Tile]
		if grew {
			value /= 2
		}
		a.slide = append(a.slide, TileAnimation{Value: value, From: s.From, To: s.To})
		if grew {
			a.pop = append(a.pop, TileAnimation{
				Value:  tiles.Value(s.Tile),
				From:   s.To,
				To:     s.To,
				Merged: true,
			})
		}
	}

	for _, r := range report.Removed {
		a.slide = append(a.slide, TileAnimation{
			Value:   r.Value,
			From:    r.From,
			To:      r.To,
			Removed: true,
		})
	}

	if report.Spawned.Tile != NoTile {
		a.pop = append(a.pop, TileAnimation{
			Value: tiles.Value(report.Spawned.Tile),
			From:  report.Spawned.Pos,
			To:    report.Spawned.Pos,
			IsNew: true,
		})
	}

	switch {
	case g.slideTicks > 0:
		a.phase = PhaseSlide
	case g.popTicks > 0 && len(a.pop) > 0:
		a.phase = PhasePop
	default:
		a = animation{}
	}
	g.anim = a
}

// update advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *animation) update(slideTicks, popTicks int) bool {
	var duration int
	switch a.phase {
	case PhaseSlide:
		duration = slideTicks
	case PhasePop:
		duration = popTicks
	default:
		return false
	}

	a.ticks++

	progress := 1.0
	if duration > 0 {
		progress = min(float64(a.ticks)/float64(duration), 1.0)
	}

	current := a.current()
	for i := range current {
		current[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finish(popTicks)
		return a.phase != PhaseNone
	}

	return true
}

// finish completes the current animation phase.
func (a *animation) finish(popTicks int) {
	a.ticks = 0
	if a.phase == PhaseSlide && popTicks > 0 && len(a.pop) > 0 {
		a.phase = PhasePop
		return
	}
	*a = animation{}
}

// current returns the animations of the active phase.
func (a *animation) current() []TileAnimation {
	switch a.phase {
	case PhaseSlide:
		return a.slide
	case PhasePop:
		return a.pop
	default:
		return nil
	}
}

// popping reports whether the cell is currently highlighted by a pop.
func (a *animation) popping(p Pos) bool {
	if a.phase != PhasePop {
		return false
	}
	for _, t := range a.pop {
		if t.To == p {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current cell position during animation,
// in fractional rows and columns.
func (t *TileAnimation) interpolatePosition() (row, col float64) {
	p := easeOutQuad(t.Progress)
	row = float64(t.From.Row) + (float64(t.To.Row)-float64(t.From.Row))*p
	col = float64(t.From.Col) + (float64(t.To.Col)-float64(t.From.Col))*p
	return row, col
}
