package t2048

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Saved is the persistable form of a session: tile values plus the state.
type Saved struct {
	Grid            Grid
	Score           int
	BestScore       int
	Won             bool
	GameOver        bool
	WonAcknowledged bool
}

// Serialize returns the persistable form of the session.
func (s *Session) Serialize() Saved {
	return Saved{
		Grid:            s.Grid(),
		Score:           s.state.Score,
		BestScore:       s.state.BestScore,
		Won:             s.state.Won,
		GameOver:        s.state.GameOver,
		WonAcknowledged: s.state.WonAcknowledged,
	}
}

// Load restores a session from its persistable form. Tiles get fresh
// handles. A restored board that is still in play but has no legal move
// is marked game over.
func Load(saved Saved, rng Random) (*Session, error) {
	if err := saved.Validate(); err != nil {
		return nil, err
	}

	s := NewSession(rng)
	for row := range BoardSize {
		for col := range BoardSize {
			if v := saved.Grid[row][col]; v != 0 {
				s.board.Set(Pos{Row: row, Col: col}, s.tiles.Alloc(v))
			}
		}
	}

	s.state = State{
		Score:           saved.Score,
		BestScore:       saved.BestScore,
		Won:             saved.Won,
		GameOver:        saved.GameOver,
		WonAcknowledged: saved.WonAcknowledged,
	}

	if s.state.Status() == StatusPlaying && IsGameOver(s.tiles, s.board) {
		s.state.GameOver = true
	}

	return s, nil
}

// Validate checks that the saved game can be restored.
func (sv Saved) Validate() error {
	for row := range BoardSize {
		for col := range BoardSize {
			if v := sv.Grid[row][col]; !validTileValue(v) {
				return fmt.Errorf("%w: cell (%d, %d) holds %d", ErrInvalidState, row, col, v)
			}
		}
	}

	switch {
	case sv.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, sv.Score)
	case sv.BestScore < sv.Score:
		return fmt.Errorf("%w: best score %d below score %d", ErrInvalidState, sv.BestScore, sv.Score)
	case sv.WonAcknowledged && !sv.Won:
		return fmt.Errorf("%w: win acknowledged without a win", ErrInvalidState)
	}

	return nil
}

// validTileValue accepts 0 (empty) or a power of two of at least 2.
func validTileValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// savedDocument is the YAML layout of a saved game.
type savedDocument struct {
	Grid            [][]int `yaml:"grid"`
	Score           int     `yaml:"score"`
	BestScore       int     `yaml:"best_score"`
	Won             bool    `yaml:"won"`
	GameOver        bool    `yaml:"game_over"`
	WonAcknowledged bool    `yaml:"won_acknowledged"`
}

// EncodeSaved renders a saved game as YAML.
func EncodeSaved(sv Saved) ([]byte, error) {
	doc := savedDocument{
		Grid:            make([][]int, BoardSize),
		Score:           sv.Score,
		BestScore:       sv.BestScore,
		Won:             sv.Won,
		GameOver:        sv.GameOver,
		WonAcknowledged: sv.WonAcknowledged,
	}
	for row := range BoardSize {
		doc.Grid[row] = append([]int(nil), sv.Grid[row][:]...)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("t2048: encode saved game: %w", err)
	}
	return data, nil
}

// DecodeSaved parses and validates a YAML saved game.
func DecodeSaved(data []byte) (Saved, error) {
	var doc savedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Saved{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if len(doc.Grid) != BoardSize {
		return Saved{}, fmt.Errorf("%w: grid has %d rows", ErrInvalidState, len(doc.Grid))
	}

	sv := Saved{
		Score:           doc.Score,
		BestScore:       doc.BestScore,
		Won:             doc.Won,
		GameOver:        doc.GameOver,
		WonAcknowledged: doc.WonAcknowledged,
	}
	for row, cells := range doc.Grid {
		if len(cells) != BoardSize {
			return Saved{}, fmt.Errorf("%w: row %d has %d cells", ErrInvalidState, row, len(cells))
		}
		copy(sv.Grid[row][:], cells)
	}

	if err := sv.Validate(); err != nil {
		return Saved{}, err
	}
	return sv, nil
}
