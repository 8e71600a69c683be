package t2048

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestSerializeLoadRoundTrip(t *testing.T) {
	fresh := NewSession(rand.New(rand.NewSource(11)))
	fresh.NewGame()

	mid := NewSession(rand.New(rand.NewSource(12)))
	mid.NewGame()
	for i := range 40 {
		if _, err := mid.ApplyMove(Directions[i%len(Directions)]); err != nil {
			t.Fatalf("ApplyMove() error = %v", err)
		}
	}

	won := mustLoad(t, Saved{Grid: Grid{{1024, 1024}}, Score: 3000, BestScore: 5000}, fixedRand{float: 0.5})
	if _, err := won.ApplyMove(DirLeft); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}

	over := mustLoad(t, Saved{
		Grid: Grid{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		Score:     120,
		BestScore: 400,
		GameOver:  true,
	}, fixedRand{})

	tests := []struct {
		name    string
		session *Session
		status  Status
	}{
		{"new game", fresh, StatusPlaying},
		{"mid game", mid, mid.State().Status()},
		{"won", won, StatusWon},
		{"game over", over, StatusGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := tt.session.Serialize()

			loaded, err := Load(saved, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := loaded.Serialize(); got != saved {
				t.Errorf("round trip = %+v, want %+v", got, saved)
			}
			if got := loaded.State().Status(); got != tt.status {
				t.Errorf("status = %s, want %s", got, tt.status)
			}

			data, err := EncodeSaved(saved)
			if err != nil {
				t.Fatalf("EncodeSaved() error = %v", err)
			}
			decoded, err := DecodeSaved(data)
			if err != nil {
				t.Fatalf("DecodeSaved() error = %v", err)
			}
			if decoded != saved {
				t.Errorf("YAML round trip = %+v, want %+v", decoded, saved)
			}
		})
	}
}

func TestLoadMarksDeadBoardGameOver(t *testing.T) {
	s := mustLoad(t, Saved{
		Grid: Grid{
			{2, 4, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		},
		Score:     900,
		BestScore: 900,
	}, fixedRand{})

	if got := s.State().Status(); got != StatusGameOver {
		t.Errorf("status = %s, want game_over", got)
	}
}

func TestLoadRejectsInvalidState(t *testing.T) {
	tests := []struct {
		name  string
		saved Saved
	}{
		{"odd value", Saved{Grid: Grid{{3}}}},
		{"one", Saved{Grid: Grid{{1}}}},
		{"negative value", Saved{Grid: Grid{{0, -2}}}},
		{"not a power of two", Saved{Grid: Grid{{0, 0, 12}}}},
		{"negative score", Saved{Score: -4}},
		{"best below score", Saved{Score: 10, BestScore: 8}},
		{"acknowledged without win", Saved{WonAcknowledged: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.saved, fixedRand{})
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("Load() error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestLoadAssignsFreshHandles(t *testing.T) {
	saved := Saved{Grid: Grid{{2, 0, 4}, {0, 8}}}
	s := mustLoad(t, saved, fixedRand{})

	seen := make(map[TileID]bool)
	for _, p := range s.Board().Placed() {
		if seen[p.Tile] {
			t.Errorf("handle %d used twice", p.Tile)
		}
		seen[p.Tile] = true
	}
	if len(seen) != 3 {
		t.Errorf("loaded %d tiles, want 3", len(seen))
	}
}

func TestDecodeSavedErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "grid: [[2, 0"},
		{"missing grid", "score: 4\nbest_score: 4\n"},
		{"short row", "grid: [[2, 0, 0, 0], [0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]\n"},
		{"bad value", "grid: [[6, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0]]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSaved([]byte(tt.data))
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("DecodeSaved() error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestEncodeSavedLayout(t *testing.T) {
	data, err := EncodeSaved(Saved{Grid: Grid{{2, 4, 0, 0}}, Score: 4, BestScore: 8})
	if err != nil {
		t.Fatalf("EncodeSaved() error = %v", err)
	}

	for _, key := range []string{"grid:", "score: 4", "best_score: 8", "won: false", "game_over: false"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded document missing %q:\n%s", key, data)
		}
	}
}
