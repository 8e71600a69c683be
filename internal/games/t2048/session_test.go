package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

// recordingSink keeps every saved game it receives.
type recordingSink struct {
	keys  []string
	saves []Saved
	err   error
}

func (s *recordingSink) Save(key string, saved Saved) error {
	s.keys = append(s.keys, key)
	s.saves = append(s.saves, saved)
	return s.err
}

func mustLoad(t *testing.T, saved Saved, rng Random) *Session {
	t.Helper()
	s, err := Load(saved, rng)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestNewGame(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)))
	st := s.NewGame()

	if st.Score != 0 || st.Status() != StatusPlaying {
		t.Errorf("NewGame state = %+v, want zero score and playing", st)
	}

	board := s.Board()
	if board.Count() != 2 {
		t.Fatalf("new board has %d tiles, want 2", board.Count())
	}
	for _, p := range board.Placed() {
		if v := s.Tiles().Value(p.Tile); v != 2 && v != 4 {
			t.Errorf("starting tile value = %d, want 2 or 4", v)
		}
	}
}

func TestNewGameKeepsBestScore(t *testing.T) {
	s := mustLoad(t, Saved{Grid: Grid{{2, 2}}, Score: 10, BestScore: 50}, fixedRand{float: 0.5})

	st := s.NewGame()
	if st.Score != 0 {
		t.Errorf("Score = %d, want 0", st.Score)
	}
	if st.BestScore != 50 {
		t.Errorf("BestScore = %d, want 50", st.BestScore)
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	s := mustLoad(t, Saved{Grid: Grid{{2, 2}}}, fixedRand{float: 0.5})
	before := s.Serialize()

	_, err := s.ApplyMove(Direction(-1))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("ApplyMove() error = %v, want ErrInvalidDirection", err)
	}
	if s.Serialize() != before {
		t.Error("invalid move changed the session")
	}
}

func TestApplyMoveMerge(t *testing.T) {
	s := mustLoad(t, Saved{Grid: Grid{{2, 2, 0, 0}}}, fixedRand{float: 0.5})

	report, err := s.ApplyMove(DirLeft)
	if err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if !report.Moved {
		t.Fatal("expected the merge to move")
	}

	st := s.State()
	if st.Score != 2 || st.BestScore != 2 {
		t.Errorf("Score/Best = %d/%d, want 2/2", st.Score, st.BestScore)
	}

	// Merged 4 at the edge plus one spawned 2 in the first empty cell
	want := Grid{{4, 2, 0, 0}}
	if got := s.Grid(); got != want {
		t.Errorf("grid = %v, want %v", got, want)
	}
	if report.Spawned.Pos != (Pos{Row: 0, Col: 1}) {
		t.Errorf("Spawned = %+v, want cell (0, 1)", report.Spawned)
	}

	removed := report.Removed[0].Tile
	if s.Tiles().Value(removed) != 0 {
		t.Error("consumed tile should be freed")
	}
}

func TestApplyMoveNoChange(t *testing.T) {
	sink := &recordingSink{}
	s := mustLoad(t, Saved{Grid: Grid{{2, 4, 8, 16}}}, fixedRand{float: 0.5})
	s.SetSink(sink, "local")
	before := s.Serialize()

	report, err := s.ApplyMove(DirLeft)
	if err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if report.Moved {
		t.Error("blocked row should not move")
	}
	if s.Serialize() != before {
		t.Error("a move that changes nothing must not spawn or score")
	}
	if len(sink.saves) != 0 {
		t.Errorf("no-op move saved %d times", len(sink.saves))
	}
}

func TestWinTriggersOnce(t *testing.T) {
	s := mustLoad(t, Saved{Grid: Grid{{1024, 1024, 0, 0}}}, fixedRand{float: 0.5})

	if _, err := s.ApplyMove(DirLeft); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if got := s.State().Status(); got != StatusWon {
		t.Fatalf("status = %s, want won", got)
	}
	if s.State().Score != 1024 {
		t.Errorf("Score = %d, want 1024", s.State().Score)
	}

	// Moves wait for the win to be acknowledged
	grid := s.Grid()
	report, err := s.ApplyMove(DirRight)
	if err != nil || report.Moved {
		t.Errorf("move while won: moved=%v err=%v", report.Moved, err)
	}
	if s.Grid() != grid {
		t.Error("move while won changed the board")
	}

	if !s.AcknowledgeWin() {
		t.Fatal("AcknowledgeWin() = false, want true")
	}
	if got := s.State().Status(); got != StatusPlaying {
		t.Errorf("status after acknowledge = %s, want playing", got)
	}
	if s.AcknowledgeWin() {
		t.Error("second AcknowledgeWin() should do nothing")
	}

	// Build another 2048 and check the banner stays down
	saved := s.Serialize()
	saved.Grid[1] = [BoardSize]int{1024, 1024, 0, 0}
	s = mustLoad(t, saved, fixedRand{float: 0.5})

	if _, err := s.ApplyMove(DirLeft); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	st := s.State()
	if st.Status() != StatusPlaying || !st.Won || !st.WonAcknowledged {
		t.Errorf("state after second 2048 = %+v, want playing with win kept", st)
	}
}

func TestAcknowledgeWinWhenNotWon(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(3)))
	s.NewGame()

	if s.AcknowledgeWin() {
		t.Error("AcknowledgeWin() on a game in play should return false")
	}
}

func TestAcknowledgeWinOnDeadBoard(t *testing.T) {
	s := mustLoad(t, Saved{
		Grid: Grid{
			{2048, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		Score:     20000,
		BestScore: 20000,
		Won:       true,
	}, fixedRand{float: 0.5})

	if got := s.State().Status(); got != StatusWon {
		t.Fatalf("status = %s, want won", got)
	}

	s.AcknowledgeWin()
	if got := s.State().Status(); got != StatusGameOver {
		t.Errorf("status = %s, want game_over", got)
	}
}

func TestGameOverAfterMove(t *testing.T) {
	// Sliding right frees only (3, 0); a spawned 4 there locks the board
	s := mustLoad(t, Saved{
		Grid: Grid{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{8, 16, 8, 0},
		},
	}, fixedRand{float: 0.05})

	report, err := s.ApplyMove(DirRight)
	if err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}
	if !report.Moved {
		t.Fatal("expected the move to slide the last row")
	}

	want := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 8, 16, 8},
	}
	if got := s.Grid(); got != want {
		t.Fatalf("grid = %v, want %v", got, want)
	}
	if got := s.State().Status(); got != StatusGameOver {
		t.Errorf("status = %s, want game_over", got)
	}

	for _, dir := range Directions {
		report, err := s.ApplyMove(dir)
		if err != nil || report.Moved {
			t.Errorf("move %s after game over: moved=%v err=%v", dir, report.Moved, err)
		}
	}
}

func TestBestScoreOnlyRises(t *testing.T) {
	s := mustLoad(t, Saved{Grid: Grid{{2, 2}}}, fixedRand{float: 0.5})
	s.SetBestScore(100)
	s.SetBestScore(40)

	if _, err := s.ApplyMove(DirLeft); err != nil {
		t.Fatalf("ApplyMove() error = %v", err)
	}

	st := s.State()
	if st.Score != 2 || st.BestScore != 100 {
		t.Errorf("Score/Best = %d/%d, want 2/100", st.Score, st.BestScore)
	}
}

func TestSessionSink(t *testing.T) {
	sink := &recordingSink{}
	s := NewSession(rand.New(rand.NewSource(5)))
	s.SetSink(sink, "ssh:alice")

	s.NewGame()
	if len(sink.saves) != 1 {
		t.Fatalf("NewGame saved %d times, want 1", len(sink.saves))
	}
	if sink.keys[0] != "ssh:alice" {
		t.Errorf("key = %q, want ssh:alice", sink.keys[0])
	}
	if sink.saves[0] != s.Serialize() {
		t.Error("saved game does not match the session")
	}

	// A failing sink does not affect play
	sink.err = errors.New("disk full")
	for _, dir := range Directions {
		if _, err := s.ApplyMove(dir); err != nil {
			t.Fatalf("ApplyMove() error = %v", err)
		}
	}
	if last := sink.saves[len(sink.saves)-1]; last != s.Serialize() {
		t.Error("last save does not match the session")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPlaying, "playing"},
		{StatusWon, "won"},
		{StatusGameOver, "game_over"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
