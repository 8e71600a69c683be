package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// helpHeight is the number of rows below the game reserved for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running a 2048 game.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the score of the current game has been recorded

	// ScreenshotDir enables ctrl+s screenshots when set.
	ScreenshotDir string
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// store may be nil.
func NewModel(game *t2048.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	game.Reset(gameCfg)

	state := game.State()
	return Model{
		game:       game,
		screen:     core.NewScreen(gameCfg.ScreenW, gameCfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  state,
		// A resumed game that already ended was recorded when it ended
		scoreSaved: state.GameOver,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// An abandoned game still counts for the leaderboard
	restarting := m.inputFrame.Has(core.ActionRestart) && !m.gameState.Paused
	if restarting {
		m.recordScore()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restarting {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver {
		m.recordScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore adds the current game to the leaderboard once.
func (m *Model) recordScore() {
	if m.scoreSaved || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.MaxTile); err != nil {
		m.logger.Warn("could not save score", "score", m.gameState.Score, "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
