package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// Rows below the playfield reserved for the key help line.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *invasion.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	mouseOn    bool
	quitting   bool
	saveErr    error
}

// NewModel creates a model for the game and resets it to the menu.
// The high score is seeded from store when one is given.
func NewModel(game *invasion.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(DefaultKeyMap()),
		holds:      NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		mouseOn:    true,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(m.gameConfig())
	if store != nil {
		if best, err := store.HighScore(""); err == nil {
			game.SeedHighScore(best)
		} else {
			m.saveErr = err
		}
	}
	m.gameState = game.State()
	return m
}

func playfieldHeight(h int) int {
	return core.Max(h-helpHeight, 1)
}

// gameConfig returns the runtime config of the playfield.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)
	return cfg
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action of a key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionNone:
		if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
			m.saveScreenshot()
		}
	case core.ActionLeft, core.ActionRight:
		if m.holds.Press(action, time.Now()) {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse queues left button presses as clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.AddClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := playfieldHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, release := range m.holds.Expire(now) {
		m.inputFrame.Set(release)
	}

	wasInGame := m.game.Phase().InGame()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended {
		m.saveResult(result)
	}
	m.inputFrame.Clear()

	// Keys held when a playthrough ends are let go so the next one starts still
	if wasInGame && !m.game.Phase().InGame() {
		for _, release := range m.holds.ReleaseAll() {
			m.inputFrame.Set(release)
		}
	}

	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if visible := m.game.CursorVisible(); visible != m.mouseOn {
		// Mouse reporting only matters while the menu buttons are on screen
		m.mouseOn = visible
		if visible {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}
	return m, tea.Batch(cmds...)
}

// saveResult records a finished playthrough. Empty playthroughs are not kept.
func (m *Model) saveResult(res core.StepResult) {
	if m.store == nil || res.State.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Score:      res.State.Score,
		Level:      res.State.Level,
		Difficulty: res.State.Difficulty,
		Outcome:    string(res.Outcome),
	})
	if err != nil {
		m.saveErr = err
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".invasion", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("invasion_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the playfield and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	keys := phaseKeys{keys: m.keyMapper.Keys(), phase: m.game.Phase()}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the last score store error, if any.
func (m Model) Err() error {
	return m.saveErr
}

// Run plays the game in the terminal until the player quits. Score store errors are
// logged once the terminal is restored.
func Run(game *invasion.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil && logger != nil {
		logger.Warn("could not record score", "error", m.Err())
	}
	return nil
}
