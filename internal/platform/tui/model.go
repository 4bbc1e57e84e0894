package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/registry"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

// Game screen layout
const (
	minWidthForPanel = 100 // Minimum terminal width to show the side panel
	panelWidth       = 28
)

// startLeveler is implemented by games that can start from a chosen level
// without touching package-level state.
type startLeveler interface {
	SetStart(level int)
}

// GameModel runs one game: it ticks the simulation, maps keys, persists
// scores and level runs, and draws an optional side panel.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	bar        progress.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	highScore  int
	loop       uint64
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game. A nil logger discards
// log output; a nil store disables persistence.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = true

	m := GameModel{
		game:       game,
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(panelWidth-4)),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		loop:       newTickLoop(),
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}
	m.screen = core.NewScreen(m.fieldWidth(), cfg.ScreenH)
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is scaled into whatever space is available, so a resize
		// only changes the screen buffer.
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(m.fieldWidth(), msg.Height)
		m.help.Width = panelWidth - 2
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when it is not running
	if key.Matches(msg, m.keyMapper.Keys().Back) && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleTick advances the simulation and records what happened.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.recordEvent(ev)
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// recordEvent logs a lifecycle event and stores finished level attempts.
func (m *GameModel) recordEvent(ev core.Event) {
	logger := m.logger.With("level", ev.Level, "title", ev.Title, "score", ev.Score)

	var outcome storage.Outcome
	switch ev.Kind {
	case core.EventLevelStarted:
		logger.Debug("level started")
		return
	case core.EventLevelCleared:
		logger.Info("level cleared", "radius", ev.Radius, "ticks", ev.Ticks)
		outcome = storage.OutcomeCleared
	case core.EventLevelFailed:
		logger.Info("level failed", "reason", ev.Reason, "radius", ev.Radius, "ticks", ev.Ticks)
		outcome = storage.OutcomeFailed
	case core.EventCampaignWon:
		logger.Info("campaign won")
		return
	default:
		return
	}

	if m.store == nil {
		return
	}
	_, err := m.store.RecordRun(storage.RunEntry{
		GameID:  m.game.ID(),
		Level:   ev.Level,
		Title:   ev.Title,
		Outcome: outcome,
		Reason:  ev.Reason,
		Score:   ev.Score,
		Radius:  ev.Radius,
		Ticks:   ev.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "err", err)
	}
}

// saveScore stores the final score of a finished game.
func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.highScore = max(m.highScore, m.gameState.Score)
	m.logger.Info("score saved", "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// fieldWidth is the screen width left for the game itself.
func (m GameModel) fieldWidth() int {
	if m.width >= minWidthForPanel {
		return m.width - panelWidth - 1
	}
	return m.width
}

// View renders the game, with a side panel on wide terminals.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	field := RenderScreen(m.screen)
	if m.width < minWidthForPanel {
		return field
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, field, " ", m.renderPanel())
}

// renderPanel draws the score, level progress and key help.
func (m GameModel) renderPanel() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.game.Title()))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Level"), m.gameState.Level)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Score"), m.gameState.Score)
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("Best "), max(m.highScore, m.gameState.Score))
	b.WriteString(labelStyle.Render("Progress"))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.gameState.Progress))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(panelWidth-2).
		Height(max(m.height-2, 0)).
		Padding(0, 1).
		Render(b.String())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
