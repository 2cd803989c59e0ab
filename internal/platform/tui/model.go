package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/interval"
)

// fullHelpLines is the height of the expanded help view (one row per binding
// in the longest FullHelp column).
const fullHelpLines = 4

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Game    config.SnakeConfig
	Runtime core.RuntimeConfig
	// Logger receives lifecycle events and scheduler warnings.
	// Nil discards them.
	Logger *log.Logger
	// Clock drives the scheduler and the FPS counter. Nil means the system clock.
	Clock interval.Clock
}

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	game    config.SnakeConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	clock   interval.Clock

	session *session
	fps     *interval.FrameCounter
	screen  *core.Screen
	keys    KeyMap
	help    help.Model

	loggedOver bool
	quitting   bool
}

// NewModel creates a model and starts its first game.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = interval.SystemClock
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = clock.Now().UnixNano()
	}

	m := Model{
		game:    opts.Game,
		runtime: rt,
		logger:  logger,
		clock:   clock,
		fps:     interval.NewFrameCounter(clock),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = rt.ScreenW
	m.screen = core.NewScreen(rt.ScreenW, rt.ScreenH-m.helpLines())
	m.session = newSession(m.game, rt.Seed, clock, logger)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"seed", m.session.seed,
		"width", m.game.Grid.Width,
		"height", m.game.Grid.Height,
		"steps_per_second", m.game.Simulation.StepsPerSecond,
	)
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey maps a key press to an engine command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.session.engine
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", engine.Stats().Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		engine.Up()
	case key.Matches(msg, m.keys.Right):
		engine.Right()
	case key.Matches(msg, m.keys.Down):
		engine.Down()
	case key.Matches(msg, m.keys.Left):
		engine.Left()
	case key.Matches(msg, m.keys.Pause):
		engine.TogglePause()
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
	}
	return m, nil
}

// handleFrame polls the scheduler once per driver frame. The simulation
// holds while the board does not fit on screen.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.boardVisible() {
		m.session.scheduler.Poll()
	}
	m.fps.Tick()

	engine := m.session.engine
	if engine.GameOver() && !m.loggedOver {
		m.logger.Info("game over",
			"score", engine.Stats().Score,
			"length", engine.State().Player.Length,
		)
		m.logger.Debug("final state", "state", engine.DebugState())
		m.loggedOver = true
	}

	return m, frameCmd(m.runtime.FrameRate)
}

// reset replaces the engine and its scheduler with fresh ones.
func (m *Model) reset() {
	seed := m.clock.Now().UnixNano()
	m.session = newSession(m.game, seed, m.clock, m.logger)
	m.loggedOver = false
	m.logger.Info("game reset", "seed", seed)
}

// boardVisible reports whether the screen is large enough for the board.
func (m Model) boardVisible() bool {
	minW, minH := MinScreenSize(m.session.engine.Width(), m.session.engine.Height())
	return m.screen.Width() >= minW && m.screen.Height() >= minH
}

func (m *Model) helpLines() int {
	if m.help.ShowAll {
		return fullHelpLines
	}
	return 1
}

// resizeScreen fits the screen buffer above the help view.
func (m *Model) resizeScreen() {
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH-m.helpLines())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.session.frame(m.fps.FPS()))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
