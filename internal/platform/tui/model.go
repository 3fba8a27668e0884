package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/logging"
	"github.com/vovakirdan/tui-runner/internal/render"
)

// Options configures a Model beyond the game and runtime config.
type Options struct {
	Clock         core.Clock         // Defaults to the system clock
	Renderer      *lipgloss.Renderer // Nil uses the stdout renderer
	Logger        *log.Logger
	ScreenshotDir string // Empty disables screenshots
	Pixel         bool   // Nearest-neighbour downsampling
}

// Model is the Bubble Tea model that runs the game at a fixed rate.
type Model struct {
	game      *runner.Game
	config    core.RuntimeConfig
	interval  time.Duration
	clock     core.Clock
	logger    *log.Logger
	canvas    *render.Canvas
	presenter *render.Presenter
	styler    *render.Styler
	screen    *core.Screen
	input     *InputBuffer
	keys      KeyMap
	help      help.Model
	state     runner.State
	shotDir   string
	status    string // Last platform message, e.g. a saved screenshot
	muted     lipgloss.Style
	quitting  bool
}

// NewModel creates a model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	presenter := render.NewPresenter()
	if opts.Pixel {
		presenter = render.NewPixelPresenter()
	}

	rc := game.Config()
	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		config:    cfg,
		interval:  tickInterval(cfg.TickRate),
		clock:     opts.Clock,
		logger:    opts.Logger,
		canvas:    render.NewCanvas(rc.Window.Width, rc.Window.Height),
		presenter: presenter,
		styler:    render.NewStyler(opts.Renderer),
		screen:    core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		input:     NewInputBuffer(rc.Input.HoldWindow),
		keys:      DefaultKeyMap(),
		help:      h,
		state:     game.State(),
		shotDir:   opts.ScreenshotDir,
		muted:     opts.Renderer.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// fieldHeight leaves one row for the status line.
func fieldHeight(rows int) int {
	return core.Max(rows-1, 0)
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.interval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions for the next tick. Quit is queued too, so
// the tick in progress always completes before the program exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.input.Press(m.keys.Action(msg), m.clock.Now())
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input.Frame(m.clock.Now()))
	m.state = res.State

	if res.Quit {
		m.logger.Info("quit", "attempt", m.state.Attempt, "score", m.state.Score, "best", m.state.Best)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current frame to a PNG file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.canvas.Begin()
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}
	name := fmt.Sprintf("%s_%s.png", m.game.ID(), m.clock.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, m.canvas.Image()); err != nil {
		m.logger.Warn("cannot encode screenshot", "error", err)
		return
	}
	m.status = "saved " + name
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame and a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.game.Render(m.canvas)
	m.presenter.Present(m.canvas, m.screen)

	return m.styler.Render(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	st := m.state
	info := fmt.Sprintf("best %d  run %d  speed x%.2f", st.Best, st.Attempt, st.Multiplier)
	if m.status != "" {
		info += "  " + m.status
	}
	return m.muted.Render(info) + "  " + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() runner.State {
	return m.state
}

// IsQuitting returns true once quit has been processed.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *runner.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
