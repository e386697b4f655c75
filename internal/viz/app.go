package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	"github.com/san-kum/sinkhole/internal/config"
	"github.com/san-kum/sinkhole/internal/engine"
)

type TickMsg time.Time

// Model adapts the engine controller to the Bubble Tea event loop.
type Model struct {
	ctrl          *engine.Controller
	cfg           *config.Config
	log           *clog.Logger
	width, height int
	ready         bool
	ticks         int
}

func NewModel(cfg *config.Config, logger *clog.Logger) Model {
	return Model{
		ctrl: engine.New(cfg.Padding, cfg.GetPalette()),
		cfg:  cfg,
		log:  logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.cfg.Title), m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles resize, pointer, clock and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.log.Info("quit", "ticks", m.ticks)
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height, m.ready = msg.Width, msg.Height, true
		m.ctrl.Resize(msg.Width, msg.Height)
		m.log.Debug("resize", "width", msg.Width, "height", msg.Height, "fields", m.ctrl.Chain().Len())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			return m, nil
		}
		if m.ctrl.Pointer(msg.X, msg.Y) {
			m.log.Debug("pointer", "x", msg.X, "y", msg.Y)
		}
	case TickMsg:
		m.ticks++
		m.ctrl.Tick()
		return m, m.tick()
	}
	return m, nil
}

// View renders the visible rows of the chain.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.ctrl.View(m.height)
}

// Options returns the program options for the configured mouse mode.
func Options(cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse == config.MouseCell {
		return append(opts, tea.WithMouseCellMotion())
	}
	return append(opts, tea.WithMouseAllMotion())
}

// Run starts the effect and blocks until the user quits.
func Run(cfg *config.Config, logger *clog.Logger) error {
	logger.Info("start", "padding", cfg.Padding, "palette", cfg.Palette, "tick", cfg.Tick)
	_, err := tea.NewProgram(NewModel(cfg, logger), Options(cfg)...).Run()
	return err
}
