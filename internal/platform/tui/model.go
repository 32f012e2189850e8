package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/sim"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a game session.
type Options struct {
	Width     int
	Height    int
	TickRate  int
	AIEnabled bool
}

// Model is the Bubble Tea model for a pong match. The engine and flash state
// live behind pointers so that mutations survive the value-receiver copies
// Bubble Tea makes of the model.
type Model struct {
	engine     *sim.Engine
	renderer   *Renderer
	store      *storage.Store
	keys       *KeyMapper
	flash      *flashState
	tickRate   int
	startedAt  time.Time
	matchSaved bool
	quitting   bool
}

// NewModel creates a model and its engine, wiring simulation events to the
// visual flash state.
func NewModel(params sim.Params, store *storage.Store, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	flash := &flashState{}
	events := sim.Events{
		PaddleHit: func(side sim.Side) {
			flash.paddleSide = side
			flash.paddleFrames = flashDuration
		},
		Score: func(side sim.Side) {
			flash.scoreSide = side
			flash.scoreFrames = flashDuration
		},
	}

	engine := sim.NewEngine(params, events)
	engine.SetAIEnabled(opts.AIEnabled)

	return Model{
		engine:    engine,
		renderer:  NewRenderer(opts.Width, opts.Height, engine.Params()),
		store:     store,
		keys:      NewKeyMapper(),
		flash:     flash,
		tickRate:  opts.TickRate,
		startedAt: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKeyForMode(msg, m.engine.AIEnabled())
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == sim.ActionReset {
		m.matchSaved = false
		m.startedAt = time.Now()
		*m.flash = flashState{}
	}

	m.engine.Apply(action)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.flash.decay()
	m.engine.Tick()

	snap := m.engine.Snapshot()
	if snap.GameOver && !m.matchSaved {
		m.saveMatch(snap)
		m.matchSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// saveMatch persists a finished match. Best effort: a storage failure never
// interrupts play.
func (m Model) saveMatch(snap sim.Snapshot) {
	if m.store == nil {
		return
	}

	result := storage.MatchResult{
		Mode:         "pvp",
		ScoreLeft:    snap.ScoreLeft,
		ScoreRight:   snap.ScoreRight,
		Winner:       snap.Winner.String(),
		LongestRally: snap.LongestRally,
		Duration:     int(time.Since(m.startedAt).Seconds()),
	}
	if snap.AIEnabled {
		result.Mode = "ai"
		result.Difficulty = snap.Difficulty.String()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveMatch(result)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.engine.Snapshot(), *m.flash)
}

// Run starts the Bubble Tea program for a local match.
func Run(params sim.Params, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(params, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
