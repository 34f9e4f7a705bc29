package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neilkapoor/asteroid-belt/internal/core"
	"github.com/neilkapoor/asteroid-belt/internal/session"
)

// GameModel is the Bubble Tea model that drives one game session: it owns
// the tick loop, feeds input frames into the game, and hands the final score
// to the session recorder exactly once.
type GameModel struct {
	game       Game
	screen     *core.Screen
	recorder   *session.Recorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for the given game and recorder.
// A nil recorder disables persistence.
func NewGameModel(game Game, rec *session.Recorder, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if rec == nil {
		rec = session.NewRecorder(nil, "")
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:   rec,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.recorder.Begin(m.game)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.game.Quit()
		m.recorder.Finish(m.game.State().Score)
		m.quitting = true
		return m, tea.Quit
	}

	// Esc on the game over screen goes straight back to the menu; during a
	// run it flows into Step as a quit action and is picked up on tick.
	if m.inputFrame.Has(core.ActionBack) && m.gameState.GameOver {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in a
// fixed-size logical field; only the render buffer follows the terminal.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over begins a fresh session with a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.recorder.Begin(m.game)
		m.gameState = m.game.State()
		m.clearFrame()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// The recorder is idempotent, so calling every game-over tick is safe.
	if m.gameState.GameOver {
		m.recorder.Finish(m.gameState.Score)
	}

	// An in-game quit (Esc) ends the session and returns to the menu.
	if m.game.QuitRequested() {
		m.backToMenu = true
	}

	m.clearFrame()
	return m, tickCmd(m.config.TickRate)
}

// clearFrame drops both held directions and edge-triggered actions. Held
// state lasts a single tick; keyboard auto-repeat refreshes it.
func (m *GameModel) clearFrame() {
	m.inputFrame.Held = core.Held{}
	m.inputFrame.ClearActions()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// standaloneModel wraps GameModel for running outside the menu flow, where a
// back-to-menu request exits the program instead.
type standaloneModel struct {
	GameModel
}

func (m standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	inner, cmd := m.GameModel.Update(msg)
	if gm, ok := inner.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

// Run starts a standalone Bubble Tea program for the given game session.
func Run(game Game, rec *session.Recorder, cfg core.RuntimeConfig) error {
	model := standaloneModel{NewGameModel(game, rec, cfg)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
