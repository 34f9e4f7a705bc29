package dodge

import (
	"fmt"

	"github.com/neilkapoor/asteroid-belt/internal/config"
	"github.com/neilkapoor/asteroid-belt/internal/core"
)

// Phase is the driver state machine: Idle until Reset, Running while the
// session is live, Over after lives run out or an explicit quit.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// Game implements the dodge game simulation. All mutation happens inside
// Step; the platform drives it at a fixed tick rate and renders afterwards.
type Game struct {
	player    *Player
	entities  []*Entity
	spawner   *Spawner
	cfg       config.DodgeConfig
	runtime   core.RuntimeConfig
	phase     Phase
	score     int
	lives     int
	highScore int
	paused    bool
	tickCount int
	quit      bool // Session ended by explicit quit rather than lost lives
}

// configPath and preset are set via the CLI before game creation.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by CLI name. Unknown names
// leave the loaded config untouched.
func SetDifficultyPreset(name string) {
	if p, ok := config.ParsePreset(name); ok {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// New creates a new dodge game instance in the Idle phase.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroid Belt"
}

// Reset initializes or restarts a session. Starting while already Running
// restarts cleanly: the active set is cleared, score and lives return to
// their initial values, and the spawner is reseeded.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDodgePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.player = NewPlayer(
		cfg.Field.Width,
		cfg.Field.Height-cfg.Player.BottomOffset,
		cfg.Player.Width,
		cfg.Player.Height,
	)
	g.entities = g.entities[:0]
	g.score = 0
	g.lives = cfg.Rules.StartLives
	g.paused = false
	g.quit = false
	g.tickCount = 0

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, &g.cfg)
	} else {
		g.spawner.Reset(runtime.Seed)
	}

	g.phase = PhaseRunning
}

// Step advances the simulation by one fixed tick:
// resolve held input, move and clamp the ship, advance the spawn timer, run
// the collision pass, apply score and life changes. Ticks while Idle, Over,
// or paused do nothing beyond handling pause/quit edges.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	// Quit is edge-triggered and wins over everything else this tick.
	if in.Has(core.ActionBack) {
		g.Quit()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Opposing held keys cancel; exactly one gives full speed.
	switch {
	case in.Held.Left && !in.Held.Right:
		g.player.SetVelX(-g.cfg.Player.Speed)
	case in.Held.Right && !in.Held.Left:
		g.player.SetVelX(g.cfg.Player.Speed)
	default:
		g.player.SetVelX(0)
	}
	g.player.Update()

	if e := g.spawner.MaybeSpawn(g.cfg.Field.Width); e != nil {
		g.entities = append(g.entities, e)
	}

	kept, events := advance(g.entities, g.player.Bounds(), g.cfg.Field.Height)
	g.entities = kept

	for _, ev := range events {
		switch ev {
		case EventHeartCollected:
			g.lives++
		case EventAsteroidHit:
			g.lives--
			if g.lives <= 0 {
				g.phase = PhaseOver
			}
		case EventAsteroidDodged:
			g.score += g.cfg.Rules.DodgePoints
		}
	}

	if g.score > g.highScore {
		g.highScore = g.score
	}

	return core.StepResult{State: g.State()}
}

// Quit ends the session immediately. Idempotent: quitting while Idle or
// already Over is a no-op.
func (g *Game) Quit() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseOver
	g.quit = true
}

// QuitRequested reports whether the session ended by explicit quit.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// CurrentPhase returns the driver state.
func (g *Game) CurrentPhase() Phase {
	return g.phase
}

// SetHighScore seeds the in-memory best from persisted history. Called once
// per session by the persistence boundary; the game only compares in memory
// and never writes history itself.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// State returns the platform-visible state. Lives are clamped so a consumer
// never renders a negative count.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     core.Max(0, g.lives),
		GameOver:  g.phase == PhaseOver,
		Paused:    g.paused,
	}
}

// Render draws the current frame into the screen buffer, scaling the pixel
// field to the buffer's cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	snap := g.Snapshot()
	fieldW, fieldH := g.cfg.Field.Width, g.cfg.Field.Height

	for _, e := range snap.Entities {
		ch, col := '▒', core.ColorGray
		if e.Kind == KindHeart {
			ch, col = '♥', core.ColorBrightBlue
		}
		dst.DrawRect(scaleRect(e.Rect, fieldW, fieldH, dst.Width(), dst.Height()), ch, col)
	}

	shipRect := scaleRect(snap.Player, fieldW, fieldH, dst.Width(), dst.Height())
	dst.DrawRect(shipRect, '▲', core.ColorBrightWhite)

	// HUD: score left, best centered, lives as hearts on the right. The
	// first three hearts are the base lives, extras render in blue.
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf(" Best: %d ", snap.HighScore))
	x := dst.Width() - 2
	for i := 0; i < snap.ExtraLives; i++ {
		dst.SetColored(x, 0, '♥', core.ColorBrightBlue)
		x -= 2
	}
	for i := 0; i < snap.BaseLives; i++ {
		dst.SetColored(x, 0, '♥', core.ColorRed)
		x -= 2
	}

	dst.DrawText(1, dst.Height()-1, " ←/→ move   Esc menu   P pause ")

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// scaleRect maps a field-pixel rectangle onto the cell grid, keeping every
// on-field object at least one cell large.
func scaleRect(r core.Rect, fieldW, fieldH, screenW, screenH int) core.Rect {
	sx := func(v int) int { return v * screenW / fieldW }
	sy := func(v int) int { return v * screenH / fieldH }
	return core.Rect{
		X: sx(r.X),
		Y: sy(r.Y),
		W: core.Max(1, sx(r.W)),
		H: core.Max(1, sy(r.H)),
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
