package chomp

import (
	"fmt"
	"math"
	"time"

	"github.com/chomp-tui/chomp/internal/config"
	"github.com/chomp-tui/chomp/internal/core"
)

// GameID is the identifier used by the CLI and logging.
const GameID = "chomp"

// configPath is set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the game config file path for subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the simulation World to the platform's Game interface:
// it maps input frames to keyboard state, drives the fixed tick, and
// renders the world into the cell screen buffer.
type Game struct {
	params Params
	world  *World

	// configFile is the config path resolved by the last Reset, carried
	// so a restart rebuilds the same session, not the defaults.
	configFile string

	screenW   int
	screenH   int
	hudHeight int
	tooSmall  bool

	paused bool
	err    error

	// lastEvents holds the collision notifications from the most recent
	// tick. They expire on the next tick, so consumers poll after Step.
	lastEvents []CollisionEvent
}

// New creates a new chomp game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomp"
}

// Reset initializes or restarts the session: loads the config, validates
// it, and rebuilds the world. A config or construction error is fatal for
// the session and surfaces through State().GameOver and Err().
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.paused = false
	g.err = nil
	g.world = nil
	g.lastEvents = nil

	path := cfg.Config
	if path == "" {
		path = configPath
	}
	g.configFile = path
	fileCfg, err := config.LoadChomp(path)
	if err != nil {
		g.err = fmt.Errorf("chomp: %w", err)
		return
	}

	params := paramsFromConfig(fileCfg)
	if cfg.TickRate > 0 {
		params.TickRate = cfg.TickRate
	}
	g.params = params

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := NewWorld(params, seed)
	if err != nil {
		g.err = err
		return
	}
	g.world = world

	g.tooSmall = g.screenW < 40 || g.screenH < g.hudHeight+10
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		seed := int64(0)
		if g.world != nil {
			seed = g.world.rng.Int63()
		}
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.params.TickRate,
			Seed:     seed,
			Config:   g.configFile,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.err != nil || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	input := Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}

	if err := g.world.Step(input); err != nil {
		// Invariant violation: abort the session loudly, do not limp on.
		g.err = err
		g.lastEvents = nil
		return core.StepResult{State: g.State()}
	}

	g.lastEvents = g.world.DrainEvents()
	return core.StepResult{State: g.State()}
}

// Events returns the collision notifications emitted by the most recent
// tick. Nothing consumes them yet; this is the extension seam for scoring
// and audio.
func (g *Game) Events() []CollisionEvent {
	return g.lastEvents
}

// Err returns the fatal session error, if any.
func (g *Game) Err() error {
	return g.err
}

// World exposes the underlying simulation state.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.FoodEaten()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.err != nil,
		Paused:   g.paused,
	}
}

// --- Rendering ---

// Render draws the HUD and the world into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Simulation fault", g.err.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Walls below food below player, so the player stays visible on overlap.
	g.renderKind(dst, KindWall, '#', core.ColorGray)
	g.renderKind(dst, KindFood, '*', core.ColorBrightGreen)
	g.renderKind(dst, KindPlayer, 'O', core.ColorGreen)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d", g.Title(), g.State().Score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderKind(dst *core.Screen, kind Kind, symbol rune, color core.Color) {
	for _, e := range g.world.Entities() {
		if e.Kind != kind {
			continue
		}
		dst.DrawRect(g.cellRect(dst, e.Rect()), symbol, color)
	}
}

// cellRect maps a world rectangle to screen cells. The arena's outer box
// (walls included) is stretched over the drawable area below the HUD; the
// vertical axis flips because world +y is up and screen y grows down.
func (g *Game) cellRect(dst *core.Screen, r Rect) core.Rect {
	p := g.params
	outerMinX := p.LeftWall - p.WallThickness/2
	outerMaxY := p.TopWall + p.WallThickness/2
	outerW := p.ArenaWidth() + p.WallThickness
	outerH := p.ArenaHeight() + p.WallThickness

	gridW := dst.Width()
	gridH := dst.Height() - g.hudHeight

	rMin, rMax := r.Min(), r.Max()
	x0 := int(math.Floor((rMin.X - outerMinX) / outerW * float64(gridW)))
	x1 := int(math.Ceil((rMax.X - outerMinX) / outerW * float64(gridW)))
	y0 := int(math.Floor((outerMaxY - rMax.Y) / outerH * float64(gridH)))
	y1 := int(math.Ceil((outerMaxY - rMin.Y) / outerH * float64(gridH)))

	return core.Rect{
		X: x0,
		Y: g.hudHeight + y0,
		W: core.Max(1, x1-x0),
		H: core.Max(1, y1-y0),
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
