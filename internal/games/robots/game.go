// Package robots adapts the sliding-robot puzzle engine to the platform's
// Step/Render contract: it owns the problem catalog, the current problem
// and the puzzle state, and translates input actions and pointer clicks
// into state transitions.
package robots

import (
	"fmt"

	"github.com/vovakirdan/tui-robots/internal/core"
	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
)

// ID is the identifier used for score storage.
const ID = "robots"

// Game implements core.Game for the puzzle.
type Game struct {
	catalog *problems.Catalog
	index   int
	state   *engine.State
	loadErr error

	screenW  int
	screenH  int
	tooSmall bool
	origin   layout
}

// New creates a game over catalog, positioned on its first problem.
// Nothing is loaded until Reset is called.
func New(catalog *problems.Catalog) *Game {
	return &Game{
		catalog: catalog,
		state:   engine.NewState(nil),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ricochet Robots"
}

// SetProblem positions the game on the named problem and loads it.
func (g *Game) SetProblem(name string) error {
	i := g.catalog.Index(name)
	if i < 0 {
		return fmt.Errorf("robots: %q: %w", name, problems.ErrNotFound)
	}
	g.index = i
	g.load()
	return g.loadErr
}

// Reset reloads the current problem from scratch for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.load()
}

// Resize adapts the layout without touching puzzle progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.origin = layout{
		x: core.Clamp((w-boardW)/2, 0, w),
		y: hudHeight,
	}
}

// load (re)parses the current problem. A parse failure leaves an empty
// board and keeps the error for display.
func (g *Game) load() {
	if g.catalog == nil || g.catalog.Len() == 0 {
		g.loadErr = fmt.Errorf("robots: no problems available: %w", problems.ErrNotFound)
		g.state.Load(nil)
		return
	}
	p, err := g.catalog.LoadAt(g.index)
	g.loadErr = err
	g.state.Load(p)
}

// ProblemName returns the name of the problem the game is positioned on.
func (g *Game) ProblemName() string {
	if g.catalog == nil {
		return ""
	}
	return g.catalog.Name(g.index)
}

// Err returns the error from the last problem load, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Puzzle exposes the underlying puzzle state.
func (g *Game) Puzzle() *engine.State {
	return g.state
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNextProblem):
		g.stepProblem(1)
	case in.Has(core.ActionPrevProblem):
		g.stepProblem(-1)
	}

	if in.Has(core.ActionCycleTarget) {
		g.state.SetTarget(g.state.Target().Next())
	}

	for _, sel := range selectActions {
		if in.Has(sel.action) {
			g.state.Select(sel.color)
		}
	}
	if in.Has(core.ActionCycleRobot) {
		g.cycleRobot()
	}
	if in.Has(core.ActionDeselect) {
		g.state.Deselect()
	}

	if in.Has(core.ActionUndo) {
		g.state.Undo()
	}
	if in.Has(core.ActionReset) {
		g.state.Reset()
	}

	// One slide per frame.
	for _, m := range moveActions {
		if in.Has(m.action) {
			g.state.Move(m.dir)
			break
		}
	}

	for _, c := range in.Clicks {
		g.click(c.X, c.Y)
	}

	return core.StepResult{State: g.State()}
}

var selectActions = []struct {
	action core.Action
	color  engine.Color
}{
	{core.ActionSelectRed, engine.Red},
	{core.ActionSelectBlue, engine.Blue},
	{core.ActionSelectYellow, engine.Yellow},
	{core.ActionSelectGreen, engine.Green},
}

var moveActions = []struct {
	action core.Action
	dir    engine.Direction
}{
	{core.ActionUp, engine.Up},
	{core.ActionDown, engine.Down},
	{core.ActionLeft, engine.Left},
	{core.ActionRight, engine.Right},
}

func (g *Game) stepProblem(delta int) {
	if g.catalog == nil || g.catalog.Len() == 0 {
		return
	}
	g.index = g.catalog.Wrap(g.index + delta)
	g.load()
}

// cycleRobot selects the robot after the selected one, or red.
func (g *Game) cycleRobot() {
	c, ok := g.state.Selected()
	if !ok {
		g.state.Select(engine.Red)
		return
	}
	g.state.Select(c.Next())
}

// click handles a pointer press: a robot toggles its selection, a
// destination of the selected robot or the arrow cell next to it slides
// it there, any other board cell drops the selection. Presses outside the
// board are ignored.
func (g *Game) click(x, y int) {
	p, ok := g.origin.cellAt(x, y)
	if !ok {
		return
	}
	if g.state.Problem() == nil {
		return
	}
	if c, ok := g.state.Robots().At(p); ok {
		g.state.Select(c)
		return
	}
	for _, d := range g.state.Destinations() {
		if d.Position == p {
			g.state.MoveToward(p.I, p.J)
			return
		}
	}
	if d, ok := arrowAt(g.state, p); ok {
		g.state.Move(d)
		return
	}
	g.state.Deselect()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Target:   g.state.Target().String(),
		Moves:    g.state.MoveCount(),
		Cleared:  g.state.Cleared(),
		TooSmall: g.tooSmall,
	}
	if p := g.state.Problem(); p != nil {
		gs.Problem = p.Name
		gs.Solution = engine.FormatMoves(g.state.History())
	}
	return gs
}
