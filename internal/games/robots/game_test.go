package robots

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-robots/internal/core"
	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
)

// testProblem has no interior walls except an optional one. Red starts at
// redStart and its chip is in the bottom-left corner.
func testProblem(redStart engine.Position) *engine.Problem {
	p := &engine.Problem{
		Robots: engine.RobotSet{redStart, engine.P(0, 15), engine.P(15, 15), engine.P(15, 14)},
		Chips:  engine.ChipSet{engine.P(15, 0), engine.P(1, 1), engine.P(2, 2), engine.P(3, 3)},
	}
	return p
}

func testCatalog(t *testing.T, files map[string]string) *problems.Catalog {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, text := range files {
		fsys[name+".txt"] = &fstest.MapFile{Data: []byte(text)}
	}
	c, err := problems.FromFS(fsys)
	if err != nil {
		t.Fatalf("FromFS() error = %v", err)
	}
	return c
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	c := testCatalog(t, map[string]string{
		"alpha": engine.FormatProblem(testProblem(engine.P(0, 0))),
		"beta":  engine.FormatProblem(testProblem(engine.P(3, 0))),
	})
	g := New(c)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 30})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameResetLoadsFirstProblem(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Problem != "alpha" {
		t.Errorf("Problem = %q, expected alpha", snap.Problem)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if snap.Target != engine.Red {
		t.Errorf("Target = %v, expected red", snap.Target)
	}
	if snap.HasSelected {
		t.Error("nothing should be selected after reset")
	}
}

func TestGameSelectAndMoveClears(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionSelectRed, core.ActionDown))

	if !res.State.Cleared {
		t.Fatal("sliding red onto its chip should clear the puzzle")
	}
	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", res.State.Moves)
	}
	if res.State.Solution != "RD" {
		t.Errorf("Solution = %q, expected RD", res.State.Solution)
	}
	if res.State.Problem != "alpha" || res.State.Target != "red" {
		t.Errorf("State = %+v, expected alpha/red", res.State)
	}
	if g.Snapshot().State != StateCleared {
		t.Errorf("Snapshot().State = %s, expected %s", g.Snapshot().State, StateCleared)
	}
}

func TestGameOneSlidePerFrame(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionSelectRed))

	g.Step(frame(core.ActionRight, core.ActionDown))

	snap := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", snap.Moves)
	}
	if snap.Robots[engine.Red] != engine.P(15, 0) {
		t.Errorf("red at %v, expected down to win over right", snap.Robots[engine.Red])
	}
}

func TestGameUndoAndReset(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionSelectRed, core.ActionRight))
	g.Step(frame(core.ActionDown))

	g.Step(frame(core.ActionUndo))
	if got := g.Snapshot(); got.Moves != 1 || got.Robots[engine.Red] != engine.P(0, 14) {
		t.Errorf("after undo: moves=%d red=%v, expected 1 and (0,14)", got.Moves, got.Robots[engine.Red])
	}

	g.Step(frame(core.ActionReset))
	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Robots[engine.Red] != engine.P(0, 0) {
		t.Errorf("after reset: moves=%d red=%v, expected 0 and (0,0)", snap.Moves, snap.Robots[engine.Red])
	}
	if !snap.HasSelected || snap.Selected != engine.Red {
		t.Error("reset should keep the selection")
	}
}

func TestGameProblemNavigationWraps(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionSelectRed, core.ActionRight))

	g.Step(frame(core.ActionPrevProblem))
	snap := g.Snapshot()
	if snap.Problem != "beta" {
		t.Errorf("Problem = %q, expected wrap to beta", snap.Problem)
	}
	if snap.Moves != 0 || snap.HasSelected {
		t.Error("switching problems should start a fresh attempt")
	}
	if snap.Robots[engine.Red] != engine.P(3, 0) {
		t.Errorf("red at %v, expected beta start (3,0)", snap.Robots[engine.Red])
	}

	g.Step(frame(core.ActionNextProblem))
	if got := g.Snapshot().Problem; got != "alpha" {
		t.Errorf("Problem = %q, expected alpha", got)
	}
}

func TestGameSetProblem(t *testing.T) {
	g := newTestGame(t)

	if err := g.SetProblem("beta"); err != nil {
		t.Fatalf("SetProblem(beta) error = %v", err)
	}
	if g.ProblemName() != "beta" {
		t.Errorf("ProblemName() = %q, expected beta", g.ProblemName())
	}

	err := g.SetProblem("gamma")
	if !errors.Is(err, problems.ErrNotFound) {
		t.Errorf("SetProblem(gamma) error = %v, expected ErrNotFound", err)
	}
	if g.ProblemName() != "beta" {
		t.Error("a failed SetProblem should not move the game")
	}
}

func TestGameCycleRobotAndTarget(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionCycleRobot))
	if snap := g.Snapshot(); !snap.HasSelected || snap.Selected != engine.Red {
		t.Error("first cycle should select red")
	}
	g.Step(frame(core.ActionCycleRobot))
	if snap := g.Snapshot(); snap.Selected != engine.Blue {
		t.Errorf("Selected = %v, expected blue", snap.Selected)
	}
	g.Step(frame(core.ActionDeselect))
	if g.Snapshot().HasSelected {
		t.Error("deselect should clear the selection")
	}

	for _, expected := range []engine.Color{engine.Blue, engine.Yellow, engine.Green, engine.Red} {
		g.Step(frame(core.ActionCycleTarget))
		if got := g.Snapshot().Target; got != expected {
			t.Errorf("Target = %v, expected %v", got, expected)
		}
	}
}

func TestGameClicks(t *testing.T) {
	g := newTestGame(t)
	// 80 columns center the 65-wide board at x=7; the board starts below the HUD.
	cellX := func(j int) int { return 7 + j*cellWidth + 2 }
	cellY := func(i int) int { return hudHeight + i*cellHeight + 1 }

	click := func(x, y int) {
		f := core.NewInputFrame()
		f.AddClick(x, y)
		g.Step(f)
	}

	click(cellX(0), cellY(0))
	if snap := g.Snapshot(); !snap.HasSelected || snap.Selected != engine.Red {
		t.Fatal("clicking a robot should select it")
	}

	click(cellX(5), cellY(5))
	if g.Snapshot().HasSelected {
		t.Error("clicking an empty cell should deselect")
	}

	click(cellX(0), cellY(0))
	click(7, cellY(3))
	if !g.Snapshot().HasSelected {
		t.Error("clicking a grid line should be ignored")
	}
	click(0, 0)
	if !g.Snapshot().HasSelected {
		t.Error("clicking outside the board should be ignored")
	}

	click(cellX(0), cellY(15))
	snap := g.Snapshot()
	if snap.Robots[engine.Red] != engine.P(15, 0) {
		t.Errorf("red at %v, expected slide to (15,0)", snap.Robots[engine.Red])
	}
	if snap.State != StateCleared {
		t.Errorf("State = %s, expected cleared", snap.State)
	}
}

func TestGameClickArrow(t *testing.T) {
	g := newTestGame(t)
	cellX := func(j int) int { return 7 + j*cellWidth + 2 }
	cellY := func(i int) int { return hudHeight + i*cellHeight + 1 }

	click := func(x, y int) {
		f := core.NewInputFrame()
		f.AddClick(x, y)
		g.Step(f)
	}

	click(cellX(0), cellY(0))
	// The arrow below red leads down to (15,0).
	click(cellX(0), cellY(1))

	snap := g.Snapshot()
	if snap.Robots[engine.Red] != engine.P(15, 0) {
		t.Errorf("red at %v, expected slide to (15,0)", snap.Robots[engine.Red])
	}
	if !snap.HasSelected || snap.Selected != engine.Red {
		t.Error("sliding by arrow should keep red selected")
	}
	if snap.Moves != 1 {
		t.Errorf("Moves = %d, expected 1", snap.Moves)
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(40, 20)

	res := g.Step(frame(core.ActionSelectRed, core.ActionDown))
	if !res.State.TooSmall {
		t.Error("TooSmall should be set on a small screen")
	}
	if res.State.Moves != 0 {
		t.Error("input should be ignored while the screen is too small")
	}

	screen := core.NewScreen(40, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}

	g.Resize(80, 40)
	g.Step(frame(core.ActionSelectRed, core.ActionDown))
	if !g.State().Cleared {
		t.Error("resizing back should resume play")
	}
}

func TestGameLoadError(t *testing.T) {
	c := testCatalog(t, map[string]string{"broken": "1 2 3\n"})
	g := New(c)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40})

	if !errors.Is(g.Err(), engine.ErrMalformedProblem) {
		t.Errorf("Err() = %v, expected ErrMalformedProblem", g.Err())
	}
	if g.Snapshot().State != StateNoProblem {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StateNoProblem)
	}

	res := g.Step(frame(core.ActionSelectRed, core.ActionDown))
	if res.State.Moves != 0 || res.State.Problem != "" {
		t.Errorf("State = %+v, expected no progress without a problem", res.State)
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No problem loaded") {
		t.Error("expected a load error message")
	}
}

func TestRenderBoard(t *testing.T) {
	p := testProblem(engine.P(0, 0))
	p.Walls.Horizontal[3][4] = true
	s := engine.NewState(p)
	s.Select(engine.Red)

	screen := core.NewScreen(BoardWidth, BoardHeight)
	RenderBoard(screen, 0, 0, s)

	tests := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"top-left corner", 0, 0, '┌', core.ColorWall},
		{"top-right corner", BoardWidth - 1, 0, '┐', core.ColorWall},
		{"bottom-left corner", 0, BoardHeight - 1, '└', core.ColorWall},
		{"top edge", 16, 0, '─', core.ColorWall},
		{"left edge", 0, 6, '│', core.ColorWall},
		{"open corner", 4, 2, '·', core.ColorFloor},
		{"interior wall", 16, 7, '│', core.ColorWall},
		{"wall stub above", 16, 6, '╷', core.ColorWall},
		{"wall stub below", 16, 8, '╵', core.ColorWall},
		{"selected robot", 2, 1, 'R', core.ColorRed},
		{"selection bracket", 1, 1, '[', core.ColorHighlight},
		{"blue robot", 62, 1, 'B', core.ColorBlue},
		{"blue chip", 6, 3, 'b', core.ColorBlue},
		{"chip bracket", 5, 3, '(', core.ColorBlue},
		{"red chip destination", 2, 31, 'r', core.ColorRed},
		{"destination marker on chip", 1, 31, '*', core.ColorDestination},
		{"right destination", 58, 1, '*', core.ColorDestination},
		{"down arrow", 2, 3, '↓', core.ColorDestination},
		{"right arrow", 6, 1, '→', core.ColorDestination},
		{"center block", 29, 15, '░', core.ColorRed},
		{"center interior line", 32, 16, '░', core.ColorRed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := screen.GetCell(tc.x, tc.y)
			if cell.Rune != tc.r || cell.Color != tc.color {
				t.Errorf("cell (%d, %d) = %q/%v, expected %q/%v", tc.x, tc.y, cell.Rune, cell.Color, tc.r, tc.color)
			}
		})
	}
}

func TestRenderCenterFollowsTarget(t *testing.T) {
	s := engine.NewState(testProblem(engine.P(0, 0)))
	s.SetTarget(engine.Green)

	screen := core.NewScreen(BoardWidth, BoardHeight)
	RenderBoard(screen, 0, 0, s)

	if c := screen.GetCell(30, 17).Color; c != core.ColorGreen {
		t.Errorf("center color = %v, expected green", c)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionSelectRed, core.ActionDown))

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"alpha (1/2)", "Target: RED", "Moves: 1", "** CLEAR **"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered HUD missing %q", want)
		}
	}

	// Red sits on its chip at (15, 0), origin (7, 3)
	if cell := screen.GetCell(9, 34); cell.Rune != 'R' || cell.Color != core.ColorHighlight {
		t.Errorf("cleared robot = %q/%v, expected highlighted R", cell.Rune, cell.Color)
	}
}
