package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots"
	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

// oneMoveCatalog holds problems where red reaches its chip by sliding down.
func oneMoveCatalog(t *testing.T, names ...string) *problems.Catalog {
	t.Helper()
	p := &engine.Problem{
		Robots: engine.RobotSet{engine.P(0, 0), engine.P(0, 15), engine.P(15, 15), engine.P(15, 14)},
		Chips:  engine.ChipSet{engine.P(15, 0), engine.P(1, 1), engine.P(2, 2), engine.P(3, 3)},
	}
	fsys := fstest.MapFS{}
	for _, name := range names {
		fsys[name+".txt"] = &fstest.MapFile{Data: []byte(engine.FormatProblem(p))}
	}
	c, err := problems.FromFS(fsys)
	if err != nil {
		t.Fatalf("FromFS() error = %v", err)
	}
	return c
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testOptions(store *storage.Store) Options {
	return Options{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 30},
		Player:  "ann",
		RunID:   "run-1",
	}
}

// send feeds msg to model and returns the updated model.
func send[M tea.Model](t *testing.T, m M, msg tea.Msg) M {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(M)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return out
}

// tick is the next tick of model m's loop.
func tick(m Model) tea.Msg {
	return TickMsg{ID: m.id}
}

func TestModelRecordsClearOnce(t *testing.T) {
	store := openStore(t)
	game := robots.New(oneMoveCatalog(t, "alpha"))
	m := NewModel(game, testOptions(store))
	m.Init()

	m = send(t, m, runeKey("1"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tick(m))
	m = send(t, m, tick(m))
	m = send(t, m, tick(m))

	records, err := store.ClearRecords("alpha")
	if err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected exactly 1 clear record, got %d", len(records))
	}
	r := records[0]
	if r.Moves != 1 || r.Solution != "RD" || r.Target != "red" || r.Player != "ann" || r.RunID != "run-1" {
		t.Errorf("record = %+v, expected alpha/red/1/RD/ann/run-1", r)
	}

	// Undo and clear again: a second record
	m = send(t, m, runeKey("u"))
	m = send(t, m, tick(m))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tick(m))

	records, _ = store.ClearRecords("alpha")
	if len(records) != 2 {
		t.Errorf("Expected 2 clear records after re-solving, got %d", len(records))
	}
}

func TestModelMouseSelectsAndMoves(t *testing.T) {
	store := openStore(t)
	game := robots.New(oneMoveCatalog(t, "alpha"))
	m := NewModel(game, testOptions(store))
	m.Init()

	// 80 columns put the board's left edge at x=7, its top edge at y=3.
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	m = send(t, m, press(9, 4))
	m = send(t, m, tick(m))
	m = send(t, m, press(9, 34))
	m = send(t, m, tick(m))

	if !game.State().Cleared {
		t.Error("clicking red then its destination should clear the puzzle")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	game := robots.New(oneMoveCatalog(t, "alpha"))
	m := NewModel(game, testOptions(nil))
	m.Init()

	m = send(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("b should request the menu")
	}

	m = send(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestModelViewRendersBoard(t *testing.T) {
	game := robots.New(oneMoveCatalog(t, "alpha"))
	m := NewModel(game, testOptions(nil))
	m.Init()
	m = send(t, m, tick(m))

	view := m.View()
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "Target") {
		t.Errorf("View() missing HUD, got:\n%s", view)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	catalog := oneMoveCatalog(t, "alpha", "beta")
	s := NewSessionModel(catalog, testOptions(store))

	s = send(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = send(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame {
		t.Fatalf("view = %v, expected game", s.view)
	}

	s = send(t, s, runeKey("1"))
	s = send(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = send(t, s, tick(*s.gameModel))

	s = send(t, s, runeKey("b"))
	if s.view != viewMenu {
		t.Fatalf("view = %v, expected menu after back", s.view)
	}
	if s.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, expected the last played problem", s.menu.cursor)
	}
	if item := s.menu.items[1]; item.Name != "beta" || item.Clears != 1 || item.BestMoves != 1 {
		t.Errorf("menu item = %+v, expected beta with one 1-move clear", item)
	}

	s = send(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewScores {
		t.Fatalf("view = %v, expected scores", s.view)
	}
	if s.scoreboard.currentProblem() != "beta" || len(s.scoreboard.clears) != 1 {
		t.Errorf("scoreboard on %q with %d clears, expected beta with 1", s.scoreboard.currentProblem(), len(s.scoreboard.clears))
	}

	s = send(t, s, tea.KeyMsg{Type: tea.KeyEscape})
	if s.view != viewMenu {
		t.Errorf("view = %v, expected menu after leaving scores", s.view)
	}

	s = send(t, s, runeKey("q"))
	if !s.quitting {
		t.Error("q in the menu should quit")
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	catalog := oneMoveCatalog(t, "alpha", "beta")
	s := NewSessionModel(catalog, testOptions(nil))

	s = send(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	first := *s.gameModel

	// Back and straight into another game before the old tick fires
	s = send(t, s, runeKey("b"))
	s = send(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = send(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame || s.gameModel.id == first.id {
		t.Fatalf("view = %v, model %d; expected a new game model", s.view, s.gameModel.id)
	}

	_, cmd := s.Update(tick(first))
	if cmd != nil {
		t.Error("a tick from the previous game must not start another tick loop")
	}
	_, cmd = s.Update(tick(*s.gameModel))
	if cmd == nil {
		t.Error("the current game should keep ticking")
	}
}

func TestBackStopsTickLoop(t *testing.T) {
	game := robots.New(oneMoveCatalog(t, "alpha"))
	m := NewModel(game, testOptions(nil))
	m.Init()

	m = send(t, m, runeKey("b"))
	if _, cmd := m.Update(tick(m)); cmd != nil {
		t.Error("a model heading back to the menu should stop ticking")
	}
}

func TestThemeRenderScreen(t *testing.T) {
	screen := core.NewScreen(3, 2)
	screen.DrawTextColored(0, 0, "abc", core.ColorRed)
	screen.DrawText(0, 1, "xy")

	out := NewTheme(config.Default().Theme, nil).RenderScreen(screen)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xy") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit one line per row, got %q", out)
	}
}
