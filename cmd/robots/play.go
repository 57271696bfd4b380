package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots"
	"github.com/vovakirdan/tui-robots/internal/logging"
	"github.com/vovakirdan/tui-robots/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [problem]",
	Short: "Play a problem",
	Long: `Start playing the given problem, or pick one from the menu.

Controls:
  1-4 / Tab     - Select red, blue, yellow, green / cycle
  Arrows/WASD   - Slide the selected robot
  Mouse         - Click a robot to select it, a marker to slide there
  U / R         - Undo / reset
  T             - Cycle the target color
  [ / ]         - Previous / next problem
  Esc           - Deselect
  B             - Back to the menu
  Q/Ctrl+C      - Quit

Examples:
  robots play
  robots play classic-01
  robots play --problems ./my-problems`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	var game *robots.Game
	if len(args) == 1 {
		if err := a.checkKnown(args[0]); err != nil {
			return err
		}
		game = robots.New(a.catalog)
		if err := game.SetProblem(args[0]); err != nil {
			return err
		}
	}

	// Get terminal size before the program starts
	width, height := 80, 40 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Stderr is hidden behind the alt screen while playing
	logger, closeLog := sessionLogger(a.cfg)
	defer closeLog()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Theme:  tui.NewTheme(a.cfg.Theme, nil),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: a.cfg.TickRate,
		},
		Player: localPlayer(),
	}

	if game != nil {
		err = tui.Run(game, opts)
	} else {
		err = tui.RunSession(a.catalog, opts)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// sessionLogger logs to robots.log next to the database, or nowhere when
// the file cannot be opened.
func sessionLogger(cfg config.Config) (*log.Logger, func()) {
	path := filepath.Join(filepath.Dir(config.ExpandPath(cfg.DBPath)), "robots.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logging.Discard(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Discard(), func() {}
	}
	logger, err := logging.NewWriter(f, cfg.LogLevel, "robots")
	if err != nil {
		f.Close()
		return logging.Discard(), func() {}
	}
	return logger, func() { f.Close() }
}

// localPlayer names the player of a local session.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
