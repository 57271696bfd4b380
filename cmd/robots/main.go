// robots is a terminal sliding-robot puzzle.
//
// Usage:
//
//	robots list                      - List the problems in the catalog
//	robots play [problem]            - Play a problem, or pick one from the menu
//	robots show <problem>            - Print a problem's board
//	robots check <problem> <moves>   - Replay a move sequence and report the result
//	robots scores [problem]          - Show recorded clears
//	robots serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file layered over the defaults
//	--problems <dir>    - Problem directory (default: built-in problems)
//	--db <path>         - Clear records database (default: ~/.robots/robots.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--fps <rate>        - UI tick rate
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/games/robots/problems"
	"github.com/vovakirdan/tui-robots/internal/logging"
	"github.com/vovakirdan/tui-robots/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagProblems string
	flagDBPath   string
	flagLogLevel string
	flagFPS      int
)

// Commands return their errors; main is the only place that exits, so
// deferred closes in the commands always run.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "robots",
	SilenceUsage:  true,
	SilenceErrors: true,
	Short: "Ricochet Robots - slide robots to their targets in your terminal",
	Long: `Ricochet Robots is a sliding puzzle: robots move in straight lines
until they hit a wall, the center block or another robot. Bring the
target-colored robot onto its chip.

Available commands:
  list     - Show all problems
  play     - Play a problem, or pick one from the menu
  show     - Print a problem's board
  check    - Replay a move sequence
  scores   - View recorded clears
  serve    - Start SSH server for remote play

Examples:
  robots list
  robots play classic-01
  robots show classic-02 --select red
  robots check classic-01 "RD BL"
  robots serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProblems, "problems", "", "Problem directory (default: built-in problems)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to clear records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// app holds what every command works with.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *problems.Catalog
}

// loadApp loads the config, applies flags that were set explicitly, then
// any command-specific overrides, validates the result and opens the
// problem catalog.
func loadApp(cmd *cobra.Command, overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("problems") {
		cfg.ProblemsDir = flagProblems
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, "robots")
	if err != nil {
		return nil, err
	}

	catalog := problems.Embedded()
	if cfg.ProblemsDir != "" {
		catalog, err = problems.Open(config.ExpandPath(cfg.ProblemsDir))
		if err != nil {
			return nil, fmt.Errorf("opening problems: %w", err)
		}
	}
	logger.Debug("catalog loaded", "problems", catalog.Len(), "dir", cfg.ProblemsDir)

	return &app{cfg: cfg, logger: logger, catalog: catalog}, nil
}

// openStore opens the clear records database. The game still works without
// it, so a failure is only a warning.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		a.logger.Warn("clear records unavailable", "db", a.cfg.DBPath, "error", err)
		return nil
	}
	return store
}

// checkKnown rejects names missing from the catalog with a hint.
func (a *app) checkKnown(name string) error {
	if a.catalog.Index(name) < 0 {
		return fmt.Errorf("unknown problem %q (run 'robots list' to see available problems): %w", name, problems.ErrNotFound)
	}
	return nil
}
