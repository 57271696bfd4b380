package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/games/robots"
	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
	"github.com/vovakirdan/tui-robots/internal/platform/tui"
)

var (
	flagShowRaw    bool
	flagShowPlain  bool
	flagShowTarget string
	flagShowSelect string
)

var showCmd = &cobra.Command{
	Use:   "show <problem>",
	Short: "Print a problem's board",
	Long: `Print the board of a problem. Colors are used when stdout is a terminal.

Examples:
  robots show classic-01
  robots show classic-01 --target blue --select blue
  robots show classic-01 --raw > classic-01.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRaw, "raw", false, "Print the problem text format instead of the board")
	showCmd.Flags().BoolVar(&flagShowPlain, "plain", false, "Never use colors")
	showCmd.Flags().StringVar(&flagShowTarget, "target", "red", "Target color tinting the center block")
	showCmd.Flags().StringVar(&flagShowSelect, "select", "", "Select a robot and mark its destinations")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	if err := a.checkKnown(name); err != nil {
		return err
	}

	p, err := a.catalog.Load(name)
	if err != nil {
		return err
	}

	if flagShowRaw {
		fmt.Print(engine.FormatProblem(p))
		return nil
	}

	target, ok := engine.ParseColor(flagShowTarget)
	if !ok {
		return fmt.Errorf("unknown color %q", flagShowTarget)
	}

	state := engine.NewState(p)
	state.SetTarget(target)
	if flagShowSelect != "" {
		c, ok := engine.ParseColor(flagShowSelect)
		if !ok {
			return fmt.Errorf("unknown color %q", flagShowSelect)
		}
		state.Select(c)
	}

	screen := core.NewScreen(robots.BoardWidth, robots.BoardHeight)
	robots.RenderBoard(screen, 0, 0, state)

	fmt.Println(name)
	if flagShowPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(screen.String())
		return nil
	}
	fmt.Println(tui.NewTheme(a.cfg.Theme, nil).RenderScreen(screen))
	return nil
}
