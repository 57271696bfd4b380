package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-robots/internal/games/robots/core"
)

// errNotCleared is returned when a valid sequence leaves the target robot
// off its chip.
var errNotCleared = errors.New("sequence does not clear the problem")

var flagCheckTarget string

var checkCmd = &cobra.Command{
	Use:   "check <problem> <moves...>",
	Short: "Replay a move sequence",
	Long: `Replay moves on a problem and report whether they clear it.

A move is a robot letter followed by a direction letter: RU is red up,
BL is blue left. Moves are separated by spaces, commas or dashes. Every
move must displace its robot.

Exit status is 0 when the sequence clears the problem, 1 otherwise.

Examples:
  robots check classic-01 RD
  robots check classic-01 "BL RD" --target red
  robots check classic-02 gu-gr-yd`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagCheckTarget, "target", "red", "Target color")
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	target, ok := engine.ParseColor(flagCheckTarget)
	if !ok {
		return fmt.Errorf("unknown color %q", flagCheckTarget)
	}
	moves, err := engine.ParseMoves(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	state, err := engine.Replay(p, target, moves)
	if err != nil {
		return fmt.Errorf("invalid sequence: %w", err)
	}

	robots := state.Robots()
	for _, c := range engine.Colors {
		fmt.Printf("  %-6s %s\n", c, robots[c])
	}
	fmt.Println()

	if !state.Cleared() {
		return fmt.Errorf("%w: %s is not on its chip after %d moves", errNotCleared, target, state.MoveCount())
	}
	fmt.Printf("Cleared %s for %s in %d moves: %s\n", name, target, state.MoveCount(), engine.FormatMoves(state.History()))
	return nil
}
