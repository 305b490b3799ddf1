package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <board>",
	Short: "List the snakes on a board",
	Long: `Load a board and print every snake found on it, in the order the
simulation processes them. Use "-" to read from stdin or "default" for the
built-in board.

Examples:
  snakegrid inspect level.txt
  snakegrid default | snakegrid inspect -`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	state, name, err := loadBoard(args[0])
	if err != nil {
		logger.Error("cannot load board", "board", args[0], "error", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Board %s: %d rows, %d snakes\n", name, state.Board.Height(), len(state.Snakes))
	if len(state.Snakes) == 0 {
		return
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-5s  %-9s  %-9s  %-6s  %s\n", "Snake", "Tail", "Head", "Length", "State")
	fmt.Fprintf(out, "  %-5s  %-9s  %-9s  %-6s  %s\n", "-----", "----", "----", "------", "-----")

	for i, sn := range state.Snakes {
		length := "?"
		if n, err := sn.Len(state.Board); err == nil {
			length = fmt.Sprint(n)
		}
		status := "alive"
		if c, err := state.Board.Get(sn.HeadX, sn.HeadY); err == nil && c == codec.Dead {
			status = "dead marker"
		}
		fmt.Fprintf(out, "  %-5d  %-9s  %-9s  %-6s  %s\n", i,
			fmt.Sprintf("(%d,%d)", sn.TailX, sn.TailY),
			fmt.Sprintf("(%d,%d)", sn.HeadX, sn.HeadY),
			length, status)
	}
}
