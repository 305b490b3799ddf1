package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/sim"
)

// boardDefault names the built-in board in arguments and the journal.
const boardDefault = "default"

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in board",
	Long: `Print the built-in 20x18 board: one snake heading right along row 2
with food further along the row.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), sim.DefaultState().Save())
	},
}

// loadBoard reads a board from a file, stdin ("-") or the built-in default.
// It returns the state and the name recorded in the journal.
func loadBoard(arg string) (*sim.State, string, error) {
	switch arg {
	case "", boardDefault:
		return sim.DefaultState(), boardDefault, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading board from stdin: %w", err)
		}
		s, err := sim.Load(string(data))
		if err != nil {
			return nil, "", fmt.Errorf("loading board from stdin: %w", err)
		}
		return s, "-", nil
	default:
		s, err := sim.LoadFile(arg)
		if err != nil {
			return nil, "", err
		}
		return s, arg, nil
	}
}
