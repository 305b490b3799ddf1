package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/food"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List food placement policies",
	Long:  `Shows the policies that decide where new food appears after a snake eats.`,
	Args:  cobra.NoArgs,
	Run:   runFoods,
}

func runFoods(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	policies := food.List()

	if len(policies) == 0 {
		fmt.Fprintln(out, "No food policies available.")
		return
	}

	fmt.Fprintln(out, "Food policies:")
	fmt.Fprintln(out)

	maxLen := 4 // "Name" header
	for _, p := range policies {
		if len(p.Name) > maxLen {
			maxLen = len(p.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----------")
	for _, p := range policies {
		marker := ""
		if p.Name == cfg.Food.Policy {
			marker = " (configured)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxLen, p.Name, p.Description, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snakegrid run --food <name>' to pick one.")
}
