package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled runs",
	Long: `Display the most recent runs recorded in the journal.

Examples:
  snakegrid history
  snakegrid history --limit 5
  snakegrid history show <id>`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one journaled run",
	Long:  `Print the details of a journaled run followed by its final board.`,
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a run from the journal",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

func openJournal() *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error("cannot open run journal", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	return store
}

func runHistory(cmd *cobra.Command, args []string) {
	store := openJournal()
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		logger.Error("cannot read runs", "error", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snakegrid run' to record the first one.")
		return
	}

	fmt.Fprintf(out, "  %-36s  %-16s  %-5s  %-11s  %-7s  %s\n", "ID", "Date", "Ticks", "Food", "Alive", "Board")
	fmt.Fprintf(out, "  %-36s  %-16s  %-5s  %-11s  %-7s  %s\n", "--", "----", "-----", "----", "-----", "-----")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-36s  %-16s  %-5d  %-11s  %-7s  %s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Ticks,
			r.FoodPolicy,
			fmt.Sprintf("%d/%d", r.Alive, r.Snakes),
			r.BoardName,
		)
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	store := openJournal()
	defer store.Close()

	run, err := store.RunByID(args[0])
	if err != nil {
		logger.Error("cannot read run", "id", args[0], "error", err)
		os.Exit(1)
	}
	if run == nil {
		logger.Error("run not found", "id", args[0])
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", run.ID)
	fmt.Fprintf(out, "  Date:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Board:  %s\n", run.BoardName)
	fmt.Fprintf(out, "  Ticks:  %d\n", run.Ticks)
	fmt.Fprintf(out, "  Food:   %s (seed %d)\n", run.FoodPolicy, run.Seed)
	fmt.Fprintf(out, "  Alive:  %d of %d\n", run.Alive, run.Snakes)
	fmt.Fprintln(out)
	fmt.Fprint(out, run.FinalBoard)
}

func runHistoryDelete(cmd *cobra.Command, args []string) {
	store := openJournal()
	defer store.Close()

	if err := store.DeleteRun(args[0]); err != nil {
		logger.Error("cannot delete run", "id", args[0], "error", err)
		os.Exit(1)
	}
	logger.Info("run deleted", "id", args[0])
}
