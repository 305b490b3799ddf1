package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakegrid/internal/food"
	"github.com/vovakirdan/snakegrid/internal/runner"
	"github.com/vovakirdan/snakegrid/internal/storage"
)

var (
	flagTicks    int
	flagFood     string
	flagSeed     int64
	flagOut      string
	flagInterval time.Duration
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run [board]",
	Short: "Simulate a board",
	Long: `Load a board, advance every live snake once per tick and print the
resulting board. The run stops early when every snake is dead.

The board argument is a file path, "-" for stdin, or "default" (the
default when omitted). Unless --no-save is given and storage is enabled,
the run is recorded in the journal.

Food policies (see 'snakegrid foods'):
  none         - eaten food is not replaced
  random       - new food on a random empty cell (seeded by --seed)
  first-empty  - new food on the first empty cell

Examples:
  snakegrid run
  snakegrid run level.txt --ticks 20 --food none
  snakegrid run level.txt --seed 7 --out after.txt
  snakegrid run level.txt --interval 200ms --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", -1, "Ticks to simulate (default from config)")
	runCmd.Flags().StringVar(&flagFood, "food", "", "Food policy (default from config)")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for food placement (0 = config, then time)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "Write the final board to this file instead of stdout")
	runCmd.Flags().DurationVar(&flagInterval, "interval", -1, "Delay between ticks (default from config)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the journal")
}

func runRun(cmd *cobra.Command, args []string) {
	boardArg := ""
	if len(args) == 1 {
		boardArg = args[0]
	}

	state, boardName, err := loadBoard(boardArg)
	if err != nil {
		logger.Error("cannot load board", "board", boardArg, "error", err)
		os.Exit(1)
	}
	initial := state.Save()

	ticks := cfg.Simulation.Ticks
	if flagTicks >= 0 {
		ticks = flagTicks
	}
	policy := cfg.Food.Policy
	if flagFood != "" {
		policy = flagFood
	}
	seed := cfg.Simulation.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := cfg.Simulation.TickInterval()
	if flagInterval >= 0 {
		interval = flagInterval
	}

	if !food.Exists(policy) {
		logger.Error("unknown food policy", "policy", policy)
		fmt.Fprintln(os.Stderr, "Run 'snakegrid foods' to see available policies.")
		os.Exit(1)
	}
	placer, err := food.Create(policy, food.Options{Seed: seed})
	if err != nil {
		logger.Error("cannot create food policy", "policy", policy, "error", err)
		os.Exit(1)
	}

	logger.Info("starting run",
		"board", boardName,
		"snakes", len(state.Snakes),
		"ticks", ticks,
		"food", policy,
		"seed", seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(state, placer, logger)
	r.Interval = interval
	res, runErr := r.Run(ctx, ticks)
	if runErr != nil {
		logger.Error("run aborted", "ticks", res.Ticks, "error", runErr)
	}

	if flagOut != "" {
		if err := state.SaveFile(flagOut); err != nil {
			logger.Error("cannot write board", "error", err)
			os.Exit(1)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), state.Save())
	}

	logger.Info("run finished",
		"ticks", res.Ticks,
		"alive", res.Snapshot.Alive,
		"snakes", len(state.Snakes),
		"eaten", res.Eaten,
	)

	if cfg.Storage.Enabled && !flagNoSave {
		saveRun(storage.Run{
			BoardName:    boardName,
			Ticks:        res.Ticks,
			Seed:         seed,
			FoodPolicy:   policy,
			Snakes:       len(state.Snakes),
			Alive:        res.Snapshot.Alive,
			InitialBoard: initial,
			FinalBoard:   res.Snapshot.Board,
		})
	}

	if runErr != nil {
		os.Exit(1)
	}
}

// saveRun records a run in the journal. Failures are logged; the run
// itself already succeeded.
func saveRun(run storage.Run) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run journal", "path", cfg.Storage.Path, "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
