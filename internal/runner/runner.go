// Package runner drives a simulation for a number of ticks and reports
// what happened on each one.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakegrid/internal/sim"
)

// Runner steps a state with a food policy.
type Runner struct {
	State    *sim.State
	Food     sim.FoodPlacer
	Logger   *log.Logger
	Interval time.Duration // Delay between ticks, 0 = none
}

// Result summarises a finished run.
type Result struct {
	Ticks    int  // Steps taken by this run
	Stopped  bool // True if the run ended early because every snake died
	Eaten    int  // Food cells consumed
	Deaths   int
	Snapshot sim.Snapshot
}

// New creates a runner. A nil logger discards output.
func New(state *sim.State, food sim.FoodPlacer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{State: state, Food: food, Logger: logger}
}

// Run steps the state up to ticks times. It stops early when no snake is
// alive and between ticks when ctx is cancelled. A step error aborts the
// run; the partial result is returned with it.
func (r *Runner) Run(ctx context.Context, ticks int) (Result, error) {
	var res Result

	var ticker *time.Ticker
	if r.Interval > 0 {
		ticker = time.NewTicker(r.Interval)
		defer ticker.Stop()
	}

	for res.Ticks < ticks {
		if r.State.AliveCount() == 0 {
			res.Stopped = true
			r.Logger.Info("all snakes dead", "tick", r.State.Tick())
			break
		}

		if ticker != nil && res.Ticks > 0 {
			select {
			case <-ctx.Done():
				res.Snapshot = r.State.Snapshot()
				return res, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			res.Snapshot = r.State.Snapshot()
			return res, err
		}

		report, err := r.State.StepWithReport(r.Food)
		if err != nil {
			res.Snapshot = r.State.Snapshot()
			return res, fmt.Errorf("tick %d: %w", r.State.Tick()+1, err)
		}
		res.Ticks++
		res.Eaten += len(report.Ate)
		res.Deaths += len(report.Died)

		r.logReport(report)
	}

	res.Snapshot = r.State.Snapshot()
	r.Logger.Debug("run finished",
		"ticks", res.Ticks,
		"alive", res.Snapshot.Alive,
		"eaten", res.Eaten,
		"deaths", res.Deaths,
	)
	return res, nil
}

func (r *Runner) logReport(report sim.StepReport) {
	tick := r.State.Tick()
	for _, i := range report.Ate {
		sn := r.State.Snakes[i]
		r.Logger.Info("snake ate", "tick", tick, "snake", i, "head", fmt.Sprintf("(%d,%d)", sn.HeadX, sn.HeadY))
	}
	for _, i := range report.Died {
		sn := r.State.Snakes[i]
		r.Logger.Warn("snake died", "tick", tick, "snake", i, "head", fmt.Sprintf("(%d,%d)", sn.HeadX, sn.HeadY))
	}
	r.Logger.Debug("tick", "tick", tick, "moved", len(report.Moved), "alive", r.State.AliveCount())
}
