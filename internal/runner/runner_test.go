package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakegrid/internal/food"
	"github.com/vovakirdan/snakegrid/internal/sim"
)

func TestRunStopsWhenAllDead(t *testing.T) {
	state := sim.DefaultState()
	r := New(state, nil, nil)

	res, err := r.Run(context.Background(), 1000)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Head starts at x=4 and dies against the wall at x=19: 14 moves, then death.
	if res.Ticks != 15 {
		t.Errorf("Expected 15 ticks, got %d", res.Ticks)
	}
	if !res.Stopped {
		t.Error("Expected run to stop early")
	}
	if res.Eaten != 1 || res.Deaths != 1 {
		t.Errorf("Expected 1 eaten and 1 death, got %d and %d", res.Eaten, res.Deaths)
	}
	if res.Snapshot.Alive != 0 {
		t.Errorf("Expected no live snakes, got %d", res.Snapshot.Alive)
	}
}

func TestRunTickLimit(t *testing.T) {
	state := sim.DefaultState()
	p, err := food.Create(food.PolicyFirstEmpty, food.Options{})
	if err != nil {
		t.Fatalf("food.Create() failed: %v", err)
	}

	res, err := New(state, p, nil).Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 3 || res.Stopped {
		t.Errorf("Expected 3 ticks without early stop, got %d (stopped=%v)", res.Ticks, res.Stopped)
	}
	if res.Snapshot.Tick != 3 {
		t.Errorf("Expected snapshot at tick 3, got %d", res.Snapshot.Tick)
	}
}

func TestRunLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := New(sim.DefaultState(), nil, logger).Run(context.Background(), 100)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"snake ate", "snake died", "all snakes dead"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(sim.DefaultState(), nil, nil).Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if res.Ticks != 0 {
		t.Errorf("Expected no ticks after cancellation, got %d", res.Ticks)
	}
}

func TestRunWithInterval(t *testing.T) {
	r := New(sim.DefaultState(), nil, nil)
	r.Interval = time.Millisecond

	res, err := r.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", res.Ticks)
	}
}

func TestRunPropagatesStepError(t *testing.T) {
	state := sim.DefaultState()
	boom := errors.New("boom")
	p := sim.FoodFunc(func(*sim.State) error { return boom })

	res, err := New(state, p, nil).Run(context.Background(), 10)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected food error, got %v", err)
	}
	if res.Ticks != 4 {
		t.Errorf("Expected 4 completed ticks before the error, got %d", res.Ticks)
	}
}
