package food

import (
	"testing"

	"github.com/vovakirdan/snakegrid/internal/codec"
	"github.com/vovakirdan/snakegrid/internal/sim"
)

func TestBuiltinPoliciesRegistered(t *testing.T) {
	for _, name := range []string{PolicyNone, PolicyRandom, PolicyFirstEmpty} {
		if !Exists(name) {
			t.Errorf("Expected policy %q to be registered", name)
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List not sorted: %s >= %s", list[i-1].Name, list[i].Name)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("teleport", Options{}); err == nil {
		t.Error("Expected error for unknown policy")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(PolicyNone, "", func(Options) sim.FoodPlacer { return nil })
}

func TestNonePlacesNothing(t *testing.T) {
	s := sim.DefaultState()
	p, err := Create(PolicyNone, Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := s.Step(p); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}
	if n := s.Board.Count(codec.Food); n != 0 {
		t.Errorf("Expected no food after eating with policy none, got %d", n)
	}
}

func TestFirstEmpty(t *testing.T) {
	s := sim.DefaultState()
	p, _ := Create(PolicyFirstEmpty, Options{})

	if err := p.PlaceFood(s); err != nil {
		t.Fatalf("PlaceFood() failed: %v", err)
	}
	if c, _ := s.Board.Get(1, 1); c != codec.Food {
		t.Errorf("Expected food at (1,1), got %q", c)
	}
}

func TestRandomPlacesOnEmptyCell(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := sim.DefaultState()
		before := s.Board.Clone()

		if err := NewRandom(seed).PlaceFood(s); err != nil {
			t.Fatalf("PlaceFood() failed: %v", err)
		}
		if n := s.Board.Count(codec.Food); n != 2 {
			t.Fatalf("seed %d: expected 2 food cells, got %d", seed, n)
		}

		// Exactly one previously empty cell changed.
		changed := 0
		s.Board.Scan(func(x, y int, c byte) bool {
			old, _ := before.Get(x, y)
			if old != c {
				changed++
				if old != codec.Empty || c != codec.Food {
					t.Errorf("seed %d: (%d,%d) changed %q -> %q", seed, x, y, old, c)
				}
			}
			return true
		})
		if changed != 1 {
			t.Errorf("seed %d: expected one changed cell, got %d", seed, changed)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	s1 := sim.DefaultState()
	s2 := sim.DefaultState()
	p1, _ := Create(PolicyRandom, Options{Seed: 7})
	p2, _ := Create(PolicyRandom, Options{Seed: 7})

	for i := 0; i < 3; i++ {
		//nolint:errcheck // Default board always has empty cells
		p1.PlaceFood(s1)
		//nolint:errcheck // Default board always has empty cells
		p2.PlaceFood(s2)
	}
	if s1.Save() != s2.Save() {
		t.Error("Same seed produced different food placement")
	}
}

func TestRandomFullBoard(t *testing.T) {
	s, err := sim.Load("###\n#*#\n###\n")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	before := s.Save()

	if err := NewRandom(1).PlaceFood(s); err != nil {
		t.Fatalf("PlaceFood() failed: %v", err)
	}
	if s.Save() != before {
		t.Error("Full board should be left unchanged")
	}
}
