package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snakegrid/internal/board"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	texts := []string{
		DefaultBoard,
		"#######\n#d>D  #\n#   W #\n#   w #\n#######\n",
		"#####\n#d>x#\n#####\n",
		"####\n#**#\n####\n",
	}

	for _, text := range texts {
		s := mustLoad(t, text)
		if got := s.Save(); got != text {
			t.Errorf("Round trip mismatch:\nwant %q\ngot  %q", text, got)
		}
	}
}

func TestLoadReportsIllegalCharacter(t *testing.T) {
	_, err := Load("#####\n#d>D#\n#?  #\n#####\n")
	if !errors.Is(err, board.ErrIllegalCharacter) {
		t.Fatalf("Expected ErrIllegalCharacter, got %v", err)
	}
}

func TestLoadReportsMalformedChain(t *testing.T) {
	_, err := Load("#####\n#d D#\n#####\n")
	if !errors.Is(err, ErrMalformedChain) {
		t.Fatalf("Expected ErrMalformedChain, got %v", err)
	}
}

func TestLoadFileAndSaveFile(t *testing.T) {
	tmpDir := t.TempDir()
	in := filepath.Join(tmpDir, "in.txt")
	out := filepath.Join(tmpDir, "out.txt")

	if err := os.WriteFile(in, []byte(DefaultBoard), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	s, err := LoadFile(in)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(s.Snakes) != 1 {
		t.Fatalf("Expected 1 snake, got %d", len(s.Snakes))
	}

	if err := s.Step(nil); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if err := s.SaveFile(out); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}

	reloaded, err := LoadFile(out)
	if err != nil {
		t.Fatalf("LoadFile() of saved board failed: %v", err)
	}
	if reloaded.Save() != s.Save() {
		t.Error("Saved board differs from state")
	}
	// Registry is rebuilt from the board, not persisted.
	if reloaded.Snakes[0] != s.Snakes[0] {
		t.Errorf("Rebuilt snake %v differs from %v", reloaded.Snakes[0], s.Snakes[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
