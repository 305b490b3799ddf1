package sim

import (
	"fmt"
	"os"

	"github.com/vovakirdan/snakegrid/internal/board"
)

// Load parses board text and rebuilds the snake registry from it.
func Load(text string) (*State, error) {
	b, err := board.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewState(b)
}

// LoadFile reads and loads a board file.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board %s: %w", path, err)
	}
	s, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("loading board %s: %w", path, err)
	}
	return s, nil
}

// SaveFile writes the board text to path.
func (s *State) SaveFile(path string) error {
	if err := os.WriteFile(path, []byte(s.Save()), 0o644); err != nil {
		return fmt.Errorf("writing board %s: %w", path, err)
	}
	return nil
}
