package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoHighScore is returned when the high score file is missing or truncated.
var ErrNoHighScore = errors.New("storage: no high score recorded")

// Default locations, relative to the home directory.
const (
	DefaultHighScorePath = "~/.flappy/highscore.dat"
	DefaultDBPath        = "~/.flappy/runs.db"
)

// highScoreSize is the file length: one big-endian IEEE-754 float64.
const highScoreSize = 8

// HighScoreFile persists a single best score in a small binary file.
// It is safe for concurrent use, so SSH sessions can share one instance.
type HighScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewHighScoreFile returns a store for the given path. A leading ~ is expanded
// to the home directory. The file is not touched until Load or Raise.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the stored high score.
func (f *HighScoreFile) Load() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Raise stores score if it beats the stored value and returns the best of
// the two. A missing or unreadable file counts as no previous score.
func (f *HighScoreFile) Raise(score float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if stored, err := f.load(); err == nil && stored >= score {
		return stored, nil
	}
	if err := f.write(score); err != nil {
		return 0, err
	}
	return score, nil
}

func (f *HighScoreFile) load() (float64, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", ErrNoHighScore, f.path)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot open high score: %w", err)
	}
	defer file.Close()

	var buf [highScoreSize]byte
	if _, err := io.ReadFull(file, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNoHighScore, f.path, err)
	}

	score := math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return 0, fmt.Errorf("%w: %s: corrupt value %v", ErrNoHighScore, f.path, score)
	}
	return score, nil
}

func (f *HighScoreFile) write(score float64) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}

	var buf [highScoreSize]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(score))
	if err := os.WriteFile(f.path, buf[:], 0o644); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
