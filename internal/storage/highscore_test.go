package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestHighScoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.dat")

	store, err := NewHighScoreFile(path)
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}
	if best, err := store.Raise(17.5); err != nil || best != 17.5 {
		t.Fatalf("Raise() = %g, %v", best, err)
	}

	// A fresh instance simulates a process restart
	reloaded, _ := NewHighScoreFile(path)
	got, err := reloaded.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 17.5 {
		t.Errorf("Load() = %g, expected 17.5", got)
	}
}

func TestHighScoreFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	store, _ := NewHighScoreFile(path)

	if _, err := store.Raise(1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Raise(2); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// One big-endian float64, overwritten not appended: 2.0 = 0x4000000000000000
	want := []byte{0x40, 0, 0, 0, 0, 0, 0, 0}
	if string(data) != string(want) {
		t.Errorf("file bytes = % x, expected % x", data, want)
	}
}

func TestHighScoreMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content []byte
		write   bool
	}{
		{name: "missing", write: false},
		{name: "empty", content: []byte{}, write: true},
		{name: "short", content: []byte{0x40, 0x00, 0x00}, write: true},
		{name: "nan", content: []byte{0x7f, 0xf8, 0, 0, 0, 0, 0, 1}, write: true},
		{name: "negative", content: []byte{0xbf, 0xf0, 0, 0, 0, 0, 0, 0}, write: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".dat")
			if tc.write {
				if err := os.WriteFile(path, tc.content, 0o600); err != nil {
					t.Fatal(err)
				}
			}
			store, _ := NewHighScoreFile(path)
			got, err := store.Load()
			if !errors.Is(err, ErrNoHighScore) {
				t.Errorf("Load() error = %v, expected ErrNoHighScore", err)
			}
			if got != 0 {
				t.Errorf("Load() = %g, expected 0", got)
			}
		})
	}
}

func TestHighScoreRaiseFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file, so the write must fail
	store, _ := NewHighScoreFile(filepath.Join(blocker, "highscore.dat"))
	if _, err := store.Raise(3); err == nil {
		t.Error("Raise() under a regular file should fail")
	}
}

func TestHighScoreRaiseNeverLowers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	store, _ := NewHighScoreFile(path)

	tests := []struct {
		score float64
		want  float64
	}{
		{score: 3, want: 3},
		{score: 1, want: 3},
		{score: 3, want: 3},
		{score: 4.5, want: 4.5},
		{score: 0, want: 4.5},
	}
	for _, tc := range tests {
		best, err := store.Raise(tc.score)
		if err != nil {
			t.Fatalf("Raise(%g) failed: %v", tc.score, err)
		}
		if best != tc.want {
			t.Errorf("Raise(%g) = %g, expected %g", tc.score, best, tc.want)
		}
	}

	got, _ := store.Load()
	if got != 4.5 {
		t.Errorf("Load() = %g, expected 4.5", got)
	}
}

func TestHighScoreRaiseOverCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.dat")
	if err := os.WriteFile(path, []byte{0x40}, 0o600); err != nil {
		t.Fatal(err)
	}

	store, _ := NewHighScoreFile(path)
	if best, err := store.Raise(0.5); err != nil || best != 0.5 {
		t.Errorf("Raise() = %g, %v; expected 0.5", best, err)
	}
}

func TestHighScoreConcurrentRaise(t *testing.T) {
	store, _ := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.dat"))

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(score float64) {
			defer wg.Done()
			if _, err := store.Raise(score); err != nil {
				t.Errorf("Raise(%g) failed: %v", score, err)
			}
		}(float64(i))
	}
	wg.Wait()

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != 19 {
		t.Errorf("Load() = %g, expected 19", got)
	}
}
