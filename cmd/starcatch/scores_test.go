package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/starcatch/internal/storage"
)

func openScores(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openScores(t)
	for _, r := range []storage.SessionResult{
		{Mode: "hard", Score: 8},
		{Mode: "hard", Score: 20, Won: true},
		{Mode: "normal", Score: 30},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}

	tests := []struct {
		name string
		mode string
		want []string
	}{
		{"populated", "hard", []string{"High Scores - hard", "Best: 20  Sessions: 2  Wins: 1"}},
		{"empty", "easy", []string{"No scores recorded yet.", "--difficulty easy"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := printScores(&buf, store, tc.mode); err != nil {
				t.Fatalf("printScores() error = %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestClearScores(t *testing.T) {
	store := openScores(t)
	store.SaveResult(storage.SessionResult{Mode: "easy", Score: 4})
	store.SaveResult(storage.SessionResult{Mode: "hard", Score: 9})

	var buf bytes.Buffer
	if err := clearScores(&buf, store, "easy"); err != nil {
		t.Fatalf("clearScores() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared all easy scores.") {
		t.Errorf("output = %q", buf.String())
	}

	if high, _ := store.HighScore("easy"); high != 0 {
		t.Errorf("HighScore(easy) = %d after clear, want 0", high)
	}
	if high, _ := store.HighScore("hard"); high != 9 {
		t.Errorf("HighScore(hard) = %d, clearing easy must keep it", high)
	}
}
