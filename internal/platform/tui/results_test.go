package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/starcatch/internal/screens"
	"github.com/vovakirdan/starcatch/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreResultsSkipsEmptySessions(t *testing.T) {
	store := openStore(t)
	results := NewStoreResults(store, "normal", "")

	if err := results.RecordResult(screens.Result{Score: 4}); err != nil {
		t.Fatalf("RecordResult() error = %v", err)
	}
	rows, err := results.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0 for a session with no ticks", len(rows))
	}
}

func TestStoreResultsRoundTrip(t *testing.T) {
	store := openStore(t)
	results := NewStoreResults(store, "hard", "")

	for _, r := range []screens.Result{
		{Score: 20, Won: true, Ticks: 900, Duration: 15 * time.Second, InputMode: "pad"},
		{Score: 3, Ticks: 120, Duration: 2 * time.Second, InputMode: "keyboard"},
	} {
		if err := results.RecordResult(r); err != nil {
			t.Fatalf("RecordResult() error = %v", err)
		}
	}

	rows, err := results.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Score != 20 || !rows[0].Won {
		t.Errorf("top row = %+v, want the won session first", rows[0])
	}
	if got := results.Heading(); got != "High Scores" {
		t.Errorf("Heading() = %q, want High Scores", got)
	}

	high, err := store.HighScore("hard")
	if err != nil {
		t.Fatalf("HighScore() error = %v", err)
	}
	if high != 20 {
		t.Errorf("HighScore(hard) = %d, want 20", high)
	}
}

func TestStoreResultsPlayerSeesOwnRuns(t *testing.T) {
	store := openStore(t)
	alice := NewStoreResults(store, "normal", "alice")
	bob := NewStoreResults(store, "normal", "bob")

	steps := []struct {
		sink  StoreResults
		score int
	}{
		{alice, 20},
		{bob, 25},
		{alice, 4},
	}
	for _, st := range steps {
		if err := st.sink.RecordResult(screens.Result{Score: st.score, Ticks: 60}); err != nil {
			t.Fatalf("RecordResult() error = %v", err)
		}
	}

	rows, err := alice.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want only alice's 2 runs", len(rows))
	}
	if rows[0].Score != 4 || rows[1].Score != 20 {
		t.Errorf("rows = %+v, want the latest run first", rows)
	}
	if got := alice.Heading(); got != "Your Recent Runs" {
		t.Errorf("Heading() = %q", got)
	}
}
