package tui

import (
	"github.com/vovakirdan/starcatch/internal/screens"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// StoreResults adapts a Store to the screen stack's result interfaces.
type StoreResults struct {
	store  *storage.Store
	mode   string
	player string
}

// NewStoreResults returns a sink and score table backed by store, tagging
// results with the difficulty mode and player name.
func NewStoreResults(store *storage.Store, mode, player string) StoreResults {
	return StoreResults{store: store, mode: mode, player: player}
}

// RecordResult implements screens.ResultSink. Empty sessions are skipped.
func (s StoreResults) RecordResult(r screens.Result) error {
	if r.Ticks == 0 {
		return nil
	}
	_, err := s.store.SaveResult(storage.SessionResult{
		Mode:      s.mode,
		Player:    s.player,
		Score:     r.Score,
		Won:       r.Won,
		Ticks:     r.Ticks,
		Duration:  r.Duration,
		InputMode: r.InputMode,
	})
	return err
}

// TopResults implements screens.ScoreTable. A named player sees their
// own most recent runs; local play sees the best runs overall.
func (s StoreResults) TopResults(limit int) ([]screens.ScoreRow, error) {
	var results []storage.SessionResult
	var err error
	if s.player != "" {
		results, err = s.store.PlayerResults(s.player, limit)
	} else {
		results, err = s.store.TopResults(limit)
	}
	if err != nil {
		return nil, err
	}
	rows := make([]screens.ScoreRow, len(results))
	for i, r := range results {
		rows[i] = screens.ScoreRow{Score: r.Score, Won: r.Won, When: r.CreatedAt}
	}
	return rows, nil
}

// Heading titles the score screen.
func (s StoreResults) Heading() string {
	if s.player != "" {
		return "Your Recent Runs"
	}
	return "High Scores"
}

var (
	_ screens.ResultSink = StoreResults{}
	_ screens.ScoreTable = StoreResults{}
)
