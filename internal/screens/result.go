package screens

import "time"

// Result summarizes one finished gameplay session.
type Result struct {
	Score     int
	Won       bool
	Ticks     int
	Duration  time.Duration
	InputMode string
}

// ResultSink receives a Result when a gameplay screen is removed.
type ResultSink interface {
	RecordResult(r Result) error
}

// ScoreRow is one line of the high-score screen.
type ScoreRow struct {
	Score int
	Won   bool
	When  time.Time
}

// ScoreTable supplies the high-score screen.
type ScoreTable interface {
	TopResults(limit int) ([]ScoreRow, error)
}
