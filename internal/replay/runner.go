package replay

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// Report summarizes a finished replay.
type Report struct {
	Ticks      int // Ticks advanced, including frozen ones
	Simulated  int // Ticks the session actually simulated
	Score      int
	Won        bool
	State      starcatch.State
	Captures   int
	WallHits   int
	Pauses     int
	Pulses     int // Feedback commands that turned the actuator on
	Elapsed    time.Duration
	FinalPulse starcatch.PulseState
}

// Runner replays scripts against fresh sessions.
type Runner struct {
	cfg    config.StarcatchConfig
	logger *log.Logger
}

// NewRunner creates a runner using cfg for every session. A nil logger
// discards output.
func NewRunner(cfg config.StarcatchConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run replays s and returns the summary. It stops early when ctx is
// cancelled, after the win and never on a pause request: a script expresses
// the pause overlay with an obscured segment.
func (r *Runner) Run(ctx context.Context, s Script) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	caps, _ := s.capabilities()

	var rep Report
	act := starcatch.ActuatorFunc(func(cmd starcatch.FeedbackCommand) {
		if cmd.On {
			rep.Pulses++
		}
		r.logger.Debug("feedback", "tick", rep.Ticks, "on", cmd.On, "intensity", cmd.Intensity)
	})

	session := starcatch.NewSession(r.cfg, caps, s.Seed, act)
	defer session.Close()

	r.logger.Info("replay started", "seed", s.Seed, "input", s.Input, "ticks", s.TotalTicks())

	for i, seg := range s.Segments {
		in := starcatch.TickInput{
			Focused:  !seg.Unfocused,
			Obscured: seg.Obscured,
			Phase:    phases[seg.Phase],
			OwnAlpha: 1,
		}
		before := session.Ticks()
		for t := range seg.Ticks {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			snap := seg.snapshot(t == 0)
			in.Snapshot = &snap

			f, err := session.Advance(s.Tick, in)
			if err != nil {
				return rep, fmt.Errorf("replay: segment %d tick %d: %w", i, t, err)
			}
			rep.Ticks++
			rep.Elapsed += s.Tick
			rep.State = f.State
			rep.Score = f.Score
			if f.Contacts.Captured {
				rep.Captures++
			}
			rep.WallHits += f.Contacts.Edges.Count()

			for _, req := range f.Requests {
				r.logger.Info("request", "tick", rep.Ticks, "request", req, "score", f.Score)
				if req == starcatch.RequestPause {
					rep.Pauses++
				}
			}
			if session.Won() {
				rep.Won = true
				rep.Simulated = session.Ticks()
				rep.FinalPulse = session.Pulse()
				r.logger.Info("replay won", "tick", rep.Ticks, "score", rep.Score)
				return rep, nil
			}
		}
		r.logger.Debug("segment done", "segment", i, "simulated", session.Ticks()-before, "score", session.Score())
	}

	rep.Simulated = session.Ticks()
	rep.FinalPulse = session.Pulse()
	r.logger.Info("replay finished", "score", rep.Score, "state", rep.State, "simulated", rep.Simulated)
	return rep, nil
}
