package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted session headlessly",
	Long: `Run a session from a YAML input timeline and print the outcome.
The script's seed wins over --seed unless the script omits it.

Script format:
  seed: 7
  tick: 16ms
  input: keyboard        # keyboard, pad or both
  segments:
    - ticks: 60
      keys: [up]         # left, right, up, down, pause
    - ticks: 20
      obscured: true     # an overlay covers the session
    - ticks: 30
      pad: {connected: true, stick: 0.5, accel: 1}

Examples:
  starcatch replay ./bug-1234.yaml
  starcatch replay ./tuning.yaml --difficulty hard --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, _, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	script, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if script.Seed == 0 {
		script.Seed = flagSeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := replay.NewRunner(game, logger).Run(ctx, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ticks:     %d (%d simulated, %s)\n", rep.Ticks, rep.Simulated, rep.Elapsed)
	fmt.Printf("Score:     %d\n", rep.Score)
	fmt.Printf("Won:       %v\n", rep.Won)
	fmt.Printf("State:     %s\n", rep.State)
	fmt.Printf("Captures:  %d\n", rep.Captures)
	fmt.Printf("Wall hits: %d\n", rep.WallHits)
	fmt.Printf("Pauses:    %d\n", rep.Pauses)
	fmt.Printf("Pulses:    %d (now %s)\n", rep.Pulses, rep.FinalPulse)
}
