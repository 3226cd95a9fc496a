package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagInput   string
	flagShowFPS bool
	flagHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play starcatch",
	Long: `Start the game at the main menu.

Controls:
  Left/Right   - Turn
  Up/Down      - Thrust/Brake
  A/D          - Virtual pad stick
  ]/[          - Virtual pad triggers
  G            - Plug or unplug the virtual pad
  P/Esc        - Pause
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Input modes:
  keyboard - Arrow keys only
  pad      - Virtual pad only; unplugging it pauses the game
  both     - Arrow keys and the virtual pad

Examples:
  starcatch play
  starcatch play --difficulty easy
  starcatch play --input pad --show-fps
  starcatch play --config ./my-starcatch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagInput, "input", "keyboard", "Input mode: keyboard, pad, both")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the measured frame rate")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after a press")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, mode, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	input, err := tui.ParseInputMode(flagInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{
		Game:    game,
		Runtime: rc,
		Input:   input,
		Hold:    flagHold,
		Mode:    mode,
		ShowFPS: flagShowFPS,
	}

	// play releases the log file and store before we get here
	if err := play(opts, tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openLog is replaced in tests.
var openLog = newFileLogger

// play attaches the log file and score store to opts and runs the game.
// Both are closed before play returns.
func play(opts tui.Options, run func(tui.Options) error) error {
	logger, logFile, err := openLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = log.New(io.Discard)
	} else {
		defer logFile.Close()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	opts.Logger = logger
	return run(opts)
}
