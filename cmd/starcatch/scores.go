package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Browse high scores per difficulty mode.

On a terminal this opens an interactive scoreboard. With --plain, or when
output is redirected, the top 10 of one mode are printed instead.
With --clear, every score and result of the mode is deleted.

Examples:
  starcatch scores
  starcatch scores hard --plain
  starcatch scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "normal"
	if len(args) == 1 {
		mode = args[0]
	}
	if err := showScores(mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(mode string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store, mode)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	if err := printScores(os.Stdout, store, mode); err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, mode string) error {
	if err := store.ClearScores(mode); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all %s scores.\n", mode)
	return nil
}

func printScores(w io.Writer, store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", mode)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'starcatch play --difficulty %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d", high)
	if stats, err := store.GetModeStats(mode); err == nil {
		fmt.Fprintf(w, "  Sessions: %d  Wins: %d", stats.Sessions, stats.Wins)
	}
	fmt.Fprintln(w)
	return nil
}
