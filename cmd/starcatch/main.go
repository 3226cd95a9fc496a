// starcatch is a terminal game: steer a ship around a walled field and
// catch the star before it moves on.
//
// Usage:
//
//	starcatch play            - Play locally
//	starcatch scores          - Show high scores
//	starcatch serve           - Host sessions over SSH
//	starcatch replay <file>   - Replay a scripted input timeline headlessly
//	starcatch config          - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.starcatch/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <name>   - Apply a difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Starcatch - Catch stars in your terminal",
	Long: `Starcatch puts a ship in a walled field with a single star.
Fly into the star to score; it reappears somewhere else. Reach the
target score to win.

Available commands:
  play     - Play locally
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Run a scripted session without a terminal

Examples:
  starcatch play
  starcatch play --difficulty hard --input both
  starcatch scores
  starcatch serve --ssh :2222
  starcatch replay ./bug-1234.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db",
		config.GetEnv(config.EnvDBPath, "~/.starcatch/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGame loads the game tuning and applies the difficulty preset.
// It returns the preset name that results are recorded under.
func loadGame() (config.StarcatchConfig, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.StarcatchConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.StarcatchConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.StarcatchConfig{}, "", err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, string(preset), nil
}

// newLogger builds a logger at the --log-level level writing to stderr.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}), nil
}

// newFileLogger builds a logger writing to ~/.starcatch/starcatch.log, for
// commands that own the terminal. The caller closes the returned file.
func newFileLogger() (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Join(home, ".starcatch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "starcatch.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}), f, nil
}
