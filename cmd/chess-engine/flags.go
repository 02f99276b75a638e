// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Board options
	boardSize       = flag.Int("size", 8, "Board edge length (minimum 5)")
	startFEN        = flag.String("fen", "", "Start from this FEN position instead of the standard setup (8x8 only)")
	strictFirstMove = flag.Bool("strict", false, "Allow the pawn double step only on a pawn's first move")

	// Output options
	outputFile   = flag.String("o", "", "Output file for board snapshots (default: stdout)")
	jsonOutput   = flag.Bool("J", false, "Write snapshots as JSON instead of grids")
	outputFormat = flag.String("W", "", "Snapshot format: grid, json")
	prompts      = flag.Bool("prompt", false, "Write input prompts to the log")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Log verbosity: 0 silent, 1 errors, 2 running commentary")
	quiet     = flag.Bool("q", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into the configuration.
func applyFlags(cfg *config.Config) error {
	applyBoardFlags(cfg)
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	cfg.Output.Prompts = *prompts

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyBoardFlags configures the board and rule settings.
func applyBoardFlags(cfg *config.Config) {
	cfg.Board.Size = *boardSize
	cfg.Board.StartFEN = *startFEN
	cfg.Board.StrictFirstMove = *strictFirstMove
}

// applyOutputFormatFlags selects the snapshot format. -J wins over -W.
func applyOutputFormatFlags(cfg *config.Config) error {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
		return nil
	}
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}
