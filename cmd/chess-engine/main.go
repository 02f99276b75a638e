// chess-engine runs a two-player board game session over a line-oriented
// text protocol: coordinates in on stdin, board snapshots out on stdout.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg, os.Stdin); err != nil {
		cfg.Logf(0, "Error: %v", err)
		os.Exit(1)
	}
}

// run validates the configuration and plays a session until the input ends.
// Malformed input ends the session the same way running out of input does.
func run(cfg *config.Config, in io.Reader) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := game.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	session := game.NewSession(g, in, output.NewWriter(cfg), cfg)
	if err := session.Run(); err != nil {
		if stderrors.Is(err, errors.ErrInvalidInput) {
			cfg.Logf(1, "Invalid input, exiting loop: %v", err)
			return nil
		}
		return err
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reads \"row col\" pairs from stdin: an origin, then a destination, each round.\n")
	fmt.Fprintf(os.Stderr, "After every board change three grids are written: pieces, sides, highlights.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
