package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// OutputFormat selects how board snapshots are written.
type OutputFormat int

const (
	GridFormat OutputFormat = iota // Three whitespace-separated grids
	JSONFormat                     // One JSON object per snapshot
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "grid"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "grid":
		return GridFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return GridFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how snapshots are encoded
	Format OutputFormat

	// Prompts writes "Enter initial move:" style prompts to the log
	Prompts bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: GridFormat,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != GridFormat && o.Format != JSONFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
