package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board edge length.
func (b *ConfigBuilder) WithBoardSize(size int) *ConfigBuilder {
	b.cfg.Board.Size = size
	return b
}

// WithStartFEN starts the game from a FEN position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Board.StartFEN = fen
	return b
}

// WithStrictFirstMove enables per-piece first move tracking for pawns.
func (b *ConfigBuilder) WithStrictFirstMove(enabled bool) *ConfigBuilder {
	b.cfg.Board.StrictFirstMove = enabled
	return b
}

// WithOutputFormat sets the snapshot format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithPrompts enables input prompts on the log stream.
func (b *ConfigBuilder) WithPrompts(enabled bool) *ConfigBuilder {
	b.cfg.Output.Prompts = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
