package config

import (
	"io"
	"log/slog"
)

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

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithTag sets a PGN tag applied to every game.
func (b *ConfigBuilder) WithTag(name, value string) *ConfigBuilder {
	b.cfg.Tags[name] = value
	return b
}

// WithOutputFormat sets the move notation format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithTagFormat sets which tags are written.
func (b *ConfigBuilder) WithTagFormat(form TagOutputForm) *ConfigBuilder {
	b.cfg.Output.TagFormat = form
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithPlyCount enables the PlyCount tag.
func (b *ConfigBuilder) WithPlyCount(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddPlyCount = enabled
	return b
}

// WithTermination enables the Termination tag.
func (b *ConfigBuilder) WithTermination(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddTermination = enabled
	return b
}

// WithSelfPlay sets the number of games, the ply limit and the worker count.
func (b *ConfigBuilder) WithSelfPlay(games, maxPlies, workers int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.MaxPlies = maxPlies
	b.cfg.SelfPlay.Workers = workers
	return b
}

// WithSeed sets the self-play seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level slog.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
