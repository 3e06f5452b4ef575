// Package config provides configuration for games, export and self-play.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat represents different move notation formats for export.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	if f == LALG {
		return "lalg"
	}
	return "san"
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game count, 2=running commentary

	// Position every new game starts from.
	StartFEN string

	// PGN tags applied to every game; the seven tag roster is filled with
	// "?" where missing.
	Tags map[string]string

	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Annotation *AnnotationConfig
	SelfPlay   *SelfPlayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
	LogLevel   slog.Level

	loggerOnce sync.Once
	logger     *slog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		StartFEN:  engine.InitialFEN,
		Tags: map[string]string{
			chess.EventTag: "Casual game",
			chess.SiteTag:  "?",
			chess.WhiteTag: "?",
			chess.BlackTag: "?",
		},
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Annotation: NewAnnotationConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    io.Discard,
		LogLevel:   slog.LevelInfo,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogOutput sets the diagnostics writer. It must be called before the
// first call to Logger.
func (c *Config) SetLogOutput(w io.Writer) {
	c.LogFile = w
}

// Logger returns a text logger writing to LogFile at LogLevel. The logger
// is built once and shared by everything using this configuration.
func (c *Config) Logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		w := c.LogFile
		if w == nil {
			w = io.Discard
		}
		c.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
	})
	return c.logger
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.SelfPlay != nil {
		if err := c.SelfPlay.Validate(); err != nil {
			return err
		}
	}
	return nil
}
