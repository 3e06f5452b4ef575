package config

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want %v", cfg.Format, SAN)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if !cfg.KeepChecks {
		t.Error("KeepChecks should be true by default")
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.TagFormat != AllTags {
		t.Errorf("TagFormat = %v, want AllTags", cfg.TagFormat)
	}
}

// TestSelfPlayConfig_Validate verifies self-play config validation
func TestSelfPlayConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SelfPlayConfig
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     *NewSelfPlayConfig(),
			wantErr: false,
		},
		{
			name:    "zero games and no ply limit",
			cfg:     SelfPlayConfig{Games: 0, MaxPlies: 0, Workers: 4},
			wantErr: false,
		},
		{
			name:    "negative games",
			cfg:     SelfPlayConfig{Games: -1, Workers: 1},
			wantErr: true,
		},
		{
			name:    "negative ply limit",
			cfg:     SelfPlayConfig{Games: 1, MaxPlies: -5, Workers: 1},
			wantErr: true,
		},
		{
			name:    "no workers",
			cfg:     SelfPlayConfig{Games: 1, Workers: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Validate verifies whole-config validation
func TestConfig_Validate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg := NewConfigBuilder().WithStartFEN("8/8/8/8/8/8/8/8 w - - 0 1").Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with kingless start = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfigBuilder().WithVerbosity(-1).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with negative verbosity = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfigBuilder().WithSelfPlay(1, 10, 0).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with no workers = %v, want ErrInvalidConfig", err)
	}
}

// TestDuplicateConfig_Defaults verifies DuplicateConfig has sensible defaults
func TestDuplicateConfig_Defaults(t *testing.T) {
	cfg := NewDuplicateConfig()

	if cfg.Suppress {
		t.Error("Suppress should be false by default")
	}
	if cfg.ExactMatch {
		t.Error("ExactMatch should be false by default")
	}
	if cfg.DuplicateFile != nil {
		t.Error("DuplicateFile should be nil by default")
	}
}

// TestAnnotationConfig_Defaults verifies AnnotationConfig has sensible defaults
func TestAnnotationConfig_Defaults(t *testing.T) {
	cfg := NewAnnotationConfig()

	if cfg.AddPlyCount || cfg.AddTermination || cfg.AddFinalFEN || cfg.AddHashTag {
		t.Errorf("annotations should be disabled by default: %+v", cfg)
	}
}

// TestConfig_EmbeddedStructs verifies that Config properly embeds sub-configs
func TestConfig_EmbeddedStructs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != SAN {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, SAN)
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false")
	}
	if cfg.Annotation.AddPlyCount {
		t.Error("Annotation.AddPlyCount should be false")
	}
	if cfg.SelfPlay.Workers != 1 {
		t.Errorf("SelfPlay.Workers = %d, want 1", cfg.SelfPlay.Workers)
	}
	if cfg.Tags[chess.EventTag] != "Casual game" {
		t.Errorf("Event tag = %q, want %q", cfg.Tags[chess.EventTag], "Casual game")
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logger verifies the logger honours the configured writer and level
func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithLogOutput(&buf).
		WithLogLevel(slog.LevelWarn).
		Build()

	logger := cfg.Logger()
	if logger != cfg.Logger() {
		t.Error("Logger() should return the same logger on every call")
	}

	logger.Info("dropped")
	logger.Warn("kept", "ply", 3)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record written below warn level:\n%s", out)
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "ply=3") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithOutputFormat(LALG).
		WithMaxLineLength(120).
		WithJSONOutput(true).
		WithTagFormat(SevenTagRoster).
		WithDuplicateSuppression(true).
		WithPlyCount(true).
		WithTermination(true).
		WithTag(chess.WhiteTag, "Random").
		WithSelfPlay(20, 300, 4).
		WithSeed(42).
		Build()

	if cfg.Output.Format != LALG {
		t.Errorf("Format = %v, want LALG", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.JSONFormat {
		t.Error("JSONFormat should be true")
	}
	if cfg.Output.TagFormat != SevenTagRoster {
		t.Errorf("TagFormat = %v, want SevenTagRoster", cfg.Output.TagFormat)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if !cfg.Annotation.AddPlyCount || !cfg.Annotation.AddTermination {
		t.Error("PlyCount and Termination annotations should be enabled")
	}
	if cfg.Tags[chess.WhiteTag] != "Random" {
		t.Errorf("White tag = %q, want Random", cfg.Tags[chess.WhiteTag])
	}
	want := SelfPlayConfig{Games: 20, MaxPlies: 300, Workers: 4, Seed: 42}
	if *cfg.SelfPlay != want {
		t.Errorf("SelfPlay = %+v, want %+v", *cfg.SelfPlay, want)
	}
}

func TestOutputFormat_String(t *testing.T) {
	if SAN.String() != "san" || LALG.String() != "lalg" {
		t.Errorf("String() = %q, %q", SAN.String(), LALG.String())
	}
}
