package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for batches of random-mover games.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// MaxPlies stops a game that has not finished after this many plies; 0 means no limit
	MaxPlies int

	// Workers is the number of games played in parallel
	Workers int

	// Seed makes the batch reproducible; game i uses Seed+2i for White and Seed+2i+1 for Black
	Seed int64
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:    1,
		MaxPlies: 500,
		Workers:  1,
		Seed:     1,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("games (%d) < 0: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) < 0: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
