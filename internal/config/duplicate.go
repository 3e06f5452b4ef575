package config

import "io"

// DuplicateConfig holds settings for detecting self-play games that end in
// the same final position.
type DuplicateConfig struct {
	// Suppress drops duplicate games from the main output
	Suppress bool

	// ExactMatch also requires the same number of plies
	ExactMatch bool

	// DuplicateFile receives suppressed games when set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
