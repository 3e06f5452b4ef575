package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation (SAN or LALG)
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN movetext; 0 disables wrapping
	MaxLineLength uint

	// JSONFormat enables JSON output instead of PGN
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the result token ends the movetext
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
		TagFormat:       AllTags,
	}
}
