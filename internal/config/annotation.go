package config

// AnnotationConfig holds settings for extra tags and comments in exported games.
type AnnotationConfig struct {
	AddPlyCount    bool // Add a PlyCount tag
	AddTermination bool // Add a Termination tag naming how the game ended
	AddFinalFEN    bool // Add the final position as a comment after the movetext
	AddHashTag     bool // Add the Zobrist hash of the final position as a tag
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
