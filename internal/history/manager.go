package history

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Manager counts position occurrences and keeps the move log for one game.
// It is not safe for concurrent use; the owning game serialises access.
type Manager struct {
	occurrences map[string]int
	current     string

	moves      []chess.MoveRecord
	moveNumber int
}

// NewManager creates an empty history whose first recorded move is numbered 1.
func NewManager() *Manager {
	m := &Manager{}
	m.Reset(1)
	return m
}

// Reset clears all positions and moves. startNumber is the move number
// shown for the first recorded move.
func (m *Manager) Reset(startNumber int) {
	if startNumber < 1 {
		startNumber = 1
	}
	m.occurrences = make(map[string]int)
	m.current = ""
	m.moves = nil
	m.moveNumber = startNumber
}

// RegisterPosition counts one more occurrence of the board's canonical
// position and makes it the current position. It is called once per
// completed move, after the side to move has flipped, and once for the
// starting position.
func (m *Manager) RegisterPosition(board *chess.Board) string {
	key := CanonicalPosition(board)
	m.occurrences[key]++
	m.current = key
	return key
}

// Occurrences returns how many times the canonical position key has been registered.
func (m *Manager) Occurrences(key string) int {
	return m.occurrences[key]
}

// Current returns the most recently registered canonical position.
func (m *Manager) Current() string {
	return m.current
}

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times.
func (m *Manager) IsThreefoldRepetition() bool {
	return m.current != "" && m.occurrences[m.current] >= chess.RepetitionLimit
}

// RecordMove builds the notation for a completed move, appends it to the
// move log and returns the new record. disambiguation is the file and/or
// rank prefix needed to tell the mover apart from same-kind pieces that
// could also reach the destination.
func (m *Manager) RecordMove(move chess.Move, disambiguation string, check chess.CheckStatus) chess.MoveRecord {
	record := chess.MoveRecord{
		Number:      m.moveNumber,
		Notation:    Notation(move, disambiguation, check),
		Move:        move,
		CheckStatus: check,
	}
	m.moves = append(m.moves, record)
	if move.Colour == chess.Black {
		m.moveNumber++
	}
	return record
}

// Moves returns a copy of the move log.
func (m *Manager) Moves() []chess.MoveRecord {
	out := make([]chess.MoveRecord, len(m.moves))
	copy(out, m.moves)
	return out
}

// Notations returns the notation text of every logged move in order.
func (m *Manager) Notations() []string {
	out := make([]string, len(m.moves))
	for i, r := range m.moves {
		out[i] = r.Notation
	}
	return out
}

// Len returns the number of logged moves.
func (m *Manager) Len() int {
	return len(m.moves)
}

// MoveNumber returns the number that will be shown for the next move.
func (m *Manager) MoveNumber() int {
	return m.moveNumber
}
