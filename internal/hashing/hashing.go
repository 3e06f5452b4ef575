// Package hashing identifies positions by Zobrist hash and detects games
// that end in the same position.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks seen positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same game length
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures, 0 for unlimited
	maxCapacity int
	size        int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash WeakHashCode
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks whether a game of plies half-moves ending on board is
// a duplicate and records it if not. Returns true if the game is a
// duplicate. New games are not recorded once the detector is full.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, plies int) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{
		Hash:      GenerateZobristHash(board),
		MoveCount: plies,
		WeakHash:  WeakHash(board),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.useExactMatch || a.MoveCount == b.MoveCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}

// HashType specifies what to hash for duplicate detection.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashMoveSequence hashes the notation of every move
	HashMoveSequence
)

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame generates a hash for a game that ended on board after moves.
func (gh *GameHasher) HashGame(board *chess.Board, moves []chess.MoveRecord) uint64 {
	if gh.hashType == HashMoveSequence {
		return hashMoveSequence(moves)
	}
	return GenerateZobristHash(board)
}

// hashMoveSequence creates a hash from the move texts.
func hashMoveSequence(moves []chess.MoveRecord) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.Notation {
			hash = hash*multiplier + uint64(c)
		}
		// Separator so "e4" "e5" differs from "e4e" "5".
		hash = hash*multiplier + ' '
	}

	return hash
}
