package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist key tables. The seed is fixed so that the same position hashes
// to the same value in every run.
var (
	zobristPieces    [2][7][chess.BoardSize * chess.BoardSize]uint64
	zobristCastling  [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristBlack     uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5A0B1157))

	for colour := range zobristPieces {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := range zobristPieces[colour][kind] {
				zobristPieces[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.Uint64()
	}
	zobristBlack = rng.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of the position: placement,
// side to move, castling rights and en passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	var h uint64

	board.ForEach(func(p *chess.Piece) {
		h ^= zobristPieces[p.Colour][p.Kind][squareIndex(p.Square)]
	})

	h ^= zobristCastling[castlingBits(board.Castling)]

	if board.EnPassant {
		h ^= zobristEnPassant[board.EPSquare.Col-chess.FirstCol]
	}

	if board.ToMove == chess.Black {
		h ^= zobristBlack
	}

	return h
}

// WeakHashCode is a cheap secondary position checksum.
type WeakHashCode uint32

// WeakHash sums a small code per occupied square. Collisions are common;
// it only backs up the Zobrist hash.
func WeakHash(board *chess.Board) WeakHashCode {
	var h WeakHashCode
	board.ForEach(func(p *chess.Piece) {
		code := WeakHashCode(p.Kind) + WeakHashCode(p.Colour)*8
		h += code * WeakHashCode(squareIndex(p.Square)+1)
	})
	return h
}

func squareIndex(sq chess.Square) int {
	return int(sq.Col-chess.FirstCol)*chess.BoardSize + int(sq.Rank-chess.FirstRank)
}

func castlingBits(r chess.CastlingRights) int {
	bits := 0
	if r.WhiteKingside {
		bits |= 1
	}
	if r.WhiteQueenside {
		bits |= 2
	}
	if r.BlackKingside {
		bits |= 4
	}
	if r.BlackQueenside {
		bits |= 8
	}
	return bits
}
