package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

const benchFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := mustBoard(b, benchFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board)
	}
}

func BenchmarkWeakHash(b *testing.B) {
	board := mustBoard(b, benchFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		WeakHash(board)
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	detector := NewDuplicateDetector(false, 0)
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.CheckAndAdd(board, i)
	}
}
