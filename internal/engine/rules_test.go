package engine

import "testing"

func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+N vs K+n", "4k1n1/8/8/8/8/8/8/4K1N1 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := IsInsufficientMaterial(board); got != tt.want {
				t.Errorf("IsInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialBalance(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{InitialFEN, 0},
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 9},
		{"rn2k3/8/8/8/8/8/PP6/4K3 w - - 0 1", -6},
	}
	for _, tt := range tests {
		if got := MaterialBalance(mustBoard(t, tt.fen)); got != tt.want {
			t.Errorf("MaterialBalance(%q) = %d, want %d", tt.fen, got, tt.want)
		}
	}
}
