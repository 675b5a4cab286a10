package board_test

import (
	"testing"

	"oliviathan/board"
)

func benchPerft(b *testing.B, fen string, depth int) {
	p, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchPerft(b, fen, 3)
}

func BenchmarkGenerateLegalMoves(b *testing.B) {
	p := board.NewPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.GenerateLegalMoves()
	}
}

func BenchmarkMakeMoveCopy(b *testing.B) {
	p := board.NewPosition()
	m, err := p.ParseMove("e2e4")
	if err != nil {
		b.Fatalf("ParseMove: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp := p.Copy()
		if !cp.MakeMove(m) {
			b.Fatal("MakeMove failed")
		}
	}
}
