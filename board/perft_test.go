package board_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"oliviathan/board"
)

func perftFrom(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return board.Perft(p, depth)
}

func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281}
	for depth := 1; depth <= len(want); depth++ {
		if got := perftFrom(t, board.FENStartPos, depth); got != want[depth-1] {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, want[depth-1])
		}
	}
}

func TestPerftInitialPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-5 perft in short mode")
	}
	if got := perftFrom(t, board.FENStartPos, 5); got != 4865609 {
		t.Fatalf("perft depth5: got %d want %d", got, 4865609)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	if got := perftFrom(t, fen, 1); got != 48 {
		p, _ := board.ParseFEN(fen)
		for _, m := range p.GenerateLegalMoves() {
			t.Logf("  %s", m.String())
		}
		t.Fatalf("Kiwipete depth1: got %d want 48", got)
	}
	if got := perftFrom(t, fen, 2); got != 2039 {
		t.Fatalf("Kiwipete depth2: got %d want 2039", got)
	}
	if testing.Short() {
		return
	}
	if got := perftFrom(t, fen, 3); got != 97862 {
		t.Fatalf("Kiwipete depth3: got %d want 97862", got)
	}
}

func TestPerftEnPassant(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	if got := perftFrom(t, fen, 1); got != 5 {
		t.Fatalf("en passant depth1: got %d want 5", got)
	}
	if got := perftFrom(t, fen, 2); got != 19 {
		t.Fatalf("en passant depth2: got %d want 19", got)
	}
}

func TestPerftPromotion(t *testing.T) {
	if got := perftFrom(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1); got != 11 {
		t.Fatalf("promotion depth1: got %d want 11", got)
	}
}

// refPerft walks the reference bitboard generator to the same depth, giving an
// independently computed node count for arbitrary positions.
func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += refPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesReference(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range referenceFENs {
		got := perftFrom(t, fen, depth)
		ref := dragontoothmg.ParseFen(fen)
		want := refPerft(&ref, depth)
		if got != want {
			t.Errorf("%s: perft(%d) got %d, reference %d", fen, depth, got, want)
		}
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	p := board.NewPosition()
	div := board.PerftDivide(p, 3)
	if len(div) != 20 {
		t.Fatalf("divide at root: got %d moves, want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sum: got %d want 8902", sum)
	}
}

func TestPerftDetailedInitial(t *testing.T) {
	p := board.NewPosition()
	res := board.PerftDetailed(p, 3)
	if res.Nodes != 8902 {
		t.Errorf("nodes: got %d want 8902", res.Nodes)
	}
	if res.Captures != 34 {
		t.Errorf("captures: got %d want 34", res.Captures)
	}
	if res.EnPassants != 0 || res.Castles != 0 || res.Promotions != 0 {
		t.Errorf("unexpected special moves at depth 3: %+v", res)
	}
	if res.Checks != 12 {
		t.Errorf("checks: got %d want 12", res.Checks)
	}
}
