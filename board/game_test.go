package board_test

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"oliviathan/board"
)

// TestGameReplayMatchesReference replays full move sequences on both this
// package's Position and an independent rules library, comparing the piece
// placement, side to move and castling rights after every move along with the
// size of the legal move set. The en passant FEN field is excluded because
// the reference library records it only when a capture is actually possible.
func TestGameReplayMatchesReference(t *testing.T) {
	games := [][]string{
		// Italian opening with both sides castling kingside.
		{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5", "c2c3", "e8g8"},
		// En passant capture on d6.
		{"e2e4", "c7c5", "e4e5", "d7d5", "e5d6"},
		// Queenside castling on both sides.
		{"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7", "e1c1", "e8c8"},
		// Fool's mate.
		{"f2f3", "e7e5", "g2g4", "d8h4"},
	}

	for gi, moves := range games {
		p := board.NewPosition()
		game := chess.NewGame(chess.UseNotation(chess.UCINotation{}))

		for mi, text := range moves {
			if err := p.MakeMoveText(text); err != nil {
				t.Fatalf("game %d move %d (%s): %v", gi, mi, text, err)
			}
			if err := game.MoveStr(text); err != nil {
				t.Fatalf("game %d move %d (%s): reference rejected: %v", gi, mi, text, err)
			}

			gotFields := strings.Fields(p.ToFEN())
			wantFields := strings.Fields(game.Position().String())
			for f := 0; f < 3; f++ {
				if gotFields[f] != wantFields[f] {
					t.Errorf("game %d after %s: FEN field %d diverges: got %q want %q",
						gi, text, f, gotFields[f], wantFields[f])
				}
			}

			got := len(p.GenerateLegalMoves())
			want := len(game.ValidMoves())
			if got != want {
				t.Errorf("game %d after %s: legal move count got %d want %d",
					gi, text, got, want)
			}
		}
	}
}

func TestCheckmateAndStalemateDetection(t *testing.T) {
	p := board.NewPosition()
	mustPlay(t, p, "f2f3", "e7e5", "g2g4", "d8h4")
	if !p.InCheckmate() {
		t.Error("fool's mate position should be checkmate")
	}
	if p.InStalemate() {
		t.Error("checkmate is not stalemate")
	}
	if !p.InCheck(board.White) {
		t.Error("white king must be in check")
	}
	if p.HasLegalMoves() {
		t.Error("checkmated side has no legal moves")
	}

	stale, err := board.ParseFEN("k7/2Q5/8/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !stale.InStalemate() {
		t.Error("position should be stalemate")
	}
	if stale.InCheckmate() {
		t.Error("stalemate is not checkmate")
	}
	if stale.InCheck(board.Black) {
		t.Error("stalemated king is not in check")
	}
}
