package engine

import (
	"testing"

	"oliviathan/board"
)

func TestScoreMovesRanksCapturesByVictim(t *testing.T) {
	// White pawn on b4 can take the queen on a5 or the rook on c5; the white
	// rook on c1 can also take the rook on c5.
	p := parseFEN(t, "k7/8/8/q1r5/1P6/8/8/2R4K w - - 0 1")
	moves := p.GenerateLegalMoves()
	list := scoreMoves(p, moves)

	score := func(text string) int32 {
		for _, sm := range list.moves {
			if sm.move.String() == text {
				return sm.score
			}
		}
		t.Fatalf("move %s not generated", text)
		return 0
	}

	pawnTakesQueen := score("b4a5")
	pawnTakesRook := score("b4c5")
	rookTakesRook := score("c1c5")
	quiet := score("b4b5")

	if pawnTakesQueen <= pawnTakesRook {
		t.Errorf("pawn takes queen (%d) should outrank pawn takes rook (%d)", pawnTakesQueen, pawnTakesRook)
	}
	if pawnTakesRook <= rookTakesRook {
		t.Errorf("cheaper attacker should outrank: pawn x rook %d vs rook x rook %d", pawnTakesRook, rookTakesRook)
	}
	if quiet != 0 {
		t.Errorf("quiet move should score 0, got %d", quiet)
	}
}

func TestOrderNextMoveSelectsBestRemaining(t *testing.T) {
	list := moveList{moves: []scoredMove{
		{board.Move{From: 0, To: 1}, 5},
		{board.Move{From: 0, To: 2}, 50},
		{board.Move{From: 0, To: 3}, -3},
		{board.Move{From: 0, To: 4}, 20},
	}}
	wantScores := []int32{50, 20, 5, -3}
	for i := range list.moves {
		orderNextMove(i, &list)
		if list.moves[i].score != wantScores[i] {
			t.Fatalf("pick %d: got score %d want %d", i, list.moves[i].score, wantScores[i])
		}
	}
}

func TestScoreMovesFlagBonuses(t *testing.T) {
	p := parseFEN(t, "1n5k/P7/8/8/8/8/8/4K2R w K - 0 1")
	list := scoreMoves(p, p.GenerateLegalMoves())
	for _, sm := range list.moves {
		switch {
		case sm.move.Castle:
			if sm.score != castleBonus {
				t.Errorf("castle %s: got %d want %d", sm.move.String(), sm.score, castleBonus)
			}
		case sm.move.Promotion != board.NoPiece && board.FileOf(sm.move.To) == board.FileOf(sm.move.From):
			// Straight push promotion, no capture.
			if sm.score != promotionBonus {
				t.Errorf("promotion %s: got %d want %d", sm.move.String(), sm.score, promotionBonus)
			}
		}
	}
}
