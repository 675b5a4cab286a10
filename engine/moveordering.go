package engine

import "oliviathan/board"

type scoredMove struct {
	move  board.Move
	score int32
}

type moveList struct {
	moves []scoredMove
}

/*
	Move ordering offsets!
	- Captures are scored by victim value scaled up, minus the attacker, so
	  winning the queen with a pawn sorts ahead of trading rooks.
	- Promotions, castling and en passant get fixed flat bonuses.
	Ordering only improves pruning; it never affects the search result.
*/
var captureVictimScale int32 = 10
var promotionBonus int32 = 900
var castleBonus int32 = 50
var enPassantBonus int32 = 100

// scoreMoves attaches a static ordering score to every move.
func scoreMoves(p *board.Position, moves []board.Move) moveList {
	list := moveList{moves: make([]scoredMove, len(moves))}
	for i, m := range moves {
		var score int32
		target := p.PieceAt(m.To)
		if !target.IsEmpty() {
			score += MaterialValue(target.Piece)*captureVictimScale - MaterialValue(p.PieceAt(m.From).Piece)
		}
		if m.Promotion != board.NoPiece {
			score += promotionBonus
		}
		if m.Castle {
			score += castleBonus
		}
		if m.EnPassant {
			score += enPassantBonus
		}
		list.moves[i] = scoredMove{move: m, score: score}
	}
	return list
}

// orderNextMove selection-sorts the single best remaining move into place at
// the given index, so sorting work is only paid for moves actually searched.
func orderNextMove(currIndex int, list *moveList) {
	bestIndex := currIndex
	bestScore := list.moves[bestIndex].score
	for i := currIndex + 1; i < len(list.moves); i++ {
		if list.moves[i].score > bestScore {
			bestIndex = i
			bestScore = list.moves[i].score
		}
	}
	list.moves[currIndex], list.moves[bestIndex] = list.moves[bestIndex], list.moves[currIndex]
}
