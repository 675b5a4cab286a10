package engine

import "oliviathan/board"

// =============================================================================
// MATERIAL VALUES (centipawns)
// =============================================================================
// Indexed by board.Piece. The king carries no material value.
var pieceValue = [7]int32{0, 100, 320, 330, 500, 900, 0}

// Castling-rights bonus per remaining right.
var castlingRightBonus int32 = 20

// Doubled-pawn penalty per extra pawn on a file.
var doubledPawnPenalty int32 = 10

// =============================================================================
// PIECE-SQUARE TABLES
// =============================================================================
// Written visually, rank 8 at the top. White lookups mirror the rank
// (sq ^ 56); Black reads the index directly, so Black's table is the
// rank-reflection of White's.
var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	5, 5, 8, 12, 12, 8, 5, 5,
	2, 2, 4, 10, 10, 4, 2, 2,
	1, 1, 2, 5, 5, 2, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, -2, -2, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int32{
	0, 0, 5, 10, 10, 5, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// MaterialValue returns the material value of a piece kind. Exposed for the
// move-ordering heuristic.
func MaterialValue(piece board.Piece) int32 {
	return pieceValue[piece]
}

// pieceSquareValue looks up the positional bonus for a piece on a square.
// Black's lookup index is the rank reflection of White's.
func pieceSquareValue(piece board.Piece, sq int, color board.Color) int32 {
	idx := sq
	if color == board.White {
		idx = sq ^ 56
	}
	switch piece {
	case board.Pawn:
		return pawnTable[idx]
	case board.Knight:
		return knightTable[idx]
	case board.Bishop:
		return bishopTable[idx]
	case board.Rook:
		return rookTable[idx]
	case board.Queen:
		return queenTable[idx]
	case board.King:
		return kingTable[idx]
	}
	return 0
}

// evaluateCastling scores remaining castling rights, signed by colour.
func evaluateCastling(p *board.Position) int32 {
	rights := p.CastlingRights()
	var bonus int32
	if rights[board.CastleWhiteKingside] {
		bonus += castlingRightBonus
	}
	if rights[board.CastleWhiteQueenside] {
		bonus += castlingRightBonus
	}
	if rights[board.CastleBlackKingside] {
		bonus -= castlingRightBonus
	}
	if rights[board.CastleBlackQueenside] {
		bonus -= castlingRightBonus
	}
	return bonus
}

// evaluatePawnStructure penalizes doubled pawns linearly per file.
func evaluatePawnStructure(p *board.Position) int32 {
	var score int32
	for file := 0; file < board.BoardSize; file++ {
		var whitePawns, blackPawns int32
		for rank := 0; rank < board.BoardSize; rank++ {
			s := p.PieceAt(board.ToIndex(file, rank))
			if s.Piece != board.Pawn {
				continue
			}
			if s.Color == board.White {
				whitePawns++
			} else {
				blackPawns++
			}
		}
		if whitePawns > 1 {
			score -= doubledPawnPenalty * (whitePawns - 1)
		}
		if blackPawns > 1 {
			score += doubledPawnPenalty * (blackPawns - 1)
		}
	}
	return score
}

// evaluateMobility is White's legal-move count minus Black's. Both counts are
// taken on copies with only the side to move swapped; the en passant target
// is cleared on the copy so the flipped side cannot see a window that was
// never open to it.
func evaluateMobility(p *board.Position) int32 {
	cp := *p
	cp.ClearEnPassant()
	cp.SetSideToMove(board.White)
	white := len(cp.GenerateLegalMoves())
	cp.SetSideToMove(board.Black)
	black := len(cp.GenerateLegalMoves())
	return int32(white - black)
}

// Evaluate returns a static score for the position in centipawns, positive
// favouring White. It is a pure function of the position: material plus
// piece-square bonuses, castling-rights bonus, doubled-pawn penalty and a
// mobility term. It never inspects search depth or game-tree context.
func Evaluate(p *board.Position) int32 {
	var score int32

	for sq := 0; sq < board.NumSquares; sq++ {
		s := p.PieceAt(sq)
		if s.IsEmpty() {
			continue
		}
		value := pieceValue[s.Piece] + pieceSquareValue(s.Piece, sq, s.Color)
		if s.Color == board.White {
			score += value
		} else {
			score -= value
		}
	}

	score += evaluateCastling(p)
	score += evaluatePawnStructure(p)
	score += evaluateMobility(p)

	return score
}
