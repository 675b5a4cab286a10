package board

// Movement offsets for each piece type, as (file, rank) deltas.
type offset struct {
	df, dr int
}

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var bishopOffsets = [4]offset{
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

var rookOffsets = [4]offset{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
}

var kingOffsets = [8]offset{
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// GeneratePseudoLegalMoves produces every move obeying per-piece movement
// geometry for the side to move, including castling and en passant. Moves
// may still leave the mover's own king under attack.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	side := p.sideToMove

	for sq := 0; sq < NumSquares; sq++ {
		s := p.squares[sq]
		if s.Color != side || s.IsEmpty() {
			continue
		}
		switch s.Piece {
		case Pawn:
			moves = p.pawnMoves(sq, moves)
		case Knight:
			moves = p.stepMoves(sq, knightOffsets[:], moves)
		case Bishop:
			moves = p.rayMoves(sq, bishopOffsets[:], moves)
		case Rook:
			moves = p.rayMoves(sq, rookOffsets[:], moves)
		case Queen:
			moves = p.rayMoves(sq, bishopOffsets[:], moves)
			moves = p.rayMoves(sq, rookOffsets[:], moves)
		case King:
			moves = p.stepMoves(sq, kingOffsets[:], moves)
		}
	}

	moves = p.castlingMoves(moves)
	moves = p.enPassantMoves(moves)
	return moves
}

// GenerateLegalMoves filters the pseudo-legal moves by applying each to a
// copy of the position and rejecting those that leave the mover's king
// attacked. This is the sole legality filter.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := p.sideToMove

	for _, m := range pseudo {
		cp := *p
		if !cp.MakeMove(m) {
			continue
		}
		ksq := cp.KingSquare(mover)
		if ksq == NoSquare {
			continue // ill-formed position
		}
		if !cp.IsSquareAttacked(ksq, mover.Opponent()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegalMove reports whether the move is in the current legal-move set.
func (p *Position) IsLegalMove(m Move) bool {
	for _, lm := range p.GenerateLegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}

// pawnMoves generates forward pushes (with promotion expansion), the double
// advance from the home rank, and diagonal captures. En passant is appended
// separately by enPassantMoves.
func (p *Position) pawnMoves(from int, moves []Move) []Move {
	pawn := p.squares[from]
	file, rank := FileOf(from), RankOf(from)

	direction, startRank, promotionRank := 1, 1, 7
	if pawn.Color == Black {
		direction, startRank, promotionRank = -1, 6, 0
	}

	fwdRank := rank + direction
	if fwdRank >= 0 && fwdRank < BoardSize {
		to := ToIndex(file, fwdRank)
		if p.squares[to].IsEmpty() {
			if fwdRank == promotionRank {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, Move{From: from, To: to})
			}
			if rank == startRank {
				dblTo := ToIndex(file, rank+2*direction)
				if p.squares[dblTo].IsEmpty() {
					moves = append(moves, Move{From: from, To: dblTo})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		capFile, capRank := file+df, rank+direction
		if !onBoard(capFile, capRank) {
			continue
		}
		to := ToIndex(capFile, capRank)
		target := p.squares[to]
		if !target.IsEmpty() && target.Color != pawn.Color {
			if capRank == promotionRank {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to int) []Move {
	for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
		moves = append(moves, Move{From: from, To: to, Promotion: promo})
	}
	return moves
}

// stepMoves handles the fixed offset sets of knights and kings.
func (p *Position) stepMoves(from int, offsets []offset, moves []Move) []Move {
	file, rank := FileOf(from), RankOf(from)
	own := p.squares[from].Color
	for _, o := range offsets {
		tf, tr := file+o.df, rank+o.dr
		if !onBoard(tf, tr) {
			continue
		}
		to := ToIndex(tf, tr)
		target := p.squares[to]
		if target.IsEmpty() || target.Color != own {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// rayMoves casts along each direction until off-board or blocked, including
// the blocking square as a capture when it holds an opposing piece.
func (p *Position) rayMoves(from int, offsets []offset, moves []Move) []Move {
	file, rank := FileOf(from), RankOf(from)
	own := p.squares[from].Color
	for _, o := range offsets {
		for dist := 1; dist < BoardSize; dist++ {
			tf, tr := file+o.df*dist, rank+o.dr*dist
			if !onBoard(tf, tr) {
				break
			}
			to := ToIndex(tf, tr)
			target := p.squares[to]
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				continue
			}
			if target.Color != own {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// castlingMoves emits kingside/queenside castles for the side to move when
// the rights flag holds, the squares between king and rook are empty, and
// the king's current, passed-through and destination squares are all safe.
// Safety is answered by the same IsSquareAttacked primitive the legality
// filter uses, so the two can never disagree.
func (p *Position) castlingMoves(moves []Move) []Move {
	side := p.sideToMove
	opponent := side.Opponent()
	rank := 0
	ksRight, qsRight := CastleWhiteKingside, CastleWhiteQueenside
	if side == Black {
		rank = 7
		ksRight, qsRight = CastleBlackKingside, CastleBlackQueenside
	}
	kingFrom := ToIndex(4, rank)

	if p.castlingRights[ksRight] &&
		p.squares[ToIndex(5, rank)].IsEmpty() &&
		p.squares[ToIndex(6, rank)].IsEmpty() {
		if !p.IsSquareAttacked(kingFrom, opponent) &&
			!p.IsSquareAttacked(ToIndex(5, rank), opponent) &&
			!p.IsSquareAttacked(ToIndex(6, rank), opponent) {
			moves = append(moves, Move{From: kingFrom, To: ToIndex(6, rank), Castle: true})
		}
	}

	if p.castlingRights[qsRight] &&
		p.squares[ToIndex(1, rank)].IsEmpty() &&
		p.squares[ToIndex(2, rank)].IsEmpty() &&
		p.squares[ToIndex(3, rank)].IsEmpty() {
		if !p.IsSquareAttacked(kingFrom, opponent) &&
			!p.IsSquareAttacked(ToIndex(3, rank), opponent) &&
			!p.IsSquareAttacked(ToIndex(2, rank), opponent) {
			moves = append(moves, Move{From: kingFrom, To: ToIndex(2, rank), Castle: true})
		}
	}
	return moves
}

// enPassantMoves emits a capture onto the en passant target for each pawn of
// the side to move sitting diagonally adjacent behind it (at most two).
func (p *Position) enPassantMoves(moves []Move) []Move {
	if p.enPassant == NoSquare {
		return moves
	}
	side := p.sideToMove
	file, rank := FileOf(p.enPassant), RankOf(p.enPassant)

	pawnRank := rank - 1
	if side == Black {
		pawnRank = rank + 1
	}
	if pawnRank < 0 || pawnRank >= BoardSize {
		return moves
	}

	for _, df := range [2]int{-1, 1} {
		pawnFile := file + df
		if pawnFile < 0 || pawnFile >= BoardSize {
			continue
		}
		from := ToIndex(pawnFile, pawnRank)
		s := p.squares[from]
		if s.Piece == Pawn && s.Color == side {
			moves = append(moves, Move{From: from, To: p.enPassant, EnPassant: true})
		}
	}
	return moves
}

// IsSquareAttacked reports whether any piece of the attacker colour
// geometrically reaches the square, with line-of-sight up to the first
// blocker for sliders. Pawn attacks are the two forward diagonals regardless
// of occupancy. Both the legality filter and castling construction consult
// this one primitive.
func (p *Position) IsSquareAttacked(square int, attacker Color) bool {
	for sq := 0; sq < NumSquares; sq++ {
		s := p.squares[sq]
		if s.Color != attacker || s.IsEmpty() {
			continue
		}
		file, rank := FileOf(sq), RankOf(sq)
		switch s.Piece {
		case Pawn:
			direction := 1
			if attacker == Black {
				direction = -1
			}
			for _, df := range [2]int{-1, 1} {
				if onBoard(file+df, rank+direction) && ToIndex(file+df, rank+direction) == square {
					return true
				}
			}
		case Knight:
			if p.stepReaches(file, rank, knightOffsets[:], square) {
				return true
			}
		case Bishop:
			if p.rayReaches(file, rank, bishopOffsets[:], square) {
				return true
			}
		case Rook:
			if p.rayReaches(file, rank, rookOffsets[:], square) {
				return true
			}
		case Queen:
			if p.rayReaches(file, rank, bishopOffsets[:], square) ||
				p.rayReaches(file, rank, rookOffsets[:], square) {
				return true
			}
		case King:
			if p.stepReaches(file, rank, kingOffsets[:], square) {
				return true
			}
		}
	}
	return false
}

func (p *Position) stepReaches(file, rank int, offsets []offset, square int) bool {
	for _, o := range offsets {
		tf, tr := file+o.df, rank+o.dr
		if onBoard(tf, tr) && ToIndex(tf, tr) == square {
			return true
		}
	}
	return false
}

func (p *Position) rayReaches(file, rank int, offsets []offset, square int) bool {
	for _, o := range offsets {
		for dist := 1; dist < BoardSize; dist++ {
			tf, tr := file+o.df*dist, rank+o.dr*dist
			if !onBoard(tf, tr) {
				break
			}
			to := ToIndex(tf, tr)
			if to == square {
				return true
			}
			if !p.squares[to].IsEmpty() {
				break
			}
		}
	}
	return false
}
