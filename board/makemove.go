package board

import "errors"

// Error kinds surfaced to the front-end. Both are local, recoverable
// conditions; the core has no fatal-error path.
var (
	ErrInvalidFormat = errors.New("invalid move format")
	ErrIllegalMove   = errors.New("illegal move")
)

// MakeMove applies a move to the position. It returns false and leaves the
// position untouched when the source square does not hold a piece of the side
// to move, or when castle/en-passant preconditions fail. It does not verify
// king safety; that is the move generator's responsibility before offering
// the move.
func (p *Position) MakeMove(m Move) bool {
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return false
	}
	source := p.squares[m.From]
	if source.Color != p.sideToMove || source.IsEmpty() {
		return false
	}

	if m.Castle {
		return p.makeCastle(m, source)
	}
	if m.EnPassant {
		return p.makeEnPassant(m, source)
	}

	// Standard move. A two-square pawn advance opens the en passant window;
	// every other move closes it.
	if source.Piece == Pawn && abs(m.To-m.From) == 2*BoardSize {
		p.enPassant = (m.From + m.To) / 2
	} else {
		p.enPassant = NoSquare
	}

	isCapture := !p.squares[m.To].IsEmpty()
	if m.Promotion != NoPiece {
		p.squares[m.To] = SquareContent{m.Promotion, source.Color}
	} else {
		p.squares[m.To] = source
	}
	p.squares[m.From] = emptySquare()

	if isCapture || source.Piece == Pawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.updateCastlingRights(m)
	p.flipSideToMove()
	return true
}

// makeCastle relocates king and rook in one atomic update. Kingside vs
// queenside is determined by whether the king moves toward the h-file.
// Path safety against attacks is pre-checked by the generator, not here.
func (p *Position) makeCastle(m Move, source SquareContent) bool {
	if !p.canCastle(m) {
		return false
	}
	var rookFrom, rookTo int
	if m.To > m.From { // kingside
		rookFrom = m.From + 3
		rookTo = m.From + 1
	} else { // queenside
		rookFrom = m.From - 4
		rookTo = m.From - 1
	}
	p.squares[rookTo] = p.squares[rookFrom]
	p.squares[rookFrom] = emptySquare()
	p.squares[m.To] = source
	p.squares[m.From] = emptySquare()

	p.updateCastlingRights(m)
	p.enPassant = NoSquare
	p.halfmoveClock++ // neither a capture nor a pawn move
	p.flipSideToMove()
	return true
}

// makeEnPassant relocates the capturing pawn and removes the pawn that just
// advanced two squares. Always a capture, so the half-move clock resets.
func (p *Position) makeEnPassant(m Move, source SquareContent) bool {
	if source.Piece != Pawn || p.enPassant != m.To {
		return false
	}
	p.squares[m.To] = source
	p.squares[m.From] = emptySquare()
	capSq := m.To - BoardSize
	if p.sideToMove == Black {
		capSq = m.To + BoardSize
	}
	p.squares[capSq] = emptySquare()

	p.enPassant = NoSquare
	p.updateCastlingRights(m)
	p.halfmoveClock = 0
	p.flipSideToMove()
	return true
}

func (p *Position) flipSideToMove() {
	p.sideToMove = p.sideToMove.Opponent()
	if p.sideToMove == White {
		p.fullmoveNumber++
	}
}

// updateCastlingRights applies the rights update rule after every move:
// leaving a king home square revokes both rights for that colour, leaving a
// rook home square revokes that single right, and landing on a rook home
// square revokes the captured rook's right. Rights are never re-granted.
func (p *Position) updateCastlingRights(m Move) {
	switch m.From {
	case ToIndex(4, 0): // e1
		p.castlingRights[CastleWhiteKingside] = false
		p.castlingRights[CastleWhiteQueenside] = false
	case ToIndex(4, 7): // e8
		p.castlingRights[CastleBlackKingside] = false
		p.castlingRights[CastleBlackQueenside] = false
	case ToIndex(0, 0): // a1
		p.castlingRights[CastleWhiteQueenside] = false
	case ToIndex(7, 0): // h1
		p.castlingRights[CastleWhiteKingside] = false
	case ToIndex(0, 7): // a8
		p.castlingRights[CastleBlackQueenside] = false
	case ToIndex(7, 7): // h8
		p.castlingRights[CastleBlackKingside] = false
	}
	switch m.To {
	case ToIndex(0, 0):
		p.castlingRights[CastleWhiteQueenside] = false
	case ToIndex(7, 0):
		p.castlingRights[CastleWhiteKingside] = false
	case ToIndex(0, 7):
		p.castlingRights[CastleBlackQueenside] = false
	case ToIndex(7, 7):
		p.castlingRights[CastleBlackKingside] = false
	}
}

// canCastle checks castling rights and that the squares strictly between king
// and rook are empty. Attack safety of the king's path is the generator's
// pre-check.
func (p *Position) canCastle(m Move) bool {
	rank := 0
	if p.sideToMove == Black {
		rank = 7
	}
	if m.To > m.From { // kingside
		right := CastleWhiteKingside
		if p.sideToMove == Black {
			right = CastleBlackKingside
		}
		if !p.castlingRights[right] {
			return false
		}
		for f := 5; f <= 6; f++ {
			if !p.squares[ToIndex(f, rank)].IsEmpty() {
				return false
			}
		}
	} else { // queenside
		right := CastleWhiteQueenside
		if p.sideToMove == Black {
			right = CastleBlackQueenside
		}
		if !p.castlingRights[right] {
			return false
		}
		for f := 1; f <= 3; f++ {
			if !p.squares[ToIndex(f, rank)].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// ParseMove parses coordinate notation ("e2e4", "e7e8q") against the current
// position, classifying castling and en passant from the moving piece.
// It returns ErrInvalidFormat on malformed coordinates.
func (p *Position) ParseMove(text string) (Move, error) {
	if len(text) < 4 {
		return Move{}, ErrInvalidFormat
	}
	fromFile := text[0]
	fromRank := text[1]
	toFile := text[2]
	toRank := text[3]
	if fromFile < 'a' || fromFile > 'h' || toFile < 'a' || toFile > 'h' {
		return Move{}, ErrInvalidFormat
	}
	if fromRank < '1' || fromRank > '8' || toRank < '1' || toRank > '8' {
		return Move{}, ErrInvalidFormat
	}

	ff, fr := int(fromFile-'a'), int(fromRank-'1')
	tf, tr := int(toFile-'a'), int(toRank-'1')
	m := Move{From: ToIndex(ff, fr), To: ToIndex(tf, tr)}

	if len(text) >= 5 {
		switch text[4] {
		case 'q', 'Q':
			m.Promotion = Queen
		case 'r', 'R':
			m.Promotion = Rook
		case 'b', 'B':
			m.Promotion = Bishop
		case 'n', 'N':
			m.Promotion = Knight
		}
	}

	src := p.squares[m.From]
	if src.Piece == King && abs(tf-ff) == 2 && fr == tr {
		m.Castle = true
	}
	if src.Piece == Pawn && p.squares[m.To].IsEmpty() && ff != tf && p.enPassant == m.To {
		m.EnPassant = true
	}
	return m, nil
}

// MakeMoveText parses and applies a move in coordinate notation, rejecting
// moves that are not in the current legal-move set. This is the entry point
// for externally supplied moves; the search applies only moves it generated
// itself and uses MakeMove directly.
func (p *Position) MakeMoveText(text string) error {
	m, err := p.ParseMove(text)
	if err != nil {
		return err
	}
	if !p.IsLegalMove(m) {
		return ErrIllegalMove
	}
	if !p.MakeMove(m) {
		return ErrIllegalMove
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
