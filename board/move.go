package board

// Move is a plain value describing a move in coordinate terms. It carries no
// reference to the Position it was generated from and must be validated
// against the current Position before or during application.
type Move struct {
	From, To int

	// Promotion piece kind, NoPiece when the move is not a promotion.
	Promotion Piece

	Castle    bool
	EnPassant bool
}

// NullMove is the zero Move, used when no move can be reported.
var NullMove = Move{}

// String produces coordinate notation for the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := []byte{
		'a' + byte(FileOf(m.From)),
		'1' + byte(RankOf(m.From)),
		'a' + byte(FileOf(m.To)),
		'1' + byte(RankOf(m.To)),
	}
	if m.Promotion != NoPiece {
		switch m.Promotion {
		case Queen:
			s = append(s, 'q')
		case Rook:
			s = append(s, 'r')
		case Bishop:
			s = append(s, 'b')
		case Knight:
			s = append(s, 'n')
		}
	}
	return string(s)
}
