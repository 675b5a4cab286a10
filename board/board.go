package board

import "strings"

// Piece is a colorless piece kind.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Color identifies the owner of a piece. Empty squares carry NoColor.
type Color uint8

const (
	White Color = 0
	Black Color = 1
	// NoColor marks empty squares
	NoColor Color = 2
)

// Opponent returns the other side. Only meaningful for White and Black.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// SquareContent is the (piece kind, colour) pair held by one board square.
// The zero value represents an empty square.
type SquareContent struct {
	Piece Piece
	Color Color
}

func emptySquare() SquareContent { return SquareContent{NoPiece, NoColor} }

// IsEmpty reports whether the square holds no piece.
func (s SquareContent) IsEmpty() bool { return s.Piece == NoPiece }

// Board geometry. Squares are indexed 0-63, index = rank*8 + file.
const (
	BoardSize  = 8
	NumSquares = 64
)

// NoSquare marks an absent square reference (en passant target, king lookup).
const NoSquare = -1

// ToIndex converts file/rank coordinates (both 0-7) to a square index.
func ToIndex(file, rank int) int { return rank*BoardSize + file }

// FileOf returns the file (0-7) of a square index.
func FileOf(sq int) int { return sq % BoardSize }

// RankOf returns the rank (0-7) of a square index.
func RankOf(sq int) int { return sq / BoardSize }

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// Castling rights indices into Position.castlingRights.
const (
	CastleWhiteKingside = iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside
)

// Position is the single source of truth for a game state: piece placement,
// side to move, castling rights, en passant target and move counters.
// It is a value type; exploring an alternative line is done by copying the
// whole Position (cp := *p) and mutating the copy, never by undoing moves.
type Position struct {
	squares [64]SquareContent

	sideToMove Color

	// [white kingside, white queenside, black kingside, black queenside];
	// monotonically non-increasing over a game.
	castlingRights [4]bool

	// En passant target square, or NoSquare. Valid only on the position
	// immediately following a two-square pawn advance.
	enPassant int

	// Half-moves since the last capture or pawn move (50-move rule).
	halfmoveClock int

	// Starts at 1, incremented after Black's move.
	fullmoveNumber int
}

// NewPosition returns a Position set up for the standard initial position.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset restores the standard starting position.
func (p *Position) Reset() {
	for sq := range p.squares {
		p.squares[sq] = emptySquare()
	}
	backRank := [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < BoardSize; f++ {
		p.squares[ToIndex(f, 0)] = SquareContent{backRank[f], White}
		p.squares[ToIndex(f, 1)] = SquareContent{Pawn, White}
		p.squares[ToIndex(f, 6)] = SquareContent{Pawn, Black}
		p.squares[ToIndex(f, 7)] = SquareContent{backRank[f], Black}
	}
	p.sideToMove = White
	p.castlingRights = [4]bool{true, true, true, true}
	p.enPassant = NoSquare
	p.halfmoveClock = 0
	p.fullmoveNumber = 1
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// PieceAt returns the content of a square. Out-of-range indices read as empty.
func (p *Position) PieceAt(sq int) SquareContent {
	if sq < 0 || sq >= NumSquares {
		return emptySquare()
	}
	return p.squares[sq]
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// SetSideToMove updates the side to play. Use with care; normal move making
// toggles automatically.
func (p *Position) SetSideToMove(c Color) { p.sideToMove = c }

// CastlingRights returns the four rights flags
// [white kingside, white queenside, black kingside, black queenside].
func (p *Position) CastlingRights() [4]bool { return p.castlingRights }

// EnPassantSquare returns the current en passant target square or NoSquare.
func (p *Position) EnPassantSquare() int { return p.enPassant }

// ClearEnPassant drops the en passant target.
func (p *Position) ClearEnPassant() { p.enPassant = NoSquare }

// HalfmoveClock returns half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the square of the given side's king, or NoSquare if the
// position is ill-formed and holds no such king.
func (p *Position) KingSquare(c Color) int {
	for sq := 0; sq < NumSquares; sq++ {
		if p.squares[sq].Piece == King && p.squares[sq].Color == c {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the given side's king is attacked.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Opponent())
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	return len(p.GenerateLegalMoves()) > 0
}

// InCheckmate reports whether the side to move is checkmated. Terminal status
// is discovered through legal-move emptiness, not a separate rule set.
func (p *Position) InCheckmate() bool {
	return p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (p *Position) InStalemate() bool {
	return !p.InCheck(p.sideToMove) && !p.HasLegalMoves()
}

// String renders an ASCII diagram of the board, rank 8 at the top.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString("  -----------------\n")
	for r := BoardSize - 1; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteString("| ")
		for f := 0; f < BoardSize; f++ {
			sq := p.squares[ToIndex(f, r)]
			if sq.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromSquare(sq))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('|')
		sb.WriteByte('1' + byte(r))
		sb.WriteByte('\n')
	}
	sb.WriteString("  -----------------\n")
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
