package board

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// squareFromChar converts a FEN character to the corresponding square content.
func squareFromChar(ch rune) SquareContent {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return SquareContent{Pawn, color}
	case 'N':
		return SquareContent{Knight, color}
	case 'B':
		return SquareContent{Bishop, color}
	case 'R':
		return SquareContent{Rook, color}
	case 'Q':
		return SquareContent{Queen, color}
	case 'K':
		return SquareContent{King, color}
	default:
		return emptySquare()
	}
}

// charFromSquare converts square content to its FEN character representation.
func charFromSquare(s SquareContent) rune {
	var ch rune
	switch s.Piece {
	case Pawn:
		ch = 'P'
	case Knight:
		ch = 'N'
	case Bishop:
		ch = 'B'
	case Rook:
		ch = 'R'
	case Queen:
		ch = 'Q'
	case King:
		ch = 'K'
	default:
		return '?'
	}
	if s.Color == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN string and returns a new Position set up to it.
// Returns an error if the FEN is invalid or cannot be parsed.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	p := &Position{}
	p.enPassant = NoSquare
	p.fullmoveNumber = 1
	for sq := range p.squares {
		p.squares[sq] = emptySquare()
	}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("invalid FEN: empty rank description")
		}
		rank := 7 - i // first FEN rank is rank 8
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			sq := squareFromChar(ch)
			if sq.IsEmpty() {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			p.squares[ToIndex(file, rank)] = sq
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights[CastleWhiteKingside] = true
			case 'Q':
				p.castlingRights[CastleWhiteQueenside] = true
			case 'k':
				p.castlingRights[CastleBlackKingside] = true
			case 'q':
				p.castlingRights[CastleBlackQueenside] = true
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		fileChar := fields[3][0]
		rankChar := fields[3][1]
		if fileChar < 'a' || fileChar > 'h' || rankChar < '1' || rankChar > '8' {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		p.enPassant = ToIndex(int(fileChar-'a'), int(rankChar-'1'))
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		p.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		p.fullmoveNumber = fullmove
	}

	return p, nil
}

// ToFEN produces the FEN string representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement, rank 8 down to rank 1
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			sq := p.squares[ToIndex(file, rank)]
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(charFromSquare(sq))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	anyRights := false
	for i, ch := range []byte{'K', 'Q', 'k', 'q'} {
		if p.castlingRights[i] {
			sb.WriteByte(ch)
			anyRights = true
		}
	}
	if !anyRights {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 4. En passant square
	if p.enPassant != NoSquare {
		sb.WriteByte('a' + byte(FileOf(p.enPassant)))
		sb.WriteByte('1' + byte(RankOf(p.enPassant)))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5/6. Clocks
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
