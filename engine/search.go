package engine

import "oliviathan/board"

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds the alpha-beta window.
	MaxScore int32 = 1 << 24

	// MateScore is the base magnitude of a checkmate score; it is shifted by
	// the remaining depth so that faster mates score more extremely.
	MateScore int32 = 100000

	DrawScore int32 = 0
)

// FindBestMove explores the game tree below the position to the given depth
// and returns the best move for the side to move along with its score.
// Scores follow the fixed convention that positive favours White; the
// maximising sense at the root is taken from the side to move.
//
// The search holds no state between calls: every node copies the whole
// position before applying a move, so sibling branches can never observe
// each other's mutations, and nothing is ever undone.
//
// When the root has no legal moves the terminal score (mate or stalemate)
// is returned with the null move, the same policy interior nodes apply.
func FindBestMove(p *board.Position, depth int) (board.Move, int32) {
	maximizing := p.SideToMove() == board.White

	moves := p.GenerateLegalMoves()
	if len(moves) == 0 {
		return board.NullMove, terminalScore(p, depth)
	}

	list := scoreMoves(p, moves)
	alpha, beta := -MaxScore, MaxScore
	bestMove := board.NullMove
	bestScore := -MaxScore
	if !maximizing {
		bestScore = MaxScore
	}

	for i := range list.moves {
		orderNextMove(i, &list)
		m := list.moves[i].move

		cp := p.Copy()
		if !cp.MakeMove(m) {
			// Only self-generated legal moves reach this point; a failure
			// here is a generator defect, not a normal-path error.
			continue
		}
		score := minimax(cp, depth-1, alpha, beta, !maximizing)

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			alpha = Max(alpha, score)
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
			}
			beta = Min(beta, score)
		}
	}

	return bestMove, bestScore
}

// minimax is a depth-first alpha-beta search. "maximizing" always means it is
// White's turn at this node; the sense alternates every ply.
func minimax(p *board.Position, depth int, alpha, beta int32, maximizing bool) int32 {
	if depth <= 0 {
		return Evaluate(p)
	}

	moves := p.GenerateLegalMoves()
	if len(moves) == 0 {
		return terminalScore(p, depth)
	}

	list := scoreMoves(p, moves)

	if maximizing {
		maxEval := -MaxScore
		for i := range list.moves {
			orderNextMove(i, &list)
			cp := p.Copy()
			if !cp.MakeMove(list.moves[i].move) {
				continue
			}
			eval := minimax(cp, depth-1, alpha, beta, false)
			maxEval = Max(maxEval, eval)
			alpha = Max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := MaxScore
	for i := range list.moves {
		orderNextMove(i, &list)
		cp := p.Copy()
		if !cp.MakeMove(list.moves[i].move) {
			continue
		}
		eval := minimax(cp, depth-1, alpha, beta, true)
		minEval = Min(minEval, eval)
		beta = Min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}

// terminalScore scores a node whose side to move has no legal moves: mate if
// the king is attacked, signed against the mated side and shifted by the
// remaining depth; stalemate otherwise.
func terminalScore(p *board.Position, depth int) int32 {
	side := p.SideToMove()
	if p.InCheck(side) {
		mate := MateScore + int32(depth)
		if side == board.White {
			return -mate
		}
		return mate
	}
	return DrawScore
}
