package board

// Perft counts the leaf positions reachable from p in exactly depth plies.
// It is the primary correctness oracle for the move generator: the counts
// must reproduce published reference values for standard test positions.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range p.GenerateLegalMoves() {
		cp := *p
		if !cp.MakeMove(m) {
			continue
		}
		nodes += Perft(&cp, depth-1)
	}
	return nodes
}

// PerftDivide returns the node count below each root move. Useful for
// bisecting a disagreement with a reference generator.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range p.GenerateLegalMoves() {
		cp := *p
		if !cp.MakeMove(m) {
			continue
		}
		div[m] = Perft(&cp, depth-1)
	}
	return div
}

// PerftResults is the breakdown produced by PerftDetailed. Move-type counts
// classify the moves applied at the deepest ply.
type PerftResults struct {
	Nodes      uint64
	Captures   uint64
	Promotions uint64
	Castles    uint64
	EnPassants uint64
	Checks     uint64
}

// PerftDetailed runs a perft that additionally classifies each last-ply move
// as capture/promotion/castle/en-passant/check, using the same attack
// primitive as the generator.
func PerftDetailed(p *Position, depth int) PerftResults {
	var results PerftResults
	perftDetailed(p, depth, &results)
	return results
}

func perftDetailed(p *Position, depth int, results *PerftResults) {
	if depth <= 0 {
		results.Nodes++
		return
	}
	for _, m := range p.GenerateLegalMoves() {
		if depth == 1 {
			dest := p.squares[m.To]
			if (!dest.IsEmpty() && dest.Color != p.sideToMove) || m.EnPassant {
				results.Captures++
			}
			if m.Promotion != NoPiece {
				results.Promotions++
			}
			if m.Castle {
				results.Castles++
			}
			if m.EnPassant {
				results.EnPassants++
			}
		}
		cp := *p
		if !cp.MakeMove(m) {
			continue
		}
		if depth == 1 && cp.InCheck(cp.sideToMove) {
			results.Checks++
		}
		perftDetailed(&cp, depth-1, results)
	}
}
