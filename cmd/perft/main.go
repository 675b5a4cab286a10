package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"oliviathan/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	detailed := flag.Bool("detailed", false, "Break down leaf moves by type (captures, castles, ...)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := board.PerftDivide(pos, *depth)
		// Sort moves for stable output
		type kv struct {
			m board.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *detailed {
		start := time.Now()
		res := board.PerftDetailed(pos, *depth)
		elapsed := time.Since(start)
		fmt.Printf("Nodes: %d\n", res.Nodes)
		fmt.Printf("Captures: %d\n", res.Captures)
		fmt.Printf("En passants: %d\n", res.EnPassants)
		fmt.Printf("Castles: %d\n", res.Castles)
		fmt.Printf("Promotions: %d\n", res.Promotions)
		fmt.Printf("Checks: %d\n", res.Checks)
		fmt.Printf("Time: %s\n", elapsed)
		return
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
