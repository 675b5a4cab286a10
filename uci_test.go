package main

import (
	"strings"
	"testing"

	"oliviathan/board"
)

func TestHandlePositionStartpos(t *testing.T) {
	pos, err := handlePosition([]string{"startpos"})
	if err != nil {
		t.Fatalf("startpos: %v", err)
	}
	if got := pos.ToFEN(); got != board.FENStartPos {
		t.Fatalf("got %q want %q", got, board.FENStartPos)
	}
}

func TestHandlePositionStartposWithMoves(t *testing.T) {
	pos, err := handlePosition([]string{"startpos", "moves", "e2e4", "c7c5", "g1f3"})
	if err != nil {
		t.Fatalf("startpos with moves: %v", err)
	}
	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := pos.ToFEN(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestHandlePositionFEN(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	args := append([]string{"fen"}, strings.Fields(fen)...)
	pos, err := handlePosition(args)
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	if got := pos.ToFEN(); got != fen {
		t.Fatalf("got %q want %q", got, fen)
	}
}

func TestHandlePositionRejectsBadInput(t *testing.T) {
	if _, err := handlePosition(nil); err == nil {
		t.Error("empty arguments should be rejected")
	}
	if _, err := handlePosition([]string{"sidepos"}); err == nil {
		t.Error("unknown position kind should be rejected")
	}
	if _, err := handlePosition([]string{"startpos", "moves", "e2e5"}); err == nil {
		t.Error("illegal move in the list should be rejected")
	}
	if _, err := handlePosition([]string{"fen", "garbage"}); err == nil {
		t.Error("malformed FEN should be rejected")
	}
}
