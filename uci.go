package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"oliviathan/board"
	"oliviathan/engine"
)

// defaultDepth is used when "go" is issued without an explicit depth.
const defaultDepth = 4

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	uciLoop(log)
}

// uciLoop reads protocol commands from stdin and prints responses on stdout.
// All diagnostics go to stderr so a GUI never sees them interleaved with
// protocol lines. The loop owns the single long-lived game position; the
// core packages never do any I/O themselves.
func uciLoop(log zerolog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	pos := board.NewPosition() // the game board

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Oliviathan")
			fmt.Println("id author MaskedOlive")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos.Reset()
		case "position":
			if next, err := handlePosition(tokens[1:]); err != nil {
				log.Error().Err(err).Str("line", line).Msg("position command rejected")
			} else {
				pos = next
			}
		case "go":
			depth := defaultDepth
			for i := 1; i < len(tokens)-1; i++ {
				if strings.ToLower(tokens[i]) == "depth" {
					if d, err := strconv.Atoi(tokens[i+1]); err == nil && d > 0 {
						depth = d
					} else {
						log.Warn().Str("value", tokens[i+1]).Msg("ignoring malformed go depth option")
					}
				}
			}
			start := time.Now()
			bestMove, score := engine.FindBestMove(pos, depth)
			elapsed := time.Since(start)
			fmt.Println("info depth", depth,
				"score cp", score,
				"time", elapsed.Milliseconds())
			fmt.Println("bestmove", bestMove.String())
			log.Info().Int("depth", depth).Int32("score", score).Dur("elapsed", elapsed).Msg("search finished")
		case "move":
			if len(tokens) < 2 {
				continue
			}
			if err := pos.MakeMoveText(tokens[1]); err != nil {
				log.Error().Err(err).Str("move", tokens[1]).Msg("move rejected")
				fmt.Println("info string invalid move", tokens[1])
			}
		case "fen":
			fmt.Println(pos.ToFEN())
		case "perft":
			if len(tokens) < 2 {
				continue
			}
			depth, err := strconv.Atoi(tokens[1])
			if err != nil || depth <= 0 {
				log.Error().Str("value", tokens[1]).Msg("perft depth must be a positive number")
				continue
			}
			start := time.Now()
			nodes := board.Perft(pos, depth)
			fmt.Println("perft nodes", nodes, "time", time.Since(start).Milliseconds())
		case "d":
			fmt.Print(pos.String())
			fmt.Println("FEN:", pos.ToFEN())
		case "stop":
			// The search runs to completion synchronously; nothing to stop.
		case "quit":
			return
		default:
			log.Debug().Str("command", tokens[0]).Msg("unknown command")
		}
	}
}

// handlePosition builds a position from "position startpos|fen <fen> [moves ...]"
// arguments (the leading "position" token already stripped).
func handlePosition(args []string) (*board.Position, error) {
	if len(args) == 0 {
		return nil, board.ErrInvalidFormat
	}

	var pos *board.Position
	idx := 0
	switch args[0] {
	case "startpos":
		pos = board.NewPosition()
		idx = 1
	case "fen":
		fenFields := make([]string, 0, 6)
		idx = 1
		for idx < len(args) && args[idx] != "moves" && len(fenFields) < 6 {
			fenFields = append(fenFields, args[idx])
			idx++
		}
		parsed, err := board.ParseFEN(strings.Join(fenFields, " "))
		if err != nil {
			return nil, err
		}
		pos = parsed
	default:
		return nil, board.ErrInvalidFormat
	}

	if idx < len(args) && args[idx] == "moves" {
		for _, text := range args[idx+1:] {
			if err := pos.MakeMoveText(text); err != nil {
				return nil, fmt.Errorf("move %s: %w", text, err)
			}
		}
	}
	return pos, nil
}
