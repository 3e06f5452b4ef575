package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// statistics tallies finished games for the summary.
type statistics struct {
	games      int
	written    int
	duplicates int
	errors     int

	whiteWins  int
	blackWins  int
	draws      map[chess.DrawReason]int
	unfinished int
	plies      int
}

func (s *statistics) add(rec *output.Record) {
	s.games++
	s.plies += len(rec.Moves)

	switch rec.Result {
	case chess.ResultWhiteWins:
		s.whiteWins++
	case chess.ResultBlackWins:
		s.blackWins++
	case chess.ResultDraw:
		if s.draws == nil {
			s.draws = make(map[chess.DrawReason]int)
		}
		s.draws[rec.DrawReason]++
	default:
		s.unfinished++
	}
}

func (s *statistics) drawCount() int {
	n := 0
	for _, c := range s.draws {
		n += c
	}
	return n
}

// reportStatistics prints the summary to w, coloured when w is a terminal.
func reportStatistics(w io.Writer, s *statistics) {
	out := termenv.NewOutput(w)
	label := func(text, colour string) termenv.Style {
		return out.String(text).Foreground(out.Color(colour)).Bold()
	}

	fmt.Fprintf(w, "%d game(s) played, %d written, %d duplicate(s).\n", s.games, s.written, s.duplicates)
	fmt.Fprintf(w, "  %s %d  %s %d  %s %d  %s %d\n",
		label("1-0", "2"), s.whiteWins,
		label("0-1", "1"), s.blackWins,
		label("1/2-1/2", "3"), s.drawCount(),
		label("*", "8"), s.unfinished)

	for _, reason := range []chess.DrawReason{chess.Stalemate, chess.InsufficientMaterial, chess.Repetition, chess.FiftyMove} {
		if n := s.draws[reason]; n > 0 {
			fmt.Fprintf(w, "    %s: %d\n", reason, n)
		}
	}
	if s.games > 0 {
		fmt.Fprintf(w, "  average length %.1f plies\n", float64(s.plies)/float64(s.games))
	}
	if s.errors > 0 {
		fmt.Fprintf(w, "  %s %d game(s) failed\n", label("error:", "9"), s.errors)
	}
}
