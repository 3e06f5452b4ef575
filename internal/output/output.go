// Package output writes finished or in-progress games as PGN or JSON. It is
// a derived view over a game's move log; nothing it writes is read back.
package output

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Record is everything the writers need to know about one game.
type Record struct {
	// Tags supplied by the caller. Result, SetUp and FEN are derived from
	// the other fields and override any entries here.
	Tags map[string]string

	// StartFEN is the starting position, empty for the standard one.
	StartFEN string

	Moves []chess.MoveRecord

	State      chess.GameState
	DrawReason chess.DrawReason
	Result     string

	// FinalFEN and FinalHash describe the last position.
	FinalFEN  string
	FinalHash uint64

	// MovesHash identifies the move sequence independently of the position.
	MovesHash uint64

	// Material is White's material minus Black's in the final position.
	Material int
}

// Termination returns the PGN Termination value for the record.
func (r *Record) Termination() string {
	switch {
	case r.State == chess.Checkmate:
		return "normal"
	case r.State == chess.Draw:
		return "normal: " + r.DrawReason.String()
	default:
		return "unterminated"
	}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero or
// less disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = math.MaxInt
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes rec to w as PGN using the output settings in cfg.
func OutputGame(w io.Writer, rec *Record, cfg *config.Config) {
	outputTags(w, rec, cfg)

	// Blank line between tags and moves
	fmt.Fprintln(w)

	outputMoves(w, rec, cfg)

	// Blank line between games
	fmt.Fprintln(w)
}

// outputTags writes the seven tag roster, then the setup tags, the
// annotation tags and finally any other tags in name order.
func outputTags(w io.Writer, rec *Record, cfg *config.Config) {
	if cfg.Output.TagFormat == config.NoTags {
		return
	}

	tags := recordTags(rec, cfg)
	for _, tag := range chess.SevenTagRoster {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
	if cfg.Output.TagFormat == config.SevenTagRoster {
		return
	}

	var extra []string
	for tag := range tags {
		if !chess.IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		ri, rj := extraTagRank(extra[i]), extraTagRank(extra[j])
		if ri != rj {
			return ri < rj
		}
		return extra[i] < extra[j]
	})
	for _, tag := range extra {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
}

// extraTagRank orders SetUp and FEN before annotation tags and those before
// everything else.
func extraTagRank(tag string) int {
	switch tag {
	case chess.SetupTag:
		return 0
	case chess.FENTag:
		return 1
	case chess.PlyCountTag, chess.TerminationTag, HashCodeTag:
		return 2
	default:
		return 3
	}
}

// HashCodeTag holds the Zobrist hash of the final position when enabled.
const HashCodeTag = "HashCode"

// recordTags merges the caller's tags with the derived ones and fills the
// seven tag roster with "?" where missing.
func recordTags(rec *Record, cfg *config.Config) map[string]string {
	tags := make(map[string]string, len(rec.Tags)+len(chess.SevenTagRoster)+4)
	for k, v := range rec.Tags {
		tags[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if tags[tag] == "" {
			tags[tag] = "?"
		}
	}
	tags[chess.ResultTag] = resultOf(rec)

	if rec.StartFEN != "" {
		tags[chess.SetupTag] = "1"
		tags[chess.FENTag] = rec.StartFEN
	} else {
		delete(tags, chess.SetupTag)
		delete(tags, chess.FENTag)
	}
	if cfg.Annotation.AddPlyCount {
		tags[chess.PlyCountTag] = strconv.Itoa(len(rec.Moves))
	}
	if cfg.Annotation.AddTermination {
		tags[chess.TerminationTag] = rec.Termination()
	}
	if cfg.Annotation.AddHashTag {
		tags[HashCodeTag] = fmt.Sprintf("%016x", rec.FinalHash)
	}
	return tags
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the movetext.
func outputMoves(w io.Writer, rec *Record, cfg *config.Config) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	for i, m := range rec.Moves {
		if cfg.Output.KeepMoveNumbers {
			if m.Colour() == chess.White {
				ow.Write(fmt.Sprintf("%d.", m.Number))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", m.Number))
			}
		}
		ow.Write(formatMove(m, cfg.Output))
	}

	if cfg.Annotation.AddFinalFEN && rec.FinalFEN != "" {
		ow.Write("{" + rec.FinalFEN + "}")
	}
	if cfg.Output.KeepResults {
		ow.Write(resultOf(rec))
	}

	ow.NewLine()
}

// formatMove renders one move in the configured notation.
func formatMove(m chess.MoveRecord, out *config.OutputConfig) string {
	if out.Format == config.LALG {
		return m.Move.String()
	}
	if !out.KeepChecks {
		return strings.TrimRight(m.Notation, "+#")
	}
	return m.Notation
}

// resultOf returns the record's result token, "*" when unset.
func resultOf(rec *Record) string {
	if rec.Result == "" {
		return chess.ResultInProgress
	}
	return rec.Result
}
