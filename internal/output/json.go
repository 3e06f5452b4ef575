package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags        map[string]string `json:"tags"`
	Moves       []JSONMove        `json:"moves,omitempty"`
	Result      string            `json:"result"`
	State       string            `json:"state"`
	DrawReason  string            `json:"drawReason,omitempty"`
	PlyCount    int               `json:"plyCount"`
	FinalFEN    string            `json:"finalFEN,omitempty"`
	Material    int               `json:"materialBalance"`
	MovesHash   string            `json:"movesHash"`
	InitialFEN  string            `json:"initialFEN,omitempty"`
	Termination string            `json:"termination,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Castle     string `json:"castle,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Checkmate  bool   `json:"checkmate,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(w io.Writer, recs []*Record, cfg *config.Config) error {
	jsonGames := make([]*JSONGame, len(recs))
	for i, rec := range recs {
		jsonGames[i] = RecordToJSON(rec, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// RecordToJSON converts a game record to JSON format.
func RecordToJSON(rec *Record, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Tags:       recordTags(rec, cfg),
		Moves:      make([]JSONMove, 0, len(rec.Moves)),
		Result:     resultOf(rec),
		State:      rec.State.String(),
		PlyCount:   len(rec.Moves),
		FinalFEN:   rec.FinalFEN,
		Material:   rec.Material,
		MovesHash:  fmt.Sprintf("%016x", rec.MovesHash),
		InitialFEN: rec.StartFEN,
	}
	if rec.State == chess.Draw {
		jg.DrawReason = rec.DrawReason.String()
	}
	if cfg.Annotation.AddTermination {
		jg.Termination = rec.Termination()
	}

	for _, m := range rec.Moves {
		jg.Moves = append(jg.Moves, convertMove(m))
	}
	return jg
}

// convertMove converts a single logged move to JSON format.
func convertMove(m chess.MoveRecord) JSONMove {
	jm := JSONMove{
		MoveNumber: m.Number,
		Color:      strings.ToLower(m.Colour().String()),
		SAN:        m.Notation,
		UCI:        m.Move.String(),
		From:       m.Move.From.String(),
		To:         m.Move.To.String(),
		Piece:      pieceTypeName(m.Move.Piece),
		Captured:   pieceTypeName(m.Move.Captured),
		Promotion:  pieceTypeName(m.Move.Promotion),
		EnPassant:  m.Move.EnPassant,
		Check:      m.CheckStatus != chess.NoCheck,
		Checkmate:  m.CheckStatus == chess.GivesCheckmate,
	}
	if m.Move.IsCastle() {
		jm.Castle = m.Move.Castle.String()
	}
	return jm
}

// pieceTypeName returns the lowercase name of a kind, empty for NoKind.
func pieceTypeName(kind chess.Kind) string {
	if kind == chess.NoKind {
		return ""
	}
	return strings.ToLower(kind.String())
}
