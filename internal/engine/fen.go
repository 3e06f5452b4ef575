package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. The four canonical
// fields are required; the halfmove clock and fullmove number default to
// 0 and 1. Castling rights whose king or rook is not on its home square are
// dropped, and HasMoved is inferred for kings and rooks from the remaining
// rights and for pawns from their start rank.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    fen,
			Expected: "4 to 6 fields",
			Got:      strconv.Itoa(len(parts)),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fen, parts[4:]); err != nil {
		return nil, err
	}

	inferHasMoved(board)
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	fail := func(column int, expected, got string) error {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen, Field: "placement",
			Column: column, Expected: expected, Got: got,
		}
	}

	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fail(0, "8 ranks", strconv.Itoa(len(ranks)))
	}

	column := 0
	kings := map[chess.Colour]int{}
	for i, rankText := range ranks {
		rank := chess.LastRank - chess.Rank(i)
		col := chess.FirstCol
		for _, c := range rankText {
			column++
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			case c > unicode.MaxASCII:
				return fail(column, "piece letter or digit", fmt.Sprintf("%q", c))
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fail(column, "piece letter or digit", fmt.Sprintf("%q", c))
				}
				if col > chess.LastCol {
					return fail(column, "at most 8 squares per rank", "more")
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Put(chess.Sq(col, rank), chess.NewPiece(kind, colour))
				if kind == chess.King {
					kings[colour]++
				}
				col++
			}
			if col > chess.LastCol+1 {
				return fail(column, "at most 8 squares per rank", "more")
			}
		}
		column++ // the '/' separator
		if col != chess.LastCol+1 {
			return fail(column-1, "8 squares in rank "+string(rune(rank)), strconv.Itoa(int(col-chess.FirstCol)))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fail(0, "one "+colour.String()+" king", strconv.Itoa(kings[colour]))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "side", Expected: "w or b", Got: side}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, fen, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	seen := map[rune]bool{}
	for i, c := range field {
		if seen[c] {
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen, Field: "castling",
				Column: i + 1, Expected: "each of KQkq at most once", Got: string(c),
			}
		}
		seen[c] = true

		var colour chess.Colour
		var side chess.CastleSide
		switch c {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: fen, Field: "castling",
				Column: i + 1, Expected: "K, Q, k, q or -", Got: string(c),
			}
		}
		if castlingPiecesHome(board, colour, side) {
			switch {
			case colour == chess.White && side == chess.Kingside:
				board.Castling.WhiteKingside = true
			case colour == chess.White:
				board.Castling.WhiteQueenside = true
			case side == chess.Kingside:
				board.Castling.BlackKingside = true
			default:
				board.Castling.BlackQueenside = true
			}
		}
	}
	return nil
}

// castlingPiecesHome reports whether the king and the flank's rook stand on
// their home squares.
func castlingPiecesHome(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	home := chess.HomeRank(colour)
	king := board.PieceAt(chess.Sq(kingHomeCol, home))
	rook := board.PieceAt(chess.Sq(side.RookHomeCol(), home))
	return king != nil && king.Kind == chess.King && king.Colour == colour &&
		rook != nil && rook.Kind == chess.Rook && rook.Colour == colour
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, fen, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	// The target sits behind a pawn of the side that just moved.
	wantRank := chess.Rank('6')
	if board.ToMove == chess.Black {
		wantRank = '3'
	}
	if err != nil || sq.Rank != wantRank {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen, Field: "en passant",
			Expected: "- or a square on rank " + string(rune(wantRank)), Got: field,
		}
	}
	board.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen string, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "halfmove clock", Expected: "non-negative integer", Got: fields[0]}
		}
		board.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: "fullmove number", Expected: "positive integer", Got: fields[1]}
		}
		board.MoveNumber = n
	}
	return nil
}

// inferHasMoved marks kings and rooks that can no longer castle, and pawns
// off their start rank, as moved.
func inferHasMoved(board *chess.Board) {
	board.ForEach(func(p *chess.Piece) {
		home := chess.HomeRank(p.Colour)
		switch p.Kind {
		case chess.King:
			p.HasMoved = !(board.Castling.Has(p.Colour, chess.Kingside) || board.Castling.Has(p.Colour, chess.Queenside))
		case chess.Rook:
			switch p.Square {
			case chess.Sq(chess.Kingside.RookHomeCol(), home):
				p.HasMoved = !board.Castling.Has(p.Colour, chess.Kingside)
			case chess.Sq(chess.Queenside.RookHomeCol(), home):
				p.HasMoved = !board.Castling.Has(p.Colour, chess.Queenside)
			default:
				p.HasMoved = true
			}
		case chess.Pawn:
			p.HasMoved = p.Square.Rank != chess.PawnStartRank(p.Colour)
		}
	})
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	history.WriteCanonical(&sb, board)
	fmt.Fprintf(&sb, " %d %d", board.HalfmoveClock, board.MoveNumber)
	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return MustBoardFromFEN(InitialFEN)
}
