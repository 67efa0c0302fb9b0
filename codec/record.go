// Package codec serializes positions: a FEN-style text record for callers
// and a compact fixed-width key for repetition detection.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/imcnaugh/simple-chess/chess"
	"github.com/imcnaugh/simple-chess/errors"
)

// InitialRecord is the text record for the standard starting position.
const InitialRecord = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field names reported by RecordError.
const (
	fieldPlacement  = "piece placement"
	fieldSideToMove = "side to move"
	fieldCastling   = "castling availability"
	fieldEnPassant  = "en passant target"
	fieldHalfmove   = "halfmove clock"
	fieldFullmove   = "fullmove number"
)

// PieceFromLetter converts a record character to an uncoloured piece kind.
func PieceFromLetter(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// PieceLetter returns the record letter for a coloured piece: uppercase
// for white, lowercase for black.
func PieceLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// DecodeRecord parses a FEN-style text record into a board. All six fields
// are required. On failure it returns a *errors.RecordError naming the
// offending field; no partial state escapes.
func DecodeRecord(record string) (*chess.Board, error) {
	parts := strings.Fields(record)
	if len(parts) != 6 {
		return nil, &errors.RecordError{
			Field: "record",
			Value: record,
			Err:   fmt.Errorf("expected 6 fields, got %d", len(parts)),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePlacement(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastling(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePlacement parses the piece placement field. It requires eight
// ranks of eight files and exactly one king per side.
func parsePiecePlacement(board *chess.Board, placement string) error {
	fail := func(cause error) error {
		return &errors.RecordError{Field: fieldPlacement, Value: placement, Err: cause}
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fail(fmt.Errorf("expected 8 ranks, got %d", len(ranks)))
	}

	whiteKings, blackKings := 0, 0
	rank := chess.Rank(chess.LastRank)
	for _, rankText := range ranks {
		col := chess.Col(chess.FirstCol)
		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				piece := PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return fail(fmt.Errorf("invalid piece character %q", c))
				}
				if col > chess.LastCol {
					return fail(fmt.Errorf("rank %c overflows the board", rank))
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

				if piece == chess.King {
					if colour == chess.White {
						whiteKings++
						board.WKingCol, board.WKingRank = col, rank
					} else {
						blackKings++
						board.BKingCol, board.BKingRank = col, rank
					}
				}
				col++
			}
		}
		if col != chess.LastCol+1 {
			return fail(fmt.Errorf("rank %c has %d files, expected 8", rank, int(col-chess.FirstCol)))
		}
		rank--
	}

	if whiteKings != 1 || blackKings != 1 {
		return fail(fmt.Errorf("expected one king per side, got %d white and %d black", whiteKings, blackKings))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.RecordError{Field: fieldSideToMove, Value: field}
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(board *chess.Board, field string) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if field == "-" {
		return nil
	}
	if field == "" {
		return &errors.RecordError{Field: fieldCastling, Value: field}
	}

	for _, c := range field {
		switch c {
		case 'K':
			board.WKingCastle = 'h'
		case 'Q':
			board.WQueenCastle = 'a'
		case 'k':
			board.BKingCastle = 'h'
		case 'q':
			board.BQueenCastle = 'a'
		default:
			return &errors.RecordError{
				Field: fieldCastling,
				Value: field,
				Err:   fmt.Errorf("invalid castling character %q", c),
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// must sit on rank 3 (white pushed) or rank 6 (black pushed).
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	if field == "-" {
		return nil
	}

	fail := func() error {
		return &errors.RecordError{Field: fieldEnPassant, Value: field}
	}
	if len(field) != 2 {
		return fail()
	}
	col := chess.Col(field[0])
	rank := chess.Rank(field[1])
	if col < chess.FirstCol || col > chess.LastCol {
		return fail()
	}
	if rank != '3' && rank != '6' {
		return fail()
	}

	board.EnPassant = true
	board.EPCol = col
	board.EPRank = rank
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.RecordError{Field: fieldHalfmove, Value: halfmove, Err: err}
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || fm == 0 {
		if err == nil {
			err = fmt.Errorf("must be at least 1")
		}
		return &errors.RecordError{Field: fieldFullmove, Value: fullmove, Err: err}
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// EncodeRecord converts a board to its FEN-style text record.
func EncodeRecord(board *chess.Board) string {
	var sb strings.Builder

	writePiecePlacement(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastling(&sb, board)
	sb.WriteByte(' ')
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePlacement writes the piece placement field to the builder.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes the castling availability field to the builder.
func writeCastling(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
