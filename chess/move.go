package chess

import "strings"

// MoveClass categorizes the kinds of chess moves the engine applies.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleMove
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{
		"PawnMove", "PawnDoubleMove", "PawnMoveWithPromotion",
		"EnPassantPawnMove", "PieceMove", "KingsideCastle", "QueensideCastle",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move represents a single move as a comparable value. Moves are immutable
// once created; equality with == identifies a move within a legal-move set.
type Move struct {
	// Source and destination squares. For castling these are the king's
	// source and destination.
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The kind of piece being moved (uncoloured).
	PieceToMove Piece

	// The kind promoted to; Empty unless Class is PawnMoveWithPromotion.
	PromotedPiece Piece
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.PromotedPiece.Letter() + 'a' - 'A')
	}
	return sb.String()
}
