package chess

import (
	"iter"
	"strings"
)

// Board represents a chess board with all state needed to resume a game.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full move number.
	MoveNumber uint

	// Rook starting columns for the 4 castling options. A zero column
	// means the corresponding right has been lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so then EPCol and EPRank have
	// the square on which this can be made.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col+Hedge][Hedge] = W(backRank[col])
		b.Squares[col+Hedge][Hedge+1] = W(Pawn)
		b.Squares[col+Hedge][Hedge+6] = B(Pawn)
		b.Squares[col+Hedge][Hedge+7] = B(backRank[col])
	}

	b.WKingCol = 'e'
	b.WKingRank = '1'
	b.BKingCol = 'e'
	b.BKingRank = '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on the given square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on the given square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// KingSquare returns the square of the given colour's king.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return Square{Col: b.WKingCol, Rank: b.WKingRank}
	}
	return Square{Col: b.BKingCol, Rank: b.BKingRank}
}

// SetKingSquare records the king position for the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col, sq.Rank
	} else {
		b.BKingCol, b.BKingRank = sq.Col, sq.Rank
	}
}

// SquaresWith returns a restartable sequence of the occupied squares whose
// coloured piece satisfies pred. Squares are visited in board-scan order:
// files a-h, ranks 1-8 within each file.
func (b *Board) SquaresWith(pred func(Square, Piece) bool) iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for col := Col(FirstCol); col <= LastCol; col++ {
			for rank := Rank(FirstRank); rank <= LastRank; rank++ {
				piece := b.Get(col, rank)
				if piece == Empty || piece == Off {
					continue
				}
				sq := Square{Col: col, Rank: rank}
				if !pred(sq, piece) {
					continue
				}
				if !yield(sq, piece) {
					return
				}
			}
		}
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Meta captures the scalar board state that a move can change besides the
// squares themselves. Saving it before a move and restoring it afterwards
// gives exact undo without snapshotting the whole board.
type Meta struct {
	ToMove        Colour
	MoveNumber    uint
	WKingCastle   Col
	WQueenCastle  Col
	BKingCastle   Col
	BQueenCastle  Col
	WKingCol      Col
	WKingRank     Rank
	BKingCol      Col
	BKingRank     Rank
	EnPassant     bool
	EPCol         Col
	EPRank        Rank
	HalfmoveClock uint
}

// SaveMeta captures the current scalar state for later restoration.
func (b *Board) SaveMeta() Meta {
	return Meta{
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		WKingCastle:   b.WKingCastle,
		WQueenCastle:  b.WQueenCastle,
		BKingCastle:   b.BKingCastle,
		BQueenCastle:  b.BQueenCastle,
		WKingCol:      b.WKingCol,
		WKingRank:     b.WKingRank,
		BKingCol:      b.BKingCol,
		BKingRank:     b.BKingRank,
		EnPassant:     b.EnPassant,
		EPCol:         b.EPCol,
		EPRank:        b.EPRank,
		HalfmoveClock: b.HalfmoveClock,
	}
}

// RestoreMeta restores previously saved scalar state.
func (b *Board) RestoreMeta(m Meta) {
	b.ToMove = m.ToMove
	b.MoveNumber = m.MoveNumber
	b.WKingCastle = m.WKingCastle
	b.WQueenCastle = m.WQueenCastle
	b.BKingCastle = m.BKingCastle
	b.BQueenCastle = m.BQueenCastle
	b.WKingCol = m.WKingCol
	b.WKingRank = m.WKingRank
	b.BKingCol = m.BKingCol
	b.BKingRank = m.BKingRank
	b.EnPassant = m.EnPassant
	b.EPCol = m.EPCol
	b.EPRank = m.EPRank
	b.HalfmoveClock = m.HalfmoveClock
}

// String renders the board as an 8x8 text grid with rank and file labels.
// White pieces are uppercase, black pieces lowercase, empty squares dots.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank(LastRank); rank >= FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		sb.WriteByte(' ')
		for col := Col(FirstCol); col <= LastCol; col++ {
			piece := b.Get(col, rank)
			if piece == Empty {
				sb.WriteByte('.')
			} else {
				letter := ExtractPiece(piece).Letter()
				if ExtractColour(piece) == Black {
					letter += 'a' - 'A'
				}
				sb.WriteByte(letter)
			}
			if col < LastCol {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
