package chess

import "fmt"

// Square identifies one of the 64 board squares by file and rank
// characters. The zero value is not a valid square; construct squares with
// NewSquare or Sq so that off-board coordinates are rejected up front.
type Square struct {
	Col  Col
	Rank Rank
}

// NewSquare builds a square from file and rank characters, reporting
// whether the coordinates are on the board.
func NewSquare(col Col, rank Rank) (Square, bool) {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, false
	}
	return Square{Col: col, Rank: rank}, true
}

// Sq builds a square from file and rank characters. It panics on off-board
// coordinates and is intended for literals in code and tests.
func Sq(col Col, rank Rank) Square {
	sq, ok := NewSquare(col, rank)
	if !ok {
		panic(fmt.Sprintf("chess: square %c%c is off the board", col, rank))
	}
	return sq
}

// Offset returns the square displaced by dc files and dr ranks, reporting
// whether the result is still on the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	return NewSquare(Col(int(s.Col)+dc), Rank(int(s.Rank)+dr))
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}
