package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	if b.ToMove != White {
		t.Errorf("NewBoard().ToMove = %v, want White", b.ToMove)
	}
	if b.MoveNumber != 1 {
		t.Errorf("NewBoard().MoveNumber = %d, want 1", b.MoveNumber)
	}

	// Interior squares are empty, hedge squares are off the board.
	if got := b.Get('a', '1'); got != Empty {
		t.Errorf("Get('a', '1') = %v, want Empty", got)
	}
	if got := b.Get('h', '8'); got != Empty {
		t.Errorf("Get('h', '8') = %v, want Empty", got)
	}
	if got := b.Get('i', '1'); got != Off {
		t.Errorf("Get('i', '1') = %v, want Off", got)
	}
	if b.Squares[0][0] != Off {
		t.Errorf("hedge square = %v, want Off", b.Squares[0][0])
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		col  Col
		rank Rank
		want Piece
	}{
		{'e', '1', W(King)},
		{'d', '1', W(Queen)},
		{'a', '1', W(Rook)},
		{'e', '2', W(Pawn)},
		{'e', '8', B(King)},
		{'d', '8', B(Queen)},
		{'h', '8', B(Rook)},
		{'e', '7', B(Pawn)},
		{'e', '4', Empty},
	}
	for _, tt := range tests {
		if got := b.Get(tt.col, tt.rank); got != tt.want {
			t.Errorf("Get(%c, %c) = %v, want %v", tt.col, tt.rank, got, tt.want)
		}
	}

	if got := b.KingSquare(White); got != Sq('e', '1') {
		t.Errorf("KingSquare(White) = %v, want e1", got)
	}
	if got := b.KingSquare(Black); got != Sq('e', '8') {
		t.Errorf("KingSquare(Black) = %v, want e8", got)
	}

	if b.WKingCastle != 'h' || b.WQueenCastle != 'a' || b.BKingCastle != 'h' || b.BQueenCastle != 'a' {
		t.Error("initial position should have all four castling rights")
	}
	if b.EnPassant {
		t.Error("initial position should have no en passant target")
	}
}

func TestSquaresWith(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	count := 0
	var first Square
	for sq, piece := range b.SquaresWith(func(_ Square, p Piece) bool {
		return ExtractColour(p) == White
	}) {
		if count == 0 {
			first = sq
		}
		if ExtractColour(piece) != White {
			t.Errorf("SquaresWith yielded black piece at %v", sq)
		}
		count++
	}

	if count != 16 {
		t.Errorf("SquaresWith(white) yielded %d squares, want 16", count)
	}
	if first != Sq('a', '1') {
		t.Errorf("first white square = %v, want a1 (scan order files a-h, ranks 1-8)", first)
	}
}

func TestSquaresWith_EarlyStop(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	seen := 0
	for range b.SquaresWith(func(Square, Piece) bool { return true }) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("stopped after %d squares, want 3", seen)
	}
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	c := b.Copy()
	c.Set('e', '2', Empty)
	c.Set('e', '4', W(Pawn))
	c.ToMove = Black

	if b.Get('e', '2') != W(Pawn) {
		t.Error("mutating the copy changed the original board")
	}
	if b.ToMove != White {
		t.Error("mutating the copy changed the original side to move")
	}
	if c.Get('e', '4') != W(Pawn) {
		t.Error("copy did not accept mutation")
	}
}

func TestSaveRestoreMeta(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	saved := b.SaveMeta()

	b.ToMove = Black
	b.MoveNumber = 12
	b.WKingCastle = 0
	b.EnPassant = true
	b.EPCol = 'e'
	b.EPRank = '3'
	b.HalfmoveClock = 7
	b.SetKingSquare(White, Sq('d', '2'))

	b.RestoreMeta(saved)

	if b.ToMove != White || b.MoveNumber != 1 || b.WKingCastle != 'h' ||
		b.EnPassant || b.HalfmoveClock != 0 {
		t.Errorf("RestoreMeta did not restore scalar state: %+v", b.SaveMeta())
	}
	if b.KingSquare(White) != Sq('e', '1') {
		t.Errorf("RestoreMeta did not restore king tracking: %v", b.KingSquare(White))
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	s := b.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("String() has %d lines, want 9", len(lines))
	}
	if lines[0] != "8 r n b q k b n r" {
		t.Errorf("rank 8 line = %q", lines[0])
	}
	if lines[7] != "1 R N B Q K B N R" {
		t.Errorf("rank 1 line = %q", lines[7])
	}
	if lines[4] != "4 . . . . . . . ." {
		t.Errorf("rank 4 line = %q", lines[4])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("file label line = %q", lines[8])
	}
}
