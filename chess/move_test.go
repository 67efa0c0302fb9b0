package chess

import "testing"

func TestNewSquare(t *testing.T) {
	if _, ok := NewSquare('e', '4'); !ok {
		t.Error("NewSquare('e', '4') should be valid")
	}
	if _, ok := NewSquare('i', '4'); ok {
		t.Error("NewSquare('i', '4') should be invalid")
	}
	if _, ok := NewSquare('e', '9'); ok {
		t.Error("NewSquare('e', '9') should be invalid")
	}
}

func TestSqPanicsOffBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sq('z', '1') should panic")
		}
	}()
	Sq('z', '1')
}

func TestSquareOffset(t *testing.T) {
	sq := Sq('e', '4')

	got, ok := sq.Offset(1, 1)
	if !ok || got != Sq('f', '5') {
		t.Errorf("e4.Offset(1, 1) = %v, %v, want f5, true", got, ok)
	}
	if _, ok := Sq('a', '1').Offset(-1, 0); ok {
		t.Error("a1.Offset(-1, 0) should be off the board")
	}
	if _, ok := Sq('h', '8').Offset(0, 1); ok {
		t.Error("h8.Offset(0, 1) should be off the board")
	}
}

func TestSquareString(t *testing.T) {
	if got := Sq('e', '4').String(); got != "e4" {
		t.Errorf("Sq('e', '4').String() = %q, want \"e4\"", got)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			"pawn push",
			Move{From: Sq('e', '2'), To: Sq('e', '4'), Class: PawnDoubleMove, PieceToMove: Pawn},
			"e2e4",
		},
		{
			"promotion",
			Move{From: Sq('e', '7'), To: Sq('e', '8'), Class: PawnMoveWithPromotion, PieceToMove: Pawn, PromotedPiece: Queen},
			"e7e8q",
		},
		{
			"underpromotion",
			Move{From: Sq('a', '2'), To: Sq('a', '1'), Class: PawnMoveWithPromotion, PieceToMove: Pawn, PromotedPiece: Knight},
			"a2a1n",
		},
		{
			"kingside castle",
			Move{From: Sq('e', '1'), To: Sq('g', '1'), Class: KingsideCastle, PieceToMove: King},
			"e1g1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveClassPredicates(t *testing.T) {
	castle := Move{Class: QueensideCastle}
	ep := Move{Class: EnPassantPawnMove}
	promo := Move{Class: PawnMoveWithPromotion, PromotedPiece: Queen}
	plain := Move{Class: PieceMove}

	if !castle.IsCastle() || plain.IsCastle() {
		t.Error("IsCastle misclassified")
	}
	if !ep.IsEnPassant() || plain.IsEnPassant() {
		t.Error("IsEnPassant misclassified")
	}
	if !promo.IsPromotion() || plain.IsPromotion() {
		t.Error("IsPromotion misclassified")
	}
}

func TestMoveComparable(t *testing.T) {
	a := Move{From: Sq('g', '1'), To: Sq('f', '3'), Class: PieceMove, PieceToMove: Knight}
	b := Move{From: Sq('g', '1'), To: Sq('f', '3'), Class: PieceMove, PieceToMove: Knight}
	if a != b {
		t.Error("identical moves should compare equal")
	}
}
