package chess

import "testing"

func TestColouredPieceRoundTrip(t *testing.T) {
	pieces := []Piece{Pawn, Knight, Bishop, Rook, Queen, King}
	colours := []Colour{White, Black}

	for _, piece := range pieces {
		for _, colour := range colours {
			coloured := MakeColouredPiece(colour, piece)
			if got := ExtractPiece(coloured); got != piece {
				t.Errorf("ExtractPiece(MakeColouredPiece(%v, %v)) = %v, want %v", colour, piece, got, piece)
			}
			if got := ExtractColour(coloured); got != colour {
				t.Errorf("ExtractColour(MakeColouredPiece(%v, %v)) = %v, want %v", colour, piece, got, colour)
			}
		}
	}
}

func TestWAndBHelpers(t *testing.T) {
	if got := ExtractColour(W(Pawn)); got != White {
		t.Errorf("ExtractColour(W(Pawn)) = %v, want White", got)
	}
	if got := ExtractColour(B(Pawn)); got != Black {
		t.Errorf("ExtractColour(B(Pawn)) = %v, want Black", got)
	}
	if W(Rook) == B(Rook) {
		t.Error("W(Rook) and B(Rook) should differ")
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Error("White.Opposite() != Black")
	}
	if Black.Opposite() != White {
		t.Error("Black.Opposite() != White")
	}
}

func TestColourOffset(t *testing.T) {
	if got := ColourOffset(White); got != 1 {
		t.Errorf("ColourOffset(White) = %d, want 1", got)
	}
	if got := ColourOffset(Black); got != -1 {
		t.Errorf("ColourOffset(Black) = %d, want -1", got)
	}
}

func TestCoordinateConversion(t *testing.T) {
	tests := []struct {
		col  Col
		rank Rank
		c, r int
	}{
		{'a', '1', Hedge, Hedge},
		{'h', '8', Hedge + 7, Hedge + 7},
		{'e', '4', Hedge + 4, Hedge + 3},
	}

	for _, tt := range tests {
		if got := ColConvert(tt.col); got != tt.c {
			t.Errorf("ColConvert(%c) = %d, want %d", tt.col, got, tt.c)
		}
		if got := RankConvert(tt.rank); got != tt.r {
			t.Errorf("RankConvert(%c) = %d, want %d", tt.rank, got, tt.r)
		}
		if got := ToCol(tt.c); got != tt.col {
			t.Errorf("ToCol(%d) = %c, want %c", tt.c, got, tt.col)
		}
		if got := ToRank(tt.r); got != tt.rank {
			t.Errorf("ToRank(%d) = %c, want %c", tt.r, got, tt.rank)
		}
	}

	// Off-board coordinates map to index 0.
	if got := ColConvert('i'); got != 0 {
		t.Errorf("ColConvert('i') = %d, want 0", got)
	}
	if got := RankConvert('9'); got != 0 {
		t.Errorf("RankConvert('9') = %d, want 0", got)
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c, want %c", tt.piece, got, tt.want)
		}
	}
}

func TestPieceString(t *testing.T) {
	if got := Queen.String(); got != "Queen" {
		t.Errorf("Queen.String() = %q, want \"Queen\"", got)
	}
	if got := Empty.String(); got != "Empty" {
		t.Errorf("Empty.String() = %q, want \"Empty\"", got)
	}
}
