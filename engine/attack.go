// Package engine provides move generation, move application and rule
// checks over a chess board.
package engine

import "github.com/imcnaugh/simple-chess/chess"

// Fixed offset tables shared by generation and attack detection.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq := board.KingSquare(colour)

	// If the king position is not tracked, search for it.
	if !kingSq.Valid() {
		var found bool
		kingSq, found = findKing(board, colour)
		if !found {
			return false
		}
	}

	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for sq := range board.SquaresWith(func(_ chess.Square, p chess.Piece) bool { return p == king }) {
		return sq, true
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour under piece-movement rules, ignoring pins.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks. White pawns attack from below, black from above.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range [2]int{-1, 1} {
		if from, ok := sq.Offset(dc, pawnDir); ok && board.At(from) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.At(from) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.At(from) == king {
			return true
		}
	}

	// Sliding attacks along diagonals.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		if firstPieceFrom(board, sq, dir, bishop, queen) {
			return true
		}
	}

	// Sliding attacks along ranks and files.
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if firstPieceFrom(board, sq, dir, rook, queen) {
			return true
		}
	}

	return false
}

// firstPieceFrom walks from sq along dir and reports whether the first
// occupied square holds one of the two given coloured pieces.
func firstPieceFrom(board *chess.Board, sq chess.Square, dir [2]int, a, b chess.Piece) bool {
	cur, ok := sq.Offset(dir[0], dir[1])
	for ok {
		piece := board.At(cur)
		if piece != chess.Empty {
			return piece == a || piece == b
		}
		cur, ok = cur.Offset(dir[0], dir[1])
	}
	return false
}
