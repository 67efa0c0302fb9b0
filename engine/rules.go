package engine

import "github.com/imcnaugh/simple-chess/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// HasInsufficientMaterial returns true if neither side can possibly
// deliver mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	anyPiece := func(chess.Square, chess.Piece) bool { return true }
	for sq, piece := range board.SquaresWith(anyPiece) {
		kind := chess.ExtractPiece(piece)
		if kind == chess.King {
			continue
		}
		// Any pawn, rook or queen is mating material.
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}
		if chess.ExtractColour(piece) == chess.White {
			whiteMinors = append(whiteMinors, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackMinors = append(blackMinors, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B on the same square colour
	if len(whiteMinors) == 1 && len(blackMinors) == 1 &&
		whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	colNum := int(sq.Col - chess.FirstCol)
	rankNum := int(sq.Rank - chess.FirstRank)
	return (colNum+rankNum)%2 == 1
}
