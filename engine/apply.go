package engine

import "github.com/imcnaugh/simple-chess/chess"

// Apply mutates the board with the given move, assumed legal, and returns
// the coloured piece captured by it (chess.Empty if none). It updates the
// side to move, castling rights, en passant target, halfmove clock and
// fullmove number. Save the board's meta beforehand if the move needs to
// be reversed.
func Apply(board *chess.Board, move chess.Move) chess.Piece {
	colour := board.ToMove
	captured := chess.Empty

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(board, move.Class == chess.KingsideCastle)
		board.EnPassant = false
		board.HalfmoveClock++

	case chess.EnPassantPawnMove:
		// The captured pawn sits beside the destination on the mover's rank.
		capturedSq := chess.Square{Col: move.To.Col, Rank: move.From.Rank}
		captured = board.At(capturedSq)
		board.Put(capturedSq, chess.Empty)
		board.Put(move.To, board.At(move.From))
		board.Put(move.From, chess.Empty)
		board.EnPassant = false
		board.HalfmoveClock = 0

	case chess.PawnMoveWithPromotion:
		captured = board.At(move.To)
		board.Put(move.From, chess.Empty)
		board.Put(move.To, chess.MakeColouredPiece(colour, move.PromotedPiece))
		board.EnPassant = false
		board.HalfmoveClock = 0

	case chess.PawnDoubleMove:
		board.Put(move.To, board.At(move.From))
		board.Put(move.From, chess.Empty)
		board.EnPassant = true
		board.EPCol = move.To.Col
		board.EPRank = chess.Rank(int(move.From.Rank) + chess.ColourOffset(colour))
		board.HalfmoveClock = 0

	case chess.PawnMove:
		captured = board.At(move.To)
		board.Put(move.To, board.At(move.From))
		board.Put(move.From, chess.Empty)
		board.EnPassant = false
		board.HalfmoveClock = 0

	default: // chess.PieceMove
		captured = board.At(move.To)
		board.Put(move.To, board.At(move.From))
		board.Put(move.From, chess.Empty)
		board.EnPassant = false
		if captured != chess.Empty {
			board.HalfmoveClock = 0
		} else {
			board.HalfmoveClock++
		}

		if move.PieceToMove == chess.King {
			board.SetKingSquare(colour, move.To)
			clearCastlingRights(board, colour)
		}
		if move.PieceToMove == chess.Rook {
			clearCastlingRightForRook(board, colour, move.From)
		}
	}

	// A captured rook on its home square loses the opponent that right.
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		clearCastlingRightForRook(board, chess.ExtractColour(captured), move.To)
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return captured
}

// UnApply reverses the square changes of a move previously made by Apply.
// It restores only the squares; the caller restores the scalar state
// (rights, en passant target, clocks, king tracking) from the meta saved
// before Apply.
func UnApply(board *chess.Board, move chess.Move, captured chess.Piece) {
	colour := board.ToMove.Opposite() // the side that made the move

	switch move.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		rank := backRank(colour)
		rookFrom, rookTo := rookCastleSquares(move.Class == chess.KingsideCastle, rank)
		board.Set(move.From.Col, rank, board.Get(move.To.Col, rank))
		board.Set(move.To.Col, rank, chess.Empty)
		board.Set(rookFrom.Col, rank, board.Get(rookTo.Col, rank))
		board.Set(rookTo.Col, rank, chess.Empty)

	case chess.EnPassantPawnMove:
		board.Put(move.From, board.At(move.To))
		board.Put(move.To, chess.Empty)
		board.Put(chess.Square{Col: move.To.Col, Rank: move.From.Rank}, captured)

	case chess.PawnMoveWithPromotion:
		board.Put(move.From, chess.MakeColouredPiece(colour, chess.Pawn))
		board.Put(move.To, captured)

	default:
		board.Put(move.From, board.At(move.To))
		board.Put(move.To, captured)
	}
}

// applyCastle moves the king and rook for a castling move by the side to
// move. Rights and clocks are handled by Apply.
func applyCastle(board *chess.Board, kingside bool) {
	colour := board.ToMove
	rank := backRank(colour)

	var kingFromCol, kingToCol chess.Col
	if colour == chess.White {
		kingFromCol = board.WKingCol
	} else {
		kingFromCol = board.BKingCol
	}
	if kingside {
		kingToCol = 'g'
	} else {
		kingToCol = 'c'
	}
	rookFrom, rookTo := rookCastleSquares(kingside, rank)

	king := board.Get(kingFromCol, rank)
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	rook := board.Get(rookFrom.Col, rank)
	board.Set(rookFrom.Col, rank, chess.Empty)
	board.Set(rookTo.Col, rank, rook)

	board.SetKingSquare(colour, chess.Square{Col: kingToCol, Rank: rank})
	clearCastlingRights(board, colour)
}

// rookCastleSquares returns the rook's source and destination squares for
// a castle on the given back rank.
func rookCastleSquares(kingside bool, rank chess.Rank) (from, to chess.Square) {
	if kingside {
		return chess.Square{Col: 'h', Rank: rank}, chess.Square{Col: 'f', Rank: rank}
	}
	return chess.Square{Col: 'a', Rank: rank}, chess.Square{Col: 'd', Rank: rank}
}

// backRank returns the first rank for the given colour.
func backRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '1'
	}
	return '8'
}

// clearCastlingRights removes both castling rights for a colour, as when
// its king moves.
func clearCastlingRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}
}

// clearCastlingRightForRook removes the matching castling right when a
// rook moves from or is captured on its home square.
func clearCastlingRightForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != backRank(colour) {
		return
	}
	if colour == chess.White {
		if sq.Col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if sq.Col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else {
		if sq.Col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if sq.Col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
