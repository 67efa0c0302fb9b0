package engine

import "github.com/imcnaugh/simple-chess/chess"

// Promotion kinds in generation order.
var promotionKinds = [4]chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegalMoves generates every geometrically valid move for the side
// to move, ignoring whether the mover's own king is left in check.
// Castling is not pseudo-legal; it is generated directly by LegalMoves
// because its conditions already include attack checks. Order is
// deterministic board-scan order: files a-h, ranks 1-8, then each piece's
// fixed offset or direction order.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	moves := make([]chess.Move, 0, 48)

	for sq, piece := range board.SquaresWith(func(_ chess.Square, p chess.Piece) bool {
		return chess.ExtractColour(p) == colour
	}) {
		switch kind := chess.ExtractPiece(piece); kind {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, sq, colour)
		case chess.Knight:
			moves = appendOffsetMoves(moves, board, sq, colour, chess.Knight, knightOffsets)
		case chess.King:
			moves = appendOffsetMoves(moves, board, sq, colour, chess.King, kingOffsets)
		case chess.Bishop:
			moves = appendSlidingMoves(moves, board, sq, colour, chess.Bishop, diagonalDirs[:])
		case chess.Rook:
			moves = appendSlidingMoves(moves, board, sq, colour, chess.Rook, straightDirs[:])
		case chess.Queen:
			moves = appendSlidingMoves(moves, board, sq, colour, chess.Queen, diagonalDirs[:])
			moves = appendSlidingMoves(moves, board, sq, colour, chess.Queen, straightDirs[:])
		}
	}

	return moves
}

// LegalMoves returns the exact set of legal moves for the side to move:
// pseudo-legal moves that do not leave the mover's own king in check, plus
// any legal castling moves.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	pseudo := PseudoLegalMoves(board)

	legal := pseudo[:0]
	for _, move := range pseudo {
		if isSelfCheckFree(board, move, colour) {
			legal = append(legal, move)
		}
	}

	return appendCastlingMoves(legal, board, colour)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	return len(LegalMoves(board)) > 0
}

// isSelfCheckFree simulates the move on a scratch copy of the board and
// reports whether the mover's king is safe afterwards.
func isSelfCheckFree(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	scratch := board.Copy()
	Apply(scratch, move)
	return !IsInCheck(scratch, colour)
}

// appendPawnMoves emits pawn advances, captures, en passant captures and
// promotions from the given square.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)
	startRank := chess.Rank('2')
	lastRank := chess.Rank('8')
	if colour == chess.Black {
		startRank = '7'
		lastRank = '1'
	}

	// Forward advance, single then double.
	if to, ok := from.Offset(0, dir); ok && board.At(to) == chess.Empty {
		moves = appendPawnAdvance(moves, from, to, to.Rank == lastRank)
		if from.Rank == startRank {
			if to2, ok := from.Offset(0, 2*dir); ok && board.At(to2) == chess.Empty {
				moves = append(moves, chess.Move{
					From: from, To: to2, Class: chess.PawnDoubleMove, PieceToMove: chess.Pawn,
				})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = appendPawnAdvance(moves, from, to, to.Rank == lastRank)
		}
		if board.EnPassant && to.Col == board.EPCol && to.Rank == board.EPRank {
			moves = append(moves, chess.Move{
				From: from, To: to, Class: chess.EnPassantPawnMove, PieceToMove: chess.Pawn,
			})
		}
	}

	return moves
}

// appendPawnAdvance emits one pawn move, or one promotion per kind when
// the pawn reaches the last rank.
func appendPawnAdvance(moves []chess.Move, from, to chess.Square, promotes bool) []chess.Move {
	if !promotes {
		return append(moves, chess.Move{
			From: from, To: to, Class: chess.PawnMove, PieceToMove: chess.Pawn,
		})
	}
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Move{
			From: from, To: to, Class: chess.PawnMoveWithPromotion,
			PieceToMove: chess.Pawn, PromotedPiece: kind,
		})
	}
	return moves
}

// appendOffsetMoves emits fixed-offset moves (knight, king) filtered to
// on-board squares not occupied by the mover's own side.
func appendOffsetMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, kind chess.Piece, offsets [8][2]int) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target := board.At(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, chess.Move{
				From: from, To: to, Class: chess.PieceMove, PieceToMove: kind,
			})
		}
	}
	return moves
}

// appendSlidingMoves emits sliding moves that stop at the first occupied
// square, inclusive when it holds an opposing piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, kind chess.Piece, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{
						From: from, To: to, Class: chess.PieceMove, PieceToMove: kind,
					})
				}
				break
			}
			moves = append(moves, chess.Move{
				From: from, To: to, Class: chess.PieceMove, PieceToMove: kind,
			})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// appendCastlingMoves emits the castling moves that are fully legal:
// the right is intact, every square between king and rook is empty, the
// king is not in check, and the king neither crosses nor lands on an
// attacked square.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	var kingRight, queenRight chess.Col
	if colour == chess.White {
		kingRight, queenRight = board.WKingCastle, board.WQueenCastle
	} else {
		kingRight, queenRight = board.BKingCastle, board.BQueenCastle
	}
	if kingRight == 0 && queenRight == 0 {
		return moves
	}

	rank := backRank(colour)
	kingFrom := chess.Square{Col: 'e', Rank: rank}
	if board.At(kingFrom) != chess.MakeColouredPiece(colour, chess.King) {
		return moves
	}
	if IsInCheck(board, colour) {
		return moves
	}
	opponent := colour.Opposite()
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if kingRight != 0 && board.Get(kingRight, rank) == rook &&
		castlePathClear(board, rank, 'f', 'g') &&
		castlePathSafe(board, rank, opponent, 'f', 'g') {
		moves = append(moves, chess.Move{
			From: kingFrom, To: chess.Square{Col: 'g', Rank: rank},
			Class: chess.KingsideCastle, PieceToMove: chess.King,
		})
	}
	if queenRight != 0 && board.Get(queenRight, rank) == rook &&
		castlePathClear(board, rank, 'b', 'c', 'd') &&
		castlePathSafe(board, rank, opponent, 'd', 'c') {
		moves = append(moves, chess.Move{
			From: kingFrom, To: chess.Square{Col: 'c', Rank: rank},
			Class: chess.QueensideCastle, PieceToMove: chess.King,
		})
	}

	return moves
}

// castlePathClear reports whether every listed square on the rank is empty.
func castlePathClear(board *chess.Board, rank chess.Rank, cols ...chess.Col) bool {
	for _, col := range cols {
		if board.Get(col, rank) != chess.Empty {
			return false
		}
	}
	return true
}

// castlePathSafe reports whether none of the listed squares is attacked by
// the given colour.
func castlePathSafe(board *chess.Board, rank chess.Rank, byColour chess.Colour, cols ...chess.Col) bool {
	for _, col := range cols {
		if IsSquareAttacked(board, chess.Square{Col: col, Rank: rank}, byColour) {
			return false
		}
	}
	return true
}
