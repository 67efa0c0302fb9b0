package codec

import (
	"fmt"

	"github.com/imcnaugh/simple-chess/chess"
	"github.com/imcnaugh/simple-chess/errors"
)

// Key is the packed fixed-width form of a position. Bytes 0-31 hold the
// board: ranks are scanned from 8 down to 1, files a to h, two squares per
// byte with the first square of each pair in the high nibble. A nibble is
// the square's kind code shifted left once, ored with the colour bit.
// Byte 32 carries the side to move (bit 0) and the four castling rights
// (bits 1-4: white kingside, white queenside, black kingside, black
// queenside). Byte 33 is zero when no en passant capture is possible,
// otherwise epPresent ored with the file index.
//
// Keys are comparable values, so they serve directly as repetition-table
// map keys.
type Key [34]byte

const (
	sideByte  = 32
	epByte    = 33
	epPresent = 0x80
)

// Kind codes used in board nibbles. Code 7 is reserved.
const (
	codeEmpty = iota
	codePawn
	codeRook
	codeKnight
	codeBishop
	codeKing
	codeQueen
)

var kindToCode = map[chess.Piece]byte{
	chess.Pawn:   codePawn,
	chess.Rook:   codeRook,
	chess.Knight: codeKnight,
	chess.Bishop: codeBishop,
	chess.King:   codeKing,
	chess.Queen:  codeQueen,
}

var codeToKind = [...]chess.Piece{
	codeEmpty:  chess.Empty,
	codePawn:   chess.Pawn,
	codeRook:   chess.Rook,
	codeKnight: chess.Knight,
	codeBishop: chess.Bishop,
	codeKing:   chess.King,
	codeQueen:  chess.Queen,
}

// squareNibble packs one coloured piece into 4 bits.
func squareNibble(colouredPiece chess.Piece) byte {
	if colouredPiece == chess.Empty {
		return codeEmpty << 1
	}
	code := kindToCode[chess.ExtractPiece(colouredPiece)]
	nibble := code << 1
	if chess.ExtractColour(colouredPiece) == chess.Black {
		nibble |= 1
	}
	return nibble
}

// Encode packs a position into its fixed-width key.
func Encode(board *chess.Board) Key {
	var key Key

	i := 0
	high := true
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			nibble := squareNibble(board.Get(col, rank))
			if high {
				key[i] = nibble << 4
			} else {
				key[i] |= nibble
				i++
			}
			high = !high
		}
	}

	if board.ToMove == chess.Black {
		key[sideByte] |= 1 << 0
	}
	if board.WKingCastle != 0 {
		key[sideByte] |= 1 << 1
	}
	if board.WQueenCastle != 0 {
		key[sideByte] |= 1 << 2
	}
	if board.BKingCastle != 0 {
		key[sideByte] |= 1 << 3
	}
	if board.BQueenCastle != 0 {
		key[sideByte] |= 1 << 4
	}

	if board.EnPassant {
		key[epByte] = epPresent | byte(board.EPCol-chess.FirstCol)
	}

	return key
}

// Decode unpacks a key back into a board. It is the exact inverse of
// Encode for any key Encode produced. Keys carrying the reserved kind code
// or other unused bits are rejected.
func Decode(key Key) (*chess.Board, error) {
	board := chess.NewBoard()

	i := 0
	high := true
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			var nibble byte
			if high {
				nibble = key[i] >> 4
			} else {
				nibble = key[i] & 0x0f
				i++
			}
			high = !high

			code := nibble >> 1
			if int(code) >= len(codeToKind) {
				return nil, errors.Wrap(
					fmt.Errorf("reserved kind code at %c%c", col, rank),
					"decode position key")
			}
			kind := codeToKind[code]
			if kind == chess.Empty {
				if nibble&1 != 0 {
					return nil, errors.Wrap(
						fmt.Errorf("colour bit set on empty square %c%c", col, rank),
						"decode position key")
				}
				continue
			}

			colour := chess.White
			if nibble&1 != 0 {
				colour = chess.Black
			}
			board.Set(col, rank, chess.MakeColouredPiece(colour, kind))
			if kind == chess.King {
				board.SetKingSquare(colour, chess.Square{Col: col, Rank: rank})
			}
		}
	}

	if key[sideByte]&^0x1f != 0 {
		return nil, errors.Wrap(fmt.Errorf("unused side byte bits set"), "decode position key")
	}
	if key[sideByte]&(1<<0) != 0 {
		board.ToMove = chess.Black
	}
	if key[sideByte]&(1<<1) != 0 {
		board.WKingCastle = 'h'
	}
	if key[sideByte]&(1<<2) != 0 {
		board.WQueenCastle = 'a'
	}
	if key[sideByte]&(1<<3) != 0 {
		board.BKingCastle = 'h'
	}
	if key[sideByte]&(1<<4) != 0 {
		board.BQueenCastle = 'a'
	}

	if key[epByte] != 0 {
		if key[epByte]&epPresent == 0 || key[epByte]&^(epPresent|0x07) != 0 {
			return nil, errors.Wrap(fmt.Errorf("invalid en passant byte"), "decode position key")
		}
		board.EnPassant = true
		board.EPCol = chess.FirstCol + chess.Col(key[epByte]&0x07)
		if board.ToMove == chess.White {
			board.EPRank = '6'
		} else {
			board.EPRank = '3'
		}
	}

	return board, nil
}
