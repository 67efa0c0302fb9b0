// Package testutil provides shared test utilities for the simple-chess project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/imcnaugh/simple-chess/chess"
	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/game"
)

// MustDecodeBoard decodes a position record into a board.
// It calls t.Fatal if decoding fails.
func MustDecodeBoard(t *testing.T, record string) *chess.Board {
	t.Helper()
	board, err := codec.DecodeRecord(record)
	if err != nil {
		t.Fatalf("failed to decode position record %q: %v", record, err)
	}
	return board
}

// MustNewGame starts a game from a position record.
// It calls t.Fatal if the record is malformed.
func MustNewGame(t *testing.T, record string) *game.Game {
	t.Helper()
	g, err := game.NewFromRecord(record)
	if err != nil {
		t.Fatalf("failed to start game from record %q: %v", record, err)
	}
	return g
}

// MustPlayMoves plays a sequence of coordinate moves ("e2e4", "e7e8q")
// on the game. It calls t.Fatal on the first move that is not legal.
func MustPlayMoves(t *testing.T, g *game.Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		move, ok := FindMove(g, text)
		if !ok {
			t.Fatalf("no legal move %q in position %s", text, g.Record())
		}
		if _, err := g.MakeMove(move); err != nil {
			t.Fatalf("move %q rejected: %v", text, err)
		}
	}
}

// FindMove looks up a legal move by its coordinate form.
func FindMove(g *game.Game, text string) (chess.Move, bool) {
	for _, move := range g.State().LegalMoves {
		if move.String() == text {
			return move, true
		}
	}
	return chess.Move{}, false
}
