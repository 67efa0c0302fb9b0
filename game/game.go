// Package game implements the game state machine: it owns a board, the
// move history with undo/redo, and the repetition table, and derives the
// authoritative game state after every committed move.
package game

import (
	"github.com/imcnaugh/simple-chess/chess"
	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/engine"
	"github.com/imcnaugh/simple-chess/errors"
)

// HistoryEntry records one applied move with enough metadata to invert it
// exactly: the coloured piece it captured and the scalar board state
// (castling rights, en passant target, clocks, king tracking) from just
// before the move.
type HistoryEntry struct {
	Move     chess.Move
	Captured chess.Piece
	PrevMeta chess.Meta
}

// Game is a single chess game. Each instance exclusively owns its board,
// history and repetition table; run one instance per game for concurrent
// use, there is no shared state between instances.
type Game struct {
	board      *chess.Board
	history    []HistoryEntry
	redo       []HistoryEntry
	repetition map[codec.Key]int
	state      State
}

// New returns a game at the standard starting position.
func New() *Game {
	return fromBoard(codec.NewInitialBoard())
}

// NewFromRecord returns a game resumed from a FEN-style text record. It
// fails with errors.ErrMalformedRecord (as a *errors.RecordError naming
// the offending field) on invalid input.
func NewFromRecord(record string) (*Game, error) {
	board, err := codec.DecodeRecord(record)
	if err != nil {
		return nil, err
	}
	return fromBoard(board), nil
}

func fromBoard(board *chess.Board) *Game {
	g := &Game{
		board:      board,
		repetition: make(map[codec.Key]int),
	}
	g.repetition[codec.Encode(board)] = 1
	g.refreshState()
	return g
}

// State returns the current game state. It is recomputed eagerly after
// every mutation, so this call is cheap and side-effect free.
func (g *Game) State() State {
	return g.state
}

// Board returns a copy of the current board, suitable for display. The
// game's own board can only be changed through MakeMove, Undo and Redo.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Record returns the current position as a FEN-style text record.
func (g *Game) Record() string {
	return codec.EncodeRecord(g.board)
}

// PositionKey returns the packed key of the current position.
func (g *Game) PositionKey() codec.Key {
	return codec.Encode(g.board)
}

// RepetitionCount returns how many times the given position has occurred
// in this game.
func (g *Game) RepetitionCount(key codec.Key) int {
	return g.repetition[key]
}

// History returns the applied moves in order.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, entry := range g.history {
		moves[i] = entry.Move
	}
	return moves
}

// MakeMove applies a legal move. It fails with errors.ErrIllegalMove if
// the game is over or the move is not in the current legal set, leaving
// all state unchanged. On success the redo stack is cleared and the newly
// computed state returned.
func (g *Game) MakeMove(move chess.Move) (State, error) {
	state, err := g.applyMove(move)
	if err != nil {
		return State{}, err
	}
	g.redo = g.redo[:0]
	return state, nil
}

// Undo reverses the most recent move. It fails with errors.ErrNoHistory
// if no moves have been made. The undone move is pushed onto the redo
// stack and the repetition count of the position being left is restored.
func (g *Game) Undo() (State, error) {
	if len(g.history) == 0 {
		return State{}, errors.ErrNoHistory
	}

	key := codec.Encode(g.board)
	if g.repetition[key] <= 1 {
		delete(g.repetition, key)
	} else {
		g.repetition[key]--
	}

	entry := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	engine.UnApply(g.board, entry.Move, entry.Captured)
	g.board.RestoreMeta(entry.PrevMeta)

	g.redo = append(g.redo, entry)
	g.refreshState()
	return g.state, nil
}

// Redo reapplies the most recently undone move through the same path as
// MakeMove, popping exactly one entry from the redo stack. It fails with
// errors.ErrNoRedo if there is nothing to redo.
func (g *Game) Redo() (State, error) {
	if len(g.redo) == 0 {
		return State{}, errors.ErrNoRedo
	}

	entry := g.redo[len(g.redo)-1]
	state, err := g.applyMove(entry.Move)
	if err != nil {
		return State{}, err
	}
	g.redo = g.redo[:len(g.redo)-1]
	return state, nil
}

// applyMove validates the move against the current legal set, commits it
// to the board, history and repetition table, and recomputes the state.
func (g *Game) applyMove(move chess.Move) (State, error) {
	if g.state.Over() {
		return State{}, &errors.MoveError{Move: move.String()}
	}
	if !g.isLegal(move) {
		return State{}, &errors.MoveError{Move: move.String()}
	}

	entry := HistoryEntry{Move: move, PrevMeta: g.board.SaveMeta()}
	entry.Captured = engine.Apply(g.board, move)
	g.history = append(g.history, entry)
	g.repetition[codec.Encode(g.board)]++

	g.refreshState()
	return g.state, nil
}

// isLegal reports whether the move is a member of the current legal set.
func (g *Game) isLegal(move chess.Move) bool {
	for _, m := range g.state.LegalMoves {
		if m == move {
			return true
		}
	}
	return false
}

// refreshState re-derives the game state from the board, the repetition
// table and the half-move clock. Checkmate and stalemate dominate; the
// draw rules are checked in the order fifty-move, threefold repetition,
// insufficient material.
func (g *Game) refreshState() {
	toMove := g.board.ToMove
	legalMoves := engine.LegalMoves(g.board)
	inCheck := engine.IsInCheck(g.board, toMove)

	switch {
	case len(legalMoves) == 0 && inCheck:
		g.state = State{Status: Checkmate, Winner: toMove.Opposite()}
	case len(legalMoves) == 0:
		g.state = State{Status: Stalemate}
	case g.board.HalfmoveClock >= 100:
		g.state = State{Status: Draw, Reason: FiftyMoveRule}
	case g.repetition[codec.Encode(g.board)] >= 3:
		g.state = State{Status: Draw, Reason: ThreefoldRepetition}
	case engine.HasInsufficientMaterial(g.board):
		g.state = State{Status: Draw, Reason: InsufficientMaterial}
	case inCheck:
		g.state = State{Status: Check, LegalMoves: legalMoves, ToMove: toMove}
	default:
		g.state = State{Status: InProgress, LegalMoves: legalMoves, ToMove: toMove}
	}
}
