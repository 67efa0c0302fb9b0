package game

import "github.com/imcnaugh/simple-chess/chess"

// Status enumerates the variants a game can be in after any committed move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "Draw"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// DrawReason identifies which rule produced a Draw status.
type DrawReason int

const (
	FiftyMoveRule DrawReason = iota
	ThreefoldRepetition
	InsufficientMaterial
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	names := []string{"fifty-move rule", "threefold repetition", "insufficient material"}
	if int(r) < len(names) {
		return names[r]
	}
	return "unknown"
}

// State is the tagged result of evaluating a position. Which fields are
// meaningful depends on Status: LegalMoves and ToMove for InProgress and
// Check, Winner for Checkmate, Reason for Draw. It is recomputed by the
// game after every committed move and must not be mutated by callers.
type State struct {
	Status     Status
	LegalMoves []chess.Move
	ToMove     chess.Colour
	Winner     chess.Colour
	Reason     DrawReason
}

// Over returns true once no further moves can be made.
func (s State) Over() bool {
	return s.Status == Checkmate || s.Status == Stalemate || s.Status == Draw
}
