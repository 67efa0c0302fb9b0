package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/imcnaugh/simple-chess/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It exists to validate move generation against published node counts.
func Perft(board *chess.Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, move := range moves {
		child := board.Copy()
		Apply(child, move)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// ParallelPerft is Perft with the root moves counted concurrently, one
// goroutine per root move. Each subtree runs on its own board copy, so no
// state is shared. The context cancels outstanding subtrees early.
func ParallelPerft(ctx context.Context, board *chess.Board, depth int) (int, error) {
	if depth <= 1 {
		return Perft(board, depth), nil
	}

	moves := LegalMoves(board)
	counts := make([]int, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := board.Copy()
			Apply(child, move)
			counts[i] = Perft(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	nodes := 0
	for _, n := range counts {
		nodes += n
	}
	return nodes, nil
}
