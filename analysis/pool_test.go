package analysis

import (
	"testing"

	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/game"
	"github.com/imcnaugh/simple-chess/internal/testutil"
)

func TestClassifyRecords(t *testing.T) {
	records := []string{
		codec.InitialRecord,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", // checkmate
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",                                // stalemate
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",                                 // bare kings
		"not a position",
	}

	results := ClassifyRecords(records, 3)
	testutil.AssertEqual(t, len(results), len(records))

	// Results come back in input order regardless of worker scheduling.
	for i, result := range results {
		testutil.AssertEqual(t, result.Index, i)
		testutil.AssertEqual(t, result.Record, records[i])
	}

	testutil.AssertNoError(t, results[0].Err)
	testutil.AssertEqual(t, results[0].State.Status, game.InProgress)

	testutil.AssertEqual(t, results[1].State.Status, game.Checkmate)
	testutil.AssertEqual(t, results[2].State.Status, game.Stalemate)

	testutil.AssertEqual(t, results[3].State.Status, game.Draw)
	testutil.AssertEqual(t, results[3].State.Reason, game.InsufficientMaterial)

	testutil.AssertError(t, results[4].Err, "malformed record")
}

func TestClassifyRecords_Empty(t *testing.T) {
	results := ClassifyRecords(nil, 4)
	testutil.AssertEqual(t, len(results), 0)
}

func TestClassifyRecords_SingleWorker(t *testing.T) {
	records := []string{codec.InitialRecord, codec.InitialRecord}
	results := ClassifyRecords(records, 1)

	testutil.AssertEqual(t, len(results), 2)
	for _, result := range results {
		testutil.AssertNoError(t, result.Err)
	}
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool()
	testutil.AssertEqual(t, pool.NumWorkers(), 1)
}

func TestNewPool_Options(t *testing.T) {
	pool := NewPool(WithWorkers(4), WithBufferSize(2))
	testutil.AssertEqual(t, pool.NumWorkers(), 4)

	// Invalid values keep the defaults.
	pool = NewPool(WithWorkers(0), WithBufferSize(-1))
	testutil.AssertEqual(t, pool.NumWorkers(), 1)
}

func TestPool_SubmitAndClose(t *testing.T) {
	pool := NewPool(WithWorkers(2), WithBufferSize(4))
	pool.Start()

	go func() {
		for i := 0; i < 4; i++ {
			pool.Submit(Item{Record: codec.InitialRecord, Index: i})
		}
		pool.Close()
	}()

	seen := 0
	for result := range pool.Results() {
		testutil.AssertNoError(t, result.Err)
		seen++
	}
	testutil.AssertEqual(t, seen, 4)
}
