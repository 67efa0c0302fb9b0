// Package analysis classifies batches of independent positions
// concurrently. Each record is evaluated by its own game instance, so the
// workers share nothing.
package analysis

import (
	"sync"

	"github.com/imcnaugh/simple-chess/game"
)

// Item is one position record to classify.
type Item struct {
	Record string
	Index  int // Original index for tracking
}

// Result is the outcome of classifying one record.
type Result struct {
	Index  int
	Record string
	State  game.State
	Err    error
}

// Pool manages a pool of workers classifying position records.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Item
	resultChan chan Result
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 10.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Item, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker classifies items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- classify(item)
	}
}

// classify evaluates one record with a fresh game instance.
func classify(item Item) Result {
	result := Result{Index: item.Index, Record: item.Record}
	g, err := game.NewFromRecord(item.Record)
	if err != nil {
		result.Err = err
		return result
	}
	result.State = g.State()
	return result
}

// Submit submits an item for classification. It may block if the work
// channel buffer is full.
func (p *Pool) Submit(item Item) {
	p.workChan <- item
}

// Close closes the work channel, waits for all workers to finish, and
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading classifications.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ClassifyRecords classifies all records using the given number of
// workers and returns the results in input order. Per-record failures are
// reported in the corresponding Result, never as a call failure.
func ClassifyRecords(records []string, workers int) []Result {
	pool := NewPool(WithWorkers(workers), WithBufferSize(len(records)+1))
	pool.Start()

	go func() {
		for i, record := range records {
			pool.Submit(Item{Record: record, Index: i})
		}
		pool.Close()
	}()

	results := make([]Result, len(records))
	for result := range pool.Results() {
		results[result.Index] = result
	}
	return results
}
