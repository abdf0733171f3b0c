package generator

import (
	"sync"

	"github.com/aretw0/loess/pkg/domain"
)

// Batcher coalesces bursts of watcher events into sequential processing
// runs. It is an explicit scheduler rather than a timer: a pending-batch
// buffer plus a single in-flight-run guard. Events arriving while a run is
// in flight are buffered into the next batch, so runs never overlap and
// every event remains individually inspectable by the processor.
type Batcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []domain.Event
	running bool

	process func([]domain.Event)
}

// NewBatcher creates a Batcher invoking process for each drained batch.
// Batches preserve arrival order.
func NewBatcher(process func([]domain.Event)) *Batcher {
	b := &Batcher{process: process}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Queue enqueues one event and triggers processing. If a run is already in
// flight the event joins the next batch instead of restarting anything.
func (b *Batcher) Queue(e domain.Event) {
	b.mu.Lock()
	b.pending = append(b.pending, e)
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()

	go b.drain()
}

// drain processes batches until the queue is empty, then releases the
// in-flight guard. Runs on its own goroutine; only one drain is ever live.
func (b *Batcher) drain() {
	for {
		b.mu.Lock()
		if len(b.pending) == 0 {
			b.running = false
			b.cond.Broadcast()
			b.mu.Unlock()
			return
		}
		batch := b.pending
		b.pending = nil
		b.mu.Unlock()

		b.process(batch)
	}
}

// Wait blocks until every queued event has been processed and no run is in
// flight. Used by shutdown paths and tests to settle the pipeline.
func (b *Batcher) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.running || len(b.pending) > 0 {
		b.cond.Wait()
	}
}
