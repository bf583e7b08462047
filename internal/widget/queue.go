package widget

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// requestQueue runs backend requests one at a time in the order they were
// reserved, whatever goroutine ends up running them.
type requestQueue struct {
	mu   sync.Mutex
	tail chan struct{}
	slot *semaphore.Weighted
}

func newRequestQueue() *requestQueue {
	return &requestQueue{slot: semaphore.NewWeighted(1)}
}

// waitFunc blocks until the reserved position holds the slot and returns
// the func that gives it back
type waitFunc func(ctx context.Context) (release func(), err error)

// reserve takes the next position synchronously. Every reservation must be
// waited on, otherwise later positions never get the slot.
func (q *requestQueue) reserve() waitFunc {
	q.mu.Lock()
	prev := q.tail
	turn := make(chan struct{})
	q.tail = turn
	q.mu.Unlock()

	return func(ctx context.Context) (func(), error) {
		// turn is closed once this position holds the slot or gave up on it
		defer close(turn)

		if prev != nil {
			select {
			case <-prev:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := q.slot.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		return func() { q.slot.Release(1) }, nil
	}
}

func noWait(context.Context) (func(), error) {
	return func() {}, nil
}
