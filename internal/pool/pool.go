// Package pool bounds concurrent connection checkouts for a single transport.
package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Slots is a fixed-capacity set of checkout slots. It is safe for concurrent use.
type Slots struct {
	sem      *semaphore.Weighted
	capacity int64
	inUse    atomic.Int64
}

// New creates a pool with the given capacity. A capacity below 1 is treated as 1.
func New(capacity int) *Slots {
	if capacity < 1 {
		capacity = 1
	}
	return &Slots{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: int64(capacity),
	}
}

// Acquire blocks until a slot is free or ctx is done. The returned release
// func is idempotent and must be called exactly once on every exit path.
func (s *Slots) Acquire(ctx context.Context) (release func(), err error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return func() {}, err
	}
	s.inUse.Add(1)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.inUse.Add(-1)
			s.sem.Release(1)
		})
	}, nil
}

// InUse reports the number of slots currently checked out.
func (s *Slots) InUse() int {
	return int(s.inUse.Load())
}

// Capacity reports the total number of slots.
func (s *Slots) Capacity() int {
	return int(s.capacity)
}
