package pool

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsCapacity(t *testing.T) {
	assert.Equal(t, 1, New(0).Capacity())
	assert.Equal(t, 1, New(-5).Capacity())
	assert.Equal(t, 8, New(8).Capacity())
}

func TestAcquireRelease(t *testing.T) {
	s := New(2)

	r1, err := s.Acquire(context.Background())
	require.NoError(t, err)
	r2, err := s.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.InUse())

	r1()
	assert.Equal(t, 1, s.InUse())

	// release is idempotent
	r1()
	assert.Equal(t, 1, s.InUse())

	r2()
	assert.Equal(t, 0, s.InUse())
}

func TestAcquireHonoursContext(t *testing.T) {
	s := New(1)
	release, err := s.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	noop, err := s.Acquire(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	noop()
	assert.Equal(t, 1, s.InUse())
}

func TestConcurrentCheckout(t *testing.T) {
	s := New(4)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		maxSeen int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := s.Acquire(context.Background())
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			defer release()

			mu.Lock()
			if n := s.InUse(); n > maxSeen {
				maxSeen = n
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxSeen, 4)
	assert.Equal(t, 0, s.InUse())
}
