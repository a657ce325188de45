package enterprise

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNilRateLimiterAllowsEverything(t *testing.T) {
	var rl *rateLimiter
	assert.NoError(t, rl.wait(context.Background()))
}

func TestRateLimiterBurst(t *testing.T) {
	rl := newRateLimiter(rate.Every(time.Hour), 2, nil)

	require.NoError(t, rl.wait(context.Background()))
	require.NoError(t, rl.wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.wait(ctx)
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestRateLimiterDelays(t *testing.T) {
	rl := newRateLimiter(rate.Every(30*time.Millisecond), 1, nil)

	start := time.Now()
	require.NoError(t, rl.wait(context.Background()))
	require.NoError(t, rl.wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRateLimiterCanceledContext(t *testing.T) {
	rl := newRateLimiter(rate.Every(time.Hour), 1, nil)
	require.NoError(t, rl.wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.wait(ctx)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CodeCanceled, e.Code)
}
