package portal_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/aussiebroadwan/clientportal/pkg/lockx"
)

func TestRedisLockExcludesAcrossInstances(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	url := startRedis(t)
	ctx := context.Background()

	c1, err := lockx.Dial(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c1.Close() })
	c2, err := lockx.Dial(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c2.Close() })

	// Two lockers stand in for two replicas.
	lockers := []lockx.Locker{
		lockx.NewRedis(c1, "e2e:", 5*time.Second),
		lockx.NewRedis(c2, "e2e:", 5*time.Second),
	}

	var (
		wg      sync.WaitGroup
		inside  atomic.Int32
		overlap atomic.Bool
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(l lockx.Locker) {
			defer wg.Done()
			err := lockx.With(ctx, l, "client:42", func(context.Context) error {
				if inside.Add(1) > 1 {
					overlap.Store(true)
				}
				time.Sleep(20 * time.Millisecond)
				inside.Add(-1)
				return nil
			})
			require.NoError(t, err)
		}(lockers[i%2])
	}
	wg.Wait()

	require.False(t, overlap.Load())
}
