package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyed_MutualExclusion(t *testing.T) {
	locks := NewKeyed()
	ctx := context.Background()

	var mu sync.Mutex
	inCritical := 0
	maxSeen := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locks.Acquire(ctx, "shop")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxSeen {
				maxSeen = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestKeyed_KeysAreIndependent(t *testing.T) {
	locks := NewKeyed()
	ctx := context.Background()

	releaseA, err := locks.Acquire(ctx, "owner-a/shop")
	require.NoError(t, err)
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB, err := locks.Acquire(ctx, "owner-b/shop")
		if err == nil {
			releaseB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unrelated key blocked behind a held lock")
	}
}

func TestKeyed_ContextCancellation(t *testing.T) {
	locks := NewKeyed()

	release, err := locks.Acquire(context.Background(), "shop")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locks.Acquire(ctx, "shop")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the canceled waiter must not strand later ones once the holder lets go
	release()

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	release2, err := locks.Acquire(ctx2, "shop")
	require.NoError(t, err)
	release2()
}

func TestKeyed_ReleaseReacquire(t *testing.T) {
	locks := NewKeyed()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		release, err := locks.Acquire(ctx, "shop")
		require.NoError(t, err)
		release()
	}
}
