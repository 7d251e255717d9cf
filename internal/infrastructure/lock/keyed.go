package lock

import (
	"context"
	"sync"
)

// Keyed serializes in-process work per key. Suitable for single-instance
// deployments; multi-instance setups use the Redis variant.
type Keyed struct {
	mu      sync.Mutex
	holders map[string]*holder
}

type holder struct {
	mu   sync.Mutex
	refs int
}

// NewKeyed creates a new in-process keyed lock
func NewKeyed() *Keyed {
	return &Keyed{holders: make(map[string]*holder)}
}

// Acquire blocks until the key's mutex is held or the context is done. The
// returned release must always be called.
func (k *Keyed) Acquire(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	h, ok := k.holders[key]
	if !ok {
		h = &holder{}
		k.holders[key] = h
	}
	h.refs++
	k.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		h.mu.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return func() {
			h.mu.Unlock()
			k.put(key, h)
		}, nil
	case <-ctx.Done():
		// The goroutine still holds or will hold the mutex; release it as
		// soon as it lands so other waiters are not stranded.
		go func() {
			<-acquired
			h.mu.Unlock()
			k.put(key, h)
		}()
		return nil, ctx.Err()
	}
}

// put drops a reference and garbage-collects idle entries
func (k *Keyed) put(key string, h *holder) {
	k.mu.Lock()
	h.refs--
	if h.refs == 0 {
		delete(k.holders, key)
	}
	k.mu.Unlock()
}
