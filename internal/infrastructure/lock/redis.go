package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only if it still holds our token, so an
// expired lock reclaimed by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisKeyed serializes work per key across instances using SET NX with a
// TTL. The TTL bounds how long a crashed holder can block the key.
type RedisKeyed struct {
	client        *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisKeyed creates a Redis-backed keyed lock
func NewRedisKeyed(client *redis.Client, ttl time.Duration) *RedisKeyed {
	return &RedisKeyed{
		client:        client,
		ttl:           ttl,
		retryInterval: 100 * time.Millisecond,
	}
}

// Acquire polls SET NX until the key is taken or the context is done
func (r *RedisKeyed) Acquire(ctx context.Context, key string) (func(), error) {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		return nil, err
	}
	value := hex.EncodeToString(token)
	lockKey := "lock:ingest:" + key

	for {
		ok, err := r.client.SetNX(ctx, lockKey, value, r.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = releaseScript.Run(ctx, r.client, []string{lockKey}, value).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retryInterval):
		}
	}
}
