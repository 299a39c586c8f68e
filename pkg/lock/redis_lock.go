package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionLocker serializes turns within one conversation session. The
// HTTP layer is stateless, so two concurrent turns for the same session
// would otherwise race on the persisted workflow state.
type SessionLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionLocker wraps a Redis client. A nil client disables locking,
// which keeps single-instance deployments free of the Redis dependency.
func NewSessionLocker(client *redis.Client, ttl time.Duration) *SessionLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SessionLocker{client: client, ttl: ttl}
}

// Acquire takes the per-session lock. It returns a release function and
// whether the lock was obtained. With locking disabled it always grants.
func (l *SessionLocker) Acquire(ctx context.Context, sessionId string) (func(), bool) {
	if l == nil || l.client == nil {
		return func() {}, true
	}

	key := "session_lock:" + sessionId
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		// Redis being down should not take conversations with it.
		return func() {}, true
	}
	if !ok {
		return nil, false
	}

	release := func() {
		// Only delete our own token; an expired lock may have been
		// re-acquired by another turn.
		val, err := l.client.Get(context.Background(), key).Result()
		if err == nil && val == token {
			l.client.Del(context.Background(), key)
		}
	}
	return release, true
}
