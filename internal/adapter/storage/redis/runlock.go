package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only when it still holds this run's
// token, so a holder that outlived its TTL cannot free the next holder's
// lock.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RunLock implements ports.RunLock using Redis SET NX, so only one instance
// runs a named batch at a time.
type RunLock struct {
	client *goredis.Client
	prefix string

	mu     sync.Mutex
	tokens map[string]string
}

// NewRunLock creates a Redis-backed run lock.
func NewRunLock(client *goredis.Client) *RunLock {
	return &RunLock{
		client: client,
		prefix: "runlock:",
		tokens: make(map[string]string),
	}
}

// Acquire obtains the named lock for at most ttl. Returns false when another
// holder owns it.
func (l *RunLock) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.prefix+name, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis acquire lock %s: %w", name, err)
	}
	if ok {
		l.mu.Lock()
		l.tokens[name] = token
		l.mu.Unlock()
	}
	return ok, nil
}

// Release drops the named lock if this instance still holds it. Releasing an
// unheld or expired lock is a no-op.
func (l *RunLock) Release(ctx context.Context, name string) error {
	l.mu.Lock()
	token, held := l.tokens[name]
	delete(l.tokens, name)
	l.mu.Unlock()
	if !held {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + name}, token).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis release lock %s: %w", name, err)
	}
	return nil
}
