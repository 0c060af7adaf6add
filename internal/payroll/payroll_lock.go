package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RunLocker serializes process calls for one run across instances. The DB
// status guard is the source of truth; the lock only turns a concurrent
// second caller away early.
type RunLocker interface {
	Acquire(ctx context.Context, runID string) (string, bool, error)
	Release(ctx context.Context, runID, token string) error
}

type redisRunLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRunLocker returns a Redis backed locker. A nil client always grants
// the lock, leaving serialization to the status guard.
func NewRunLocker(rdb *redis.Client, ttl time.Duration) RunLocker {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &redisRunLocker{rdb: rdb, ttl: ttl}
}

var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func runLockKey(runID string) string {
	return fmt.Sprintf("payroll:run:lock:%s", runID)
}

func (l *redisRunLocker) Acquire(ctx context.Context, runID string) (string, bool, error) {
	token := uuid.NewString()
	if l.rdb == nil {
		return token, true, nil
	}
	ok, err := l.rdb.SetNX(ctx, runLockKey(runID), token, l.ttl).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

// Release only deletes the key while it still holds our token, so an
// expired lock taken over by another caller is left alone.
func (l *redisRunLocker) Release(ctx context.Context, runID, token string) error {
	if l.rdb == nil {
		return nil
	}
	err := releaseLockScript.Run(ctx, l.rdb, []string{runLockKey(runID)}, token).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
