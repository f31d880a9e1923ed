package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const lockRetry = 25 * time.Millisecond

// releaseScript deletes the lock only if it still holds our token, so an
// expired lock taken over by someone else is left alone.
var releaseScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisLocker serialises work on one game across every server instance
// sharing the Redis.
type RedisLocker struct {
	pool *redis.Pool
	ttl  int
	log  logrus.FieldLogger
}

func NewRedisLocker(pool *redis.Pool, ttlMillis int, log logrus.FieldLogger) *RedisLocker {
	return &RedisLocker{pool: pool, ttl: ttlMillis, log: log}
}

func lockKey(gameID string) string {
	return fmt.Sprintf("%s.lock", gameID)
}

// Lock blocks until the game lock is held or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, gameID string) (func(), error) {
	token := uuid.NewV4().String()
	key := lockKey(gameID)
	for {
		ok, err := l.try(key, token)
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", gameID, err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %w", gameID, ctx.Err())
		case <-time.After(lockRetry):
		}
	}
}

func (l *RedisLocker) try(key, token string) (bool, error) {
	conn := l.pool.Get()
	defer conn.Close()
	return SetNX(key, token, l.ttl, conn)
}

func (l *RedisLocker) release(key, token string) {
	conn := l.pool.Get()
	defer conn.Close()
	if _, err := releaseScript.Do(conn, key, token); err != nil {
		l.log.WithError(err).WithField("key", key).Warn("failed releasing game lock")
	}
}
