package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Raul1156/monopoly/pkg/configs"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T) *redis.Pool {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	pool := CreateRedisPool(configs.Redis{URL: url})
	t.Cleanup(func() { pool.Close() })
	return pool
}

func TestRedisLocker(t *testing.T) {
	pool := testPool(t)
	locker := NewRedisLocker(pool, 2000, logrus.New())
	game := "locktest" + time.Now().Format("150405.000")

	// Given: the lock is held
	unlock, err := locker.Lock(context.Background(), game)
	require.NoError(t, err)

	// When: a second caller gives up quickly
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, game)

	// Then: it times out
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// And after release it can be taken again
	unlock()
	unlock2, err := locker.Lock(context.Background(), game)
	require.NoError(t, err)
	unlock2()
}

func TestEventLog(t *testing.T) {
	pool := testPool(t)
	log := NewEventLog(pool, logrus.New())
	game := "eventtest" + time.Now().Format("150405.000")
	t.Cleanup(func() {
		conn := pool.Get()
		defer conn.Close()
		Del(eventsKey(game), conn)
	})

	log.Broadcast(game, "player-moved", map[string]int{"new_position": 3})
	log.Broadcast(game, "change-turn", "p2")

	events, err := log.Recent(game, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "player-moved", events[0].Name)
	assert.Equal(t, "change-turn", events[1].Name)
}
