package cache

import (
	"time"

	"github.com/Raul1156/monopoly/pkg/configs"
	"github.com/gomodule/redigo/redis"
)

func CreateRedisPool(cfg configs.Redis) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", cfg.URL) },
	}
}
