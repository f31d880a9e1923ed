package cache

import (
	"github.com/gomodule/redigo/redis"
)

// SetNX stores value under key with a millisecond expiry, only when the key
// is free. It reports whether the key was set.
func SetNX(key string, value string, ttlMillis int, conn redis.Conn) (bool, error) {
	_, err := redis.String(conn.Do("SET", key, value, "NX", "PX", ttlMillis))
	if err == redis.ErrNil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

func RPUSH(key string, values []interface{}, conn redis.Conn) error {
	_, err := conn.Do("RPUSH", redis.Args{}.Add(key).AddFlat(values)...)
	return err
}

func LTRIM(key string, start, stop int, conn redis.Conn) error {
	_, err := conn.Do("LTRIM", key, start, stop)
	return err
}

func LRANGE(key string, start, stop int, conn redis.Conn) ([]string, error) {
	return redis.Strings(conn.Do("LRANGE", key, start, stop))
}
