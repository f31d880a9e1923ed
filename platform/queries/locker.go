package queries

import (
	"context"
	"sync"
)

// Locker hands out exclusive access to one game at a time.
type Locker interface {
	Lock(ctx context.Context, gameID string) (unlock func(), err error)
}

type gameLock struct {
	sem  chan struct{}
	refs int // holder plus waiters, guarded by LocalLocker.mu
}

// LocalLocker keeps one lock per game in process memory, dropping it once
// nobody holds or waits for it. It is enough for a single server; use
// cache.RedisLocker when running several.
type LocalLocker struct {
	mu    sync.Mutex
	games map[string]*gameLock
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{games: make(map[string]*gameLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, gameID string) (func(), error) {
	l.mu.Lock()
	g, ok := l.games[gameID]
	if !ok {
		g = &gameLock{sem: make(chan struct{}, 1)}
		l.games[gameID] = g
	}
	g.refs++
	l.mu.Unlock()

	select {
	case g.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-g.sem
				l.release(gameID, g)
			})
		}, nil
	case <-ctx.Done():
		l.release(gameID, g)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) release(gameID string, g *gameLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	g.refs--
	if g.refs == 0 && l.games[gameID] == g {
		delete(l.games, gameID)
	}
}

// size reports how many games currently have a lock entry.
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.games)
}
