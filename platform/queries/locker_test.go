package queries

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	t.Run("Entries go away once released", func(t *testing.T) {
		l := NewLocalLocker()

		for i := 0; i < 3; i++ {
			unlock, err := l.Lock(context.Background(), "game")
			require.NoError(t, err)
			assert.Equal(t, 1, l.size())
			unlock()
		}

		assert.Zero(t, l.size())
	})

	t.Run("Contention", func(t *testing.T) {
		l := NewLocalLocker()
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			overlap bool
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "game")
				assert.NoError(t, err)
				mu.Lock()
				inside++
				overlap = overlap || inside > 1
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				unlock()
			}()
		}
		wg.Wait()

		assert.False(t, overlap)
		assert.Zero(t, l.size())
	})

	t.Run("Cancelled waiter", func(t *testing.T) {
		l := NewLocalLocker()
		unlock, err := l.Lock(context.Background(), "game")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "game")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		unlock()
		assert.Zero(t, l.size())
	})
}
