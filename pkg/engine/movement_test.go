package engine

import (
	"testing"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_Wraps(t *testing.T) {
	board := newTestBoard()

	for current := 0; current < TrackLength; current++ {
		for total := 1; total <= 12; total++ {
			res, err := Move(board, current, Roll{Total: total})
			require.NoError(t, err)

			raw := (current + total) % TrackLength
			assert.Equal(t, raw < current, res.PassedGo, "from %d by %d", current, total)
			if raw == 30 {
				assert.Equal(t, JailPosition, res.NewPosition)
				continue
			}
			assert.Equal(t, raw, res.NewPosition, "from %d by %d", current, total)
			if res.PassedGo {
				assert.Equal(t, GoBonus, res.MoneyChange)
			} else {
				assert.Zero(t, res.MoneyChange)
			}
		}
	}
}

func TestMove_GoToJail(t *testing.T) {
	board := newTestBoard()

	for total := 1; total <= 12; total++ {
		// Given: a player exactly total squares short of "go to jail"
		current := 30 - total
		players := newPlayers(1500)
		players[0].Position = current
		ledger := NewLedger(players)

		// When: the move is resolved and applied
		res, err := Move(board, current, Roll{Total: total})
		require.NoError(t, err)
		require.NoError(t, ApplyMove(ledger, "p1", res))

		// Then: the player sits in jail for two turns without any bonus
		assert.True(t, res.SentToJail)
		assert.Equal(t, JailPosition, res.NewPosition)
		assert.Equal(t, models.SpaceJail, res.Space.Kind)
		assert.Zero(t, res.MoneyChange)
		assert.Equal(t, JailPosition, players[0].Position)
		assert.True(t, players[0].In_jail)
		assert.Equal(t, JailTurns, players[0].Jail_turns)
		assert.Equal(t, 1500, players[0].Money)
	}
}

func TestMove_PassGoScenario(t *testing.T) {
	board := newTestBoard()
	players := newPlayers(1500)
	players[0].Position = 38
	ledger := NewLedger(players)

	res, err := Move(board, 38, Roll{Die1: 2, Die2: 3, Total: 5})
	require.NoError(t, err)
	require.NoError(t, ApplyMove(ledger, "p1", res))

	assert.Equal(t, 3, res.NewPosition)
	assert.True(t, res.PassedGo)
	assert.Equal(t, models.SpaceProperty, res.Space.Kind)
	assert.Equal(t, 1700, players[0].Money)
	assert.Equal(t, 3, players[0].Position)
}

func TestMove_LandingOnGo(t *testing.T) {
	board := newTestBoard()

	res, err := Move(board, 35, Roll{Total: 5})
	require.NoError(t, err)

	assert.Equal(t, 0, res.NewPosition)
	assert.True(t, res.PassedGo)
	assert.Equal(t, GoBonus, res.MoneyChange)
}

func TestMove_Invalid(t *testing.T) {
	board := newTestBoard()

	_, err := Move(board, 40, Roll{Total: 5})
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = Move(board, -1, Roll{Total: 5})
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = Move(board, 3, Roll{Total: 0})
	assert.ErrorIs(t, err, ErrInvalidMove)

	_, err = Move(board, 3, Roll{Total: 13})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestApplyMove_UnknownPlayer(t *testing.T) {
	ledger := NewLedger(newPlayers(1500))

	err := ApplyMove(ledger, "ghost", MoveResult{NewPosition: 4})

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
