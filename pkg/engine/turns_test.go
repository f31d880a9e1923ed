package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextActive(t *testing.T) {
	players := newPlayers(100, 100, 100, 100)
	players[2].Bankrupt = true

	next := NextActive(players, 1)
	require.NotNil(t, next)
	assert.Equal(t, "p4", next.Id)

	next = NextActive(players, 3)
	require.NotNil(t, next)
	assert.Equal(t, "p1", next.Id)

	for _, p := range players {
		p.Bankrupt = true
	}
	assert.Nil(t, NextActive(players, 0))
}

func TestWinner(t *testing.T) {
	players := newPlayers(100, 100, 100)
	assert.Nil(t, Winner(players))

	players[0].Bankrupt = true
	players[2].Bankrupt = true
	winner := Winner(players)
	require.NotNil(t, winner)
	assert.Equal(t, "p2", winner.Id)
}
