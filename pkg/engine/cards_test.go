package engine

import (
	"testing"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(effect models.EffectKind, value int) models.Card {
	return models.Card{Id: 1, Deck: models.DeckChance, Description: "test card", Effect: effect, Value: value}
}

func moneyOf(players []*models.Player) []int {
	out := make([]int, 0, len(players))
	for _, p := range players {
		out = append(out, p.Money)
	}
	return out
}

func TestResolveCard_GainAndLose(t *testing.T) {
	t.Run("Gain", func(t *testing.T) {
		ledger := NewLedger(newPlayers(1000, 1000))

		res, err := ResolveCard(card(models.EffectGainMoney, 150), ledger, "p1")

		require.NoError(t, err)
		assert.Equal(t, []int{1150, 1000}, moneyOf(ledger.Players()))
		assert.Equal(t, Delta{PlayerID: "p1", Delta: 150, Money: 1150}, res.Deltas[0])
		assert.Equal(t, Delta{PlayerID: "p2", Delta: 0, Money: 1000}, res.Deltas[1])
		assert.Equal(t, "test card", res.Message)
	})

	t.Run("Lose covered", func(t *testing.T) {
		ledger := NewLedger(newPlayers(200))

		res, err := ResolveCard(card(models.EffectLoseMoney, 200), ledger, "p1")

		require.NoError(t, err)
		assert.Equal(t, Delta{PlayerID: "p1", Delta: -200, Money: 0, Bankrupt: false}, res.Deltas[0])
	})

	t.Run("Lose short", func(t *testing.T) {
		ledger := NewLedger(newPlayers(70))

		res, err := ResolveCard(card(models.EffectLoseMoney, 200), ledger, "p1")

		require.NoError(t, err)
		assert.Equal(t, Delta{PlayerID: "p1", Delta: -70, Money: 0, Bankrupt: true}, res.Deltas[0])
		assert.Equal(t, []string{"p1"}, res.Bankrupted())
	})
}

func TestResolveCard_Broadcast(t *testing.T) {
	t.Run("Collect from three", func(t *testing.T) {
		ledger := NewLedger(newPlayers(500, 500, 500, 500))

		_, err := ResolveCard(card(models.EffectCollectFromAllOthers, 50), ledger, "p2")

		require.NoError(t, err)
		assert.Equal(t, []int{450, 650, 450, 450}, moneyOf(ledger.Players()))
	})

	t.Run("Bankrupt players are skipped", func(t *testing.T) {
		players := newPlayers(500, 500, 0)
		players[2].Bankrupt = true
		ledger := NewLedger(players)

		res, err := ResolveCard(card(models.EffectPayAllOthers, 50), ledger, "p1")

		require.NoError(t, err)
		assert.Equal(t, []int{450, 550, 0}, moneyOf(players))
		assert.Zero(t, res.Deltas[2].Delta)
	})

	t.Run("Short payer keeps nominal credit", func(t *testing.T) {
		// Given: one of the payers cannot cover the card
		ledger := NewLedger(newPlayers(500, 30, 500))

		// When: the trigger collects 50 from everyone
		res, err := ResolveCard(card(models.EffectCollectFromAllOthers, 50), ledger, "p1")

		// Then: the short payer is truncated and bankrupt, the trigger still gets 100
		require.NoError(t, err)
		assert.Equal(t, []int{600, 0, 450}, moneyOf(ledger.Players()))
		assert.Equal(t, Delta{PlayerID: "p2", Delta: -30, Money: 0, Bankrupt: true}, res.Deltas[1])
	})

	t.Run("Pay then collect round trip", func(t *testing.T) {
		ledger := NewLedger(newPlayers(400, 300, 200))
		before := moneyOf(ledger.Players())

		_, err := ResolveCard(card(models.EffectPayAllOthers, 75), ledger, "p3")
		require.NoError(t, err)
		_, err = ResolveCard(card(models.EffectCollectFromAllOthers, 75), ledger, "p3")
		require.NoError(t, err)

		assert.Equal(t, before, moneyOf(ledger.Players()))
	})
}

func TestResolveCard_Errors(t *testing.T) {
	t.Run("Unsupported effect leaves balances alone", func(t *testing.T) {
		ledger := NewLedger(newPlayers(500, 500))

		_, err := ResolveCard(card(models.EffectUnknown, 50), ledger, "p1")

		assert.ErrorIs(t, err, ErrUnsupportedEffect)
		assert.Equal(t, []int{500, 500}, moneyOf(ledger.Players()))
	})

	t.Run("Unknown trigger", func(t *testing.T) {
		ledger := NewLedger(newPlayers(500))

		_, err := ResolveCard(card(models.EffectGainMoney, 50), ledger, "p9")

		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("Bankrupt trigger", func(t *testing.T) {
		players := newPlayers(0, 500)
		players[0].Bankrupt = true

		_, err := ResolveCard(card(models.EffectCollectFromAllOthers, 50), NewLedger(players), "p1")

		assert.ErrorIs(t, err, ErrPlayerBankrupt)
		assert.Equal(t, 500, players[1].Money)
	})
}

func TestDrawAndApply(t *testing.T) {
	deck := fixedDeck{cards: map[models.Deck][]models.Card{
		models.DeckCommunityChest: {{Id: 7, Deck: models.DeckCommunityChest, Description: "refund", Effect: models.EffectGainMoney, Value: 100}},
	}}

	t.Run("Applies drawn card", func(t *testing.T) {
		ledger := NewLedger(newPlayers(1500))

		res, err := DrawAndApply(deck, models.DeckCommunityChest, ledger, "p1")

		require.NoError(t, err)
		assert.Equal(t, 7, res.Card.Id)
		assert.Equal(t, 1600, ledger.Players()[0].Money)
	})

	t.Run("Empty deck", func(t *testing.T) {
		ledger := NewLedger(newPlayers(1500))

		_, err := DrawAndApply(deck, models.DeckChance, ledger, "p1")

		assert.ErrorIs(t, err, ErrEmptyDeck)
		assert.Equal(t, 1500, ledger.Players()[0].Money)
	})

	t.Run("Invalid deck", func(t *testing.T) {
		_, err := DrawAndApply(deck, models.Deck("tarot"), NewLedger(newPlayers(1500)), "p1")

		assert.ErrorIs(t, err, ErrInvalidDeck)
	})
}
