package engine

import (
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
)

type Delta struct {
	PlayerID string `json:"player_id"`
	Delta    int    `json:"delta"`
	Money    int    `json:"new_money"`
	Bankrupt bool   `json:"is_bankrupt"`
}

type CardResult struct {
	Card    models.Card `json:"card"`
	Trigger string      `json:"trigger_player_id"`
	Deltas  []Delta     `json:"money_deltas"`
	Message string      `json:"message"`
}

// Bankrupted lists the players whose bankrupt flag is set after the card.
func (r CardResult) Bankrupted() []string {
	var ids []string
	for _, d := range r.Deltas {
		if d.Bankrupt {
			ids = append(ids, d.PlayerID)
		}
	}
	return ids
}

// DrawAndApply draws a card of the given deck and applies it to the ledger.
func DrawAndApply(cards CardSource, deck models.Deck, ledger *Ledger, triggerID string) (CardResult, error) {
	if !deck.Valid() {
		return CardResult{}, fmt.Errorf("%w: %q", ErrInvalidDeck, deck)
	}
	if err := checkTrigger(ledger, triggerID); err != nil {
		return CardResult{}, err
	}
	card, ok := cards.DrawRandom(deck)
	if !ok {
		return CardResult{}, fmt.Errorf("%w: %s", ErrEmptyDeck, deck)
	}
	return ResolveCard(card, ledger, triggerID)
}

// ResolveCard applies an already drawn card. All deltas are worked out and
// validated before any balance changes.
//
// A payer who cannot cover a broadcast payment is truncated to their balance
// and goes bankrupt, while the other side still receives the nominal amount.
func ResolveCard(card models.Card, ledger *Ledger, triggerID string) (CardResult, error) {
	if err := checkTrigger(ledger, triggerID); err != nil {
		return CardResult{}, err
	}
	if card.Value < 0 {
		return CardResult{}, fmt.Errorf("%w: card %d", ErrInvalidAmount, card.Id)
	}

	deltas := make(map[string]int)
	switch card.Effect {
	case models.EffectGainMoney:
		deltas[triggerID] += card.Value
	case models.EffectLoseMoney:
		deltas[triggerID] -= card.Value
	case models.EffectCollectFromAllOthers:
		for _, other := range others(ledger, triggerID) {
			deltas[other.Id] -= card.Value
			deltas[triggerID] += card.Value
		}
	case models.EffectPayAllOthers:
		for _, other := range others(ledger, triggerID) {
			deltas[other.Id] += card.Value
			deltas[triggerID] -= card.Value
		}
	default:
		return CardResult{}, fmt.Errorf("%w: %s", ErrUnsupportedEffect, card.Effect)
	}

	res := CardResult{Card: card, Trigger: triggerID, Message: card.Description}
	for _, p := range ledger.Players() {
		delta := deltas[p.Id]
		switch {
		case delta > 0:
			if !p.Bankrupt {
				p.Money += delta
			}
		case delta < 0:
			delta = -debit(p, -delta)
		}
		res.Deltas = append(res.Deltas, Delta{
			PlayerID: p.Id,
			Delta:    delta,
			Money:    p.Money,
			Bankrupt: p.Bankrupt,
		})
	}
	return res, nil
}

func checkTrigger(ledger *Ledger, triggerID string) error {
	p, err := ledger.Player(triggerID)
	if err != nil {
		return err
	}
	if p.Bankrupt {
		return fmt.Errorf("%w: %s", ErrPlayerBankrupt, triggerID)
	}
	return nil
}

func others(ledger *Ledger, triggerID string) []*models.Player {
	var out []*models.Player
	for _, p := range ledger.Players() {
		if p.Id != triggerID && !p.Bankrupt {
			out = append(out, p)
		}
	}
	return out
}
