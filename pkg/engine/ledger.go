package engine

import (
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
)

// Ledger tracks money and bankruptcy for the players of one game. It works
// directly on the given players, so changes are visible to whoever owns the
// slice. A Ledger is not safe for concurrent use; callers serialise access
// per game.
type Ledger struct {
	players []*models.Player
}

func NewLedger(players []*models.Player) *Ledger {
	return &Ledger{players: players}
}

func (l *Ledger) Players() []*models.Player {
	return l.players
}

func (l *Ledger) Player(id string) (*models.Player, error) {
	for _, p := range l.players {
		if p.Id == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

func (l *Ledger) IsBankrupt(id string) (bool, error) {
	p, err := l.Player(id)
	if err != nil {
		return false, err
	}
	return p.Bankrupt, nil
}

// Credit adds amount to the player's balance and returns what was credited.
// Bankrupt players keep their balance pinned at zero, so nothing is credited.
func (l *Ledger) Credit(id string, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	p, err := l.Player(id)
	if err != nil {
		return 0, err
	}
	if p.Bankrupt {
		return 0, nil
	}
	p.Money += amount
	return amount, nil
}

// Debit takes amount from the player and returns what was actually taken.
// When the balance does not cover it, the whole balance is taken and the
// player goes bankrupt. Bankrupt players are never charged again.
func (l *Ledger) Debit(id string, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	p, err := l.Player(id)
	if err != nil {
		return 0, err
	}
	return debit(p, amount), nil
}

func debit(p *models.Player, amount int) int {
	if p.Bankrupt {
		return 0
	}
	if p.Money >= amount {
		p.Money -= amount
		return amount
	}
	paid := p.Money
	if paid < 0 {
		paid = 0
	}
	p.Money = 0
	p.Bankrupt = true
	return paid
}

// Transfer moves amount from one player to another. The receiver only gets
// what the payer could cover.
func (l *Ledger) Transfer(from, to string, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	payer, err := l.Player(from)
	if err != nil {
		return 0, err
	}
	payee, err := l.Player(to)
	if err != nil {
		return 0, err
	}
	if payer.Bankrupt {
		return 0, fmt.Errorf("%w: %s", ErrPlayerBankrupt, from)
	}
	paid := debit(payer, amount)
	if !payee.Bankrupt {
		payee.Money += paid
	}
	return paid, nil
}

// Sweep flags every player left with no money as bankrupt and returns their
// ids. It catches balances changed behind the ledger's back.
func (l *Ledger) Sweep() []string {
	var flagged []string
	for _, p := range l.players {
		if p.Money <= 0 && !p.Bankrupt {
			p.Money = 0
			p.Bankrupt = true
			flagged = append(flagged, p.Id)
		}
	}
	return flagged
}

// Active returns the players that are not bankrupt, in ledger order.
func (l *Ledger) Active() []*models.Player {
	var active []*models.Player
	for _, p := range l.players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	return active
}
