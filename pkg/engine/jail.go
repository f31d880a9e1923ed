package engine

import (
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
)

// ServeJailTurn is called when a jailed player rolls. A double releases them
// straight away. Otherwise one jail turn is used up, and the player walks
// out once none are left.
func ServeJailTurn(ledger *Ledger, playerID string, roll Roll) (bool, error) {
	p, err := ledger.Player(playerID)
	if err != nil {
		return false, err
	}
	if !p.In_jail {
		return true, nil
	}
	if roll.IsDouble {
		release(p)
		return true, nil
	}
	p.Jail_turns--
	if p.Jail_turns <= 0 {
		release(p)
		return true, nil
	}
	return false, nil
}

// PayOutOfJail charges the release fee. Unlike rent, the fee is never taken
// partially: a player who cannot afford it stays in jail.
func PayOutOfJail(ledger *Ledger, playerID string) error {
	p, err := ledger.Player(playerID)
	if err != nil {
		return err
	}
	if p.Bankrupt {
		return fmt.Errorf("%w: %s", ErrPlayerBankrupt, playerID)
	}
	if !p.In_jail {
		return fmt.Errorf("%w: player is not in jail", ErrInvalidMove)
	}
	if p.Money < JailReleaseFee {
		return fmt.Errorf("%w: release costs %d", ErrInsufficientFunds, JailReleaseFee)
	}
	p.Money -= JailReleaseFee
	release(p)
	return nil
}

func release(p *models.Player) {
	p.In_jail = false
	p.Jail_turns = 0
}
