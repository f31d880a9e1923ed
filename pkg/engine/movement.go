package engine

import (
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
)

type MoveResult struct {
	From        int          `json:"from"`
	NewPosition int          `json:"new_position"`
	Roll        Roll         `json:"dice_roll"`
	PassedGo    bool         `json:"passed_go"`
	SentToJail  bool         `json:"sent_to_jail"`
	Space       models.Space `json:"space"`
	MoneyChange int          `json:"money_change"`
	Message     string       `json:"message"`
}

// Move works out where a roll takes a token. It does not touch any player;
// see ApplyMove.
func Move(board Board, current int, roll Roll) (MoveResult, error) {
	if !validPosition(current) {
		return MoveResult{}, fmt.Errorf("%w: position %d is off the board", ErrInvalidMove, current)
	}
	if roll.Total < 1 || roll.Total > maxRollTotal {
		return MoveResult{}, fmt.Errorf("%w: roll total %d", ErrInvalidMove, roll.Total)
	}

	res := MoveResult{From: current, Roll: roll}
	res.NewPosition = (current + roll.Total) % TrackLength
	res.PassedGo = res.NewPosition < current

	space, err := board.Space(res.NewPosition)
	if err != nil {
		return MoveResult{}, err
	}

	if space.Kind == models.SpaceGoToJail {
		jail, err := board.Space(JailPosition)
		if err != nil {
			return MoveResult{}, err
		}
		res.NewPosition = JailPosition
		res.SentToJail = true
		res.Space = jail
		res.Message = "sent to jail"
		return res, nil
	}

	res.Space = space
	if res.PassedGo {
		res.MoneyChange = GoBonus
		res.Message = fmt.Sprintf("passed Go, +%d", GoBonus)
	} else {
		res.Message = fmt.Sprintf("landed on %s", space.Name)
	}
	return res, nil
}

// ApplyMove writes a move result onto the player: position, jail state and
// the Go bonus.
func ApplyMove(ledger *Ledger, playerID string, res MoveResult) error {
	p, err := ledger.Player(playerID)
	if err != nil {
		return err
	}
	p.Position = res.NewPosition
	if res.SentToJail {
		p.In_jail = true
		p.Jail_turns = JailTurns
		return nil
	}
	if res.MoneyChange > 0 {
		if _, err := ledger.Credit(playerID, res.MoneyChange); err != nil {
			return err
		}
	}
	return nil
}
