// Package engine holds the board rules: dice, movement, rent, event cards,
// station teleport and the money ledger. It has no knowledge of storage or
// transport; callers hand it the state of one game and persist the result.
package engine

import (
	"errors"

	"github.com/Raul1156/monopoly/app/models"
)

const (
	TrackLength    = 40
	StartingMoney  = 1500
	GoBonus        = 200
	JailPosition   = 10
	JailTurns      = 2
	JailReleaseFee = 50
	MaxHouses      = 4
	MinPlayers     = 2
	DefaultPlayers = 4

	dieFaces     = 6
	maxRollTotal = 2 * dieFaces
)

// StationPositions is the fixed order of the four stations around the track.
var StationPositions = [4]int{5, 15, 25, 35}

var (
	ErrInvalidMove           = errors.New("invalid move")
	ErrInsufficientOwnership = errors.New("insufficient station ownership")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrEmptyDeck             = errors.New("no cards in deck")
	ErrUnsupportedEffect     = errors.New("unsupported card effect")
	ErrInvalidDeck           = errors.New("invalid deck")
	ErrPlayerNotFound        = errors.New("player not found")
	ErrGameNotFound          = errors.New("game not found")
	ErrPropertyNotFound      = errors.New("property not found")
	ErrPlayerBankrupt        = errors.New("player is bankrupt")
	ErrInvalidAmount         = errors.New("amount must not be negative")
)

// Board answers static layout questions.
type Board interface {
	Space(position int) (models.Space, error)
	Property(id int) (models.Property, error)
}

// CardSource draws one card of a deck, uniformly and with replacement.
// ok is false when the deck holds no cards.
type CardSource interface {
	DrawRandom(deck models.Deck) (card models.Card, ok bool)
}

func validPosition(pos int) bool {
	return pos >= 0 && pos < TrackLength
}
