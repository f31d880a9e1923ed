package queries

// Notifier pushes game events to whoever is watching a game.
type Notifier interface {
	Broadcast(gameID, event string, payload interface{})
}

// Notifiers fans one event out to several notifiers.
type Notifiers []Notifier

func (n Notifiers) Broadcast(gameID, event string, payload interface{}) {
	for _, notifier := range n {
		notifier.Broadcast(gameID, event, payload)
	}
}

const (
	EventPlayerJoin     = "player-join"
	EventGameStart      = "game-start"
	EventPlayerMoved    = "player-moved"
	EventCardDrawn      = "card-drawn"
	EventRentPaid       = "rent-paid"
	EventTaxPaid        = "tax-paid"
	EventPropertyBought = "property-bought"
	EventPlayerBankrupt = "player-bankrupt"
	EventJailReleased   = "jail-released"
	EventChangeTurn     = "change-turn"
	EventGameOver       = "game-over"
)
