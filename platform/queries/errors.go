package queries

import "errors"

var (
	ErrGameStarted        = errors.New("game already started")
	ErrGameNotStarted     = errors.New("game is not in progress")
	ErrGameFull           = errors.New("game is full")
	ErrAlreadyJoined      = errors.New("player already in game")
	ErrNotEnoughPlayers   = errors.New("need at least 2 players to start")
	ErrNotInGame          = errors.New("user is not playing this game")
	ErrNotYourPlayer      = errors.New("player belongs to another user")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrAlreadyRolled      = errors.New("you have already rolled the dice")
	ErrMustRoll           = errors.New("you must roll the dice first")
	ErrAlreadyDrew        = errors.New("you have already drawn a card this turn")
	ErrPropertyOwned      = errors.New("property already owned")
	ErrNotForSale         = errors.New("property cannot be bought")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotYourProfile     = errors.New("cannot change another user's profile")
)
