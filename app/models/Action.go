package models

// MoveDto asks for a move. Leaving both dice at 0 rolls on the server.
type MoveDto struct {
	Game_id   string `json:"game_id"`
	Player_id string `json:"player_id"`
	Dice1     int    `json:"dice1"`
	Dice2     int    `json:"dice2"`
}

type StationDto struct {
	Game_id   string `json:"game_id"`
	Player_id string `json:"player_id"`
	From      int    `json:"from"`
	To        int    `json:"to"`
}

// BuyDto buys a property by id, or the one the player stands on when
// Property_id is 0.
type BuyDto struct {
	Game_id     string `json:"game_id"`
	Player_id   string `json:"player_id"`
	Property_id int    `json:"property_id"`
}

type RentDto struct {
	Game_id        string `json:"game_id"`
	From_player_id string `json:"from_player_id"`
	To_player_id   string `json:"to_player_id"`
	Amount         int    `json:"amount"`
}

type CardDto struct {
	Game_id   string `json:"game_id"`
	Player_id string `json:"player_id"`
	Type      string `json:"type"`
}

type TurnDto struct {
	Game_id   string `json:"game_id"`
	Player_id string `json:"player_id"`
}
