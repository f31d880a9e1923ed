package models

import "time"

type Player struct {
	tableName struct{} `pg:"players"`

	Id         string `json:"id" pg:",pk"`
	Game_id    string `json:"game_id"`
	User_id    string `json:"user_id"`
	Username   string `json:"username"`
	Token      string `json:"token"`
	Position   int    `json:"position" pg:",use_zero"`
	Money      int    `json:"money" pg:",use_zero"`
	In_jail    bool   `json:"in_jail" pg:",use_zero"`
	Jail_turns int    `json:"jail_turns" pg:",use_zero"`
	Bankrupt   bool   `json:"bankrupt" pg:",use_zero"`
	Turn_order int    `json:"turn_order" pg:",use_zero"`
	Has_rolled bool   `json:"has_rolled" pg:",use_zero"`
	Has_drawn  bool   `json:"has_drawn" pg:",use_zero"`
}

// Ownership ties a property to the player holding it inside one game.
type Ownership struct {
	tableName struct{} `pg:"ownerships"`

	Id          int64     `json:"id" pg:",pk"`
	Game_id     string    `json:"game_id" pg:",unique:game_property"`
	Player_id   string    `json:"player_id"`
	Property_id int       `json:"property_id" pg:",unique:game_property"`
	Houses      int       `json:"houses" pg:",use_zero"`
	Has_hotel   bool      `json:"has_hotel" pg:",use_zero"`
	Mortgaged   bool      `json:"mortgaged" pg:",use_zero"`
	Acquired_at time.Time `json:"acquired_at"`
}

type PlayerDto struct {
	Id         string      `json:"id"`
	Username   string      `json:"username"`
	Token      string      `json:"token"`
	Balance    int         `json:"balance"`
	Pos        int         `json:"pos"`
	Jail       bool        `json:"jail"`
	Bankrupt   bool        `json:"bankrupt"`
	Turn_order int         `json:"turn_order"`
	Properties []Ownership `json:"properties"`
}

type JoinGameDto struct {
	Token string `json:"token"`
}
