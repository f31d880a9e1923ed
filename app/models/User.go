package models

import "time"

const (
	StartingElo  = 1000
	DefaultLevel = "Novato"
)

type User struct {
	tableName struct{} `pg:"users"`

	Id           string    `json:"id" pg:",pk"`
	Email        string    `json:"email" pg:",unique"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Avatar       string    `json:"avatar"`
	Level        string    `json:"level"`
	Games_played int       `json:"games_played" pg:",use_zero"`
	Games_won    int       `json:"games_won" pg:",use_zero"`
	Elo          int       `json:"elo" pg:",use_zero"`
	Created_at   time.Time `json:"created_at"`
}

type UserDto struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Pass     string `json:"pass"`
}

// ProfileDto holds the fields a user may change on their own profile.
type ProfileDto struct {
	Avatar string `json:"avatar"`
	Level  string `json:"level"`
}

// GameResult is what a finished game adds to one user's record.
type GameResult struct {
	User_id string
	Won     bool
	Elo     int
}
