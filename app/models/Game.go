package models

import "time"

const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in progress"
	StatusFinished   = "finished"
)

type Game struct {
	tableName struct{} `pg:"games"`

	Id           string    `json:"id" pg:",pk"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	Host_id      string    `json:"host_id"`
	Max_players  int       `json:"max_players"`
	Current_turn int       `json:"current_turn" pg:",use_zero"`
	Created_at   time.Time `json:"created_at"`
	Started_at   time.Time `json:"started_at"`
}

// GameState is everything a single turn may touch. It is loaded and saved
// as one unit.
type GameState struct {
	Game       *Game
	Players    []*Player
	Ownerships []*Ownership
}

func (s *GameState) Player(id string) *Player {
	for _, p := range s.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (s *GameState) OwnershipOf(propertyId int) *Ownership {
	for _, o := range s.Ownerships {
		if o.Property_id == propertyId {
			return o
		}
	}
	return nil
}

func (s *GameState) OwnedBy(playerId string) []*Ownership {
	var owned []*Ownership
	for _, o := range s.Ownerships {
		if o.Player_id == playerId {
			owned = append(owned, o)
		}
	}
	return owned
}

// Clone returns a deep copy so callers can mutate it without touching the
// original.
func (s *GameState) Clone() *GameState {
	c := &GameState{}
	if s.Game != nil {
		g := *s.Game
		c.Game = &g
	}
	for _, p := range s.Players {
		cp := *p
		c.Players = append(c.Players, &cp)
	}
	for _, o := range s.Ownerships {
		co := *o
		c.Ownerships = append(c.Ownerships, &co)
	}
	return c
}

type GameCreateDto struct {
	Name        string `json:"name"`
	Max_players int    `json:"max_players"`
	Token       string `json:"token"`
}

type GameDto struct {
	Id           string      `json:"id"`
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	Current_turn int         `json:"current_turn"`
	Players      []PlayerDto `json:"players"`
}

func (s *GameState) Dto() GameDto {
	dto := GameDto{
		Id:           s.Game.Id,
		Name:         s.Game.Name,
		Status:       s.Game.Status,
		Current_turn: s.Game.Current_turn,
		Players:      make([]PlayerDto, 0, len(s.Players)),
	}
	for _, p := range s.Players {
		dto.Players = append(dto.Players, s.PlayerDto(p))
	}
	return dto
}

func (s *GameState) PlayerDto(p *Player) PlayerDto {
	props := make([]Ownership, 0)
	for _, o := range s.OwnedBy(p.Id) {
		props = append(props, *o)
	}
	return PlayerDto{
		Id:         p.Id,
		Username:   p.Username,
		Token:      p.Token,
		Balance:    p.Money,
		Pos:        p.Position,
		Jail:       p.In_jail,
		Bankrupt:   p.Bankrupt,
		Turn_order: p.Turn_order,
		Properties: props,
	}
}
