package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg"
	"github.com/Raul1156/monopoly/pkg/engine"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const defaultToken = "car"

func (s *Service) newPlayer(gameID string, user *models.User, token string, order int) *models.Player {
	if token == "" {
		token = defaultToken
	}
	return &models.Player{
		Id:         uuid.NewV4().String(),
		Game_id:    gameID,
		User_id:    user.Id,
		Username:   user.Username,
		Token:      token,
		Money:      engine.StartingMoney,
		Turn_order: order,
	}
}

// CreateGame opens a new game with the host already seated.
func (s *Service) CreateGame(ctx context.Context, hostID string, dto models.GameCreateDto) (*models.GameState, error) {
	host, err := s.store.UserByID(ctx, hostID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = fmt.Sprintf("Partida de %s", host.Username)
	}
	maxPlayers := dto.Max_players
	if maxPlayers < engine.MinPlayers {
		maxPlayers = engine.DefaultPlayers
	}

	game := &models.Game{
		Id:          pkg.RandString(8),
		Name:        name,
		Status:      models.StatusWaiting,
		Host_id:     host.Id,
		Max_players: maxPlayers,
		Created_at:  s.now(),
	}
	state := &models.GameState{
		Game:    game,
		Players: []*models.Player{s.newPlayer(game.Id, host, dto.Token, 0)},
	}
	if err := s.store.CreateGame(ctx, state); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"game_id": game.Id, "host": host.Id}).Info("game created")
	return state, nil
}

func (s *Service) JoinGame(ctx context.Context, gameID, userID, token string) (*models.GameState, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withGame(ctx, gameID, func(ss *session) error {
		st := ss.state
		if st.Game.Status != models.StatusWaiting {
			return ErrGameStarted
		}
		if len(st.Players) >= st.Game.Max_players {
			return ErrGameFull
		}
		for _, p := range st.Players {
			if p.User_id == userID {
				return ErrAlreadyJoined
			}
		}
		p := s.newPlayer(gameID, user, token, len(st.Players))
		st.Players = append(st.Players, p)
		ss.emit(EventPlayerJoin, st.PlayerDto(p))
		return nil
	})
}

func (s *Service) StartGame(ctx context.Context, gameID, userID string) (*models.GameState, error) {
	return s.withGame(ctx, gameID, func(ss *session) error {
		st := ss.state
		if !isMember(st, userID) {
			return ErrNotInGame
		}
		if st.Game.Status != models.StatusWaiting {
			return ErrGameStarted
		}
		if len(st.Players) < engine.MinPlayers {
			return ErrNotEnoughPlayers
		}
		st.Game.Status = models.StatusInProgress
		st.Game.Started_at = s.now()
		first := engine.NextActive(st.Players, -1)
		st.Game.Current_turn = first.Turn_order
		ss.emit(EventGameStart, st.Dto())
		ss.emit(EventChangeTurn, first.Id)
		s.log.WithField("game_id", gameID).Info("game started")
		return nil
	})
}

func isMember(st *models.GameState, userID string) bool {
	if userID == "" {
		return true
	}
	for _, p := range st.Players {
		if p.User_id == userID {
			return true
		}
	}
	return false
}

func (s *Service) GetGame(ctx context.Context, gameID string) (*models.GameState, error) {
	return s.store.LoadState(ctx, gameID)
}

func (s *Service) ListAvailableGames(ctx context.Context) ([]*models.Game, error) {
	return s.store.ListGames(ctx, models.StatusWaiting)
}

func (s *Service) GetPlayer(ctx context.Context, gameID, playerID string) (models.PlayerDto, error) {
	st, err := s.store.LoadState(ctx, gameID)
	if err != nil {
		return models.PlayerDto{}, err
	}
	p := st.Player(playerID)
	if p == nil {
		return models.PlayerDto{}, fmt.Errorf("%w: %s", engine.ErrPlayerNotFound, playerID)
	}
	return st.PlayerDto(p), nil
}

// NextPlayer returns the solvent player following the given turn order.
func (s *Service) NextPlayer(ctx context.Context, gameID string, currentTurn int) (models.PlayerDto, error) {
	st, err := s.store.LoadState(ctx, gameID)
	if err != nil {
		return models.PlayerDto{}, err
	}
	next := engine.NextActive(st.Players, currentTurn)
	if next == nil {
		return models.PlayerDto{}, fmt.Errorf("%w: no active players", engine.ErrPlayerNotFound)
	}
	return st.PlayerDto(next), nil
}

// SweepInactive flags every player left without money as bankrupt. It
// returns the ids it flagged.
func (s *Service) SweepInactive(ctx context.Context, gameID string) ([]string, error) {
	var flagged []string
	_, err := s.withGame(ctx, gameID, func(ss *session) error {
		flagged = ss.ledger.Sweep()
		if len(flagged) == 0 {
			return nil
		}
		settle(ss, flagged)
		if ss.state.Game.Status == models.StatusInProgress {
			if cur := currentPlayer(ss.state); cur == nil || cur.Bankrupt {
				advanceFromOrder(ss, ss.state.Game.Current_turn)
			}
		}
		s.log.WithFields(logrus.Fields{"game_id": gameID, "players": flagged}).Info("inactive players eliminated")
		return nil
	})
	return flagged, err
}

func currentPlayer(st *models.GameState) *models.Player {
	for _, p := range st.Players {
		if p.Turn_order == st.Game.Current_turn {
			return p
		}
	}
	return nil
}

func advanceFromOrder(ss *session, order int) {
	next := engine.NextActive(ss.state.Players, order)
	if next == nil {
		return
	}
	resetTurn(next)
	ss.state.Game.Current_turn = next.Turn_order
	ss.emit(EventChangeTurn, next.Id)
}
