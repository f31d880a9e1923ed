package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/configs"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

func PostgreSQLConnection(cfg configs.Postgres) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.User,
		Addr:     cfg.Addr,
		Password: cfg.Password,
		Database: cfg.Database,
	})
}

type PostgresStore struct {
	db *pg.DB
}

func NewPostgresStore(db *pg.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateSchema creates the tables if they are missing.
func (s *PostgresStore) CreateSchema(ctx context.Context) error {
	for _, model := range []interface{}{
		(*models.User)(nil),
		(*models.Game)(nil),
		(*models.Player)(nil),
		(*models.Ownership)(nil),
	} {
		err := s.db.ModelContext(ctx, model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ModelContext(ctx, user).Insert()
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return fmt.Errorf("%w: %s", ErrUserExists, user.Email)
	}
	return err
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := s.db.ModelContext(ctx, user).Where("lower(email) = lower(?)", email).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *PostgresStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{Id: id}
	err := s.db.ModelContext(ctx, user).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, id string, profile models.ProfileDto) (*models.User, error) {
	user := &models.User{Id: id, Avatar: profile.Avatar, Level: profile.Level}
	res, err := s.db.ModelContext(ctx, user).Column("avatar", "level").WherePK().Returning("*").Update()
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *PostgresStore) RecordResults(ctx context.Context, results []models.GameResult) error {
	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		for _, r := range results {
			won := 0
			if r.Won {
				won = 1
			}
			res, err := tx.ModelContext(ctx, (*models.User)(nil)).
				Set("games_played = games_played + 1").
				Set("games_won = games_won + ?", won).
				Set("elo = GREATEST(elo + ?, 0)", r.Elo).
				Where("id = ?", r.User_id).
				Update()
			if err != nil {
				return fmt.Errorf("record result of %s: %w", r.User_id, err)
			}
			if res.RowsAffected() == 0 {
				return fmt.Errorf("%w: %s", ErrUserNotFound, r.User_id)
			}
		}
		return nil
	})
}

func (s *PostgresStore) TopUsers(ctx context.Context, n int) ([]*models.User, error) {
	var users []*models.User
	err := s.db.ModelContext(ctx, &users).
		Order("elo DESC", "games_won DESC", "username ASC").
		Limit(n).
		Select()
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) CreateGame(ctx context.Context, state *models.GameState) error {
	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, state.Game).Insert(); err != nil {
			return err
		}
		return saveMembers(ctx, tx, state)
	})
}

func (s *PostgresStore) ListGames(ctx context.Context, status string) ([]*models.Game, error) {
	var games []*models.Game
	q := s.db.ModelContext(ctx, &games).Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Select(); err != nil {
		return nil, err
	}
	return games, nil
}

func (s *PostgresStore) LoadState(ctx context.Context, gameID string) (*models.GameState, error) {
	state := &models.GameState{Game: &models.Game{Id: gameID}}
	err := s.db.ModelContext(ctx, state.Game).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", engine.ErrGameNotFound, gameID)
	}
	if err != nil {
		return nil, err
	}
	err = s.db.ModelContext(ctx, &state.Players).Where("game_id = ?", gameID).Order("turn_order ASC").Select()
	if err != nil {
		return nil, err
	}
	err = s.db.ModelContext(ctx, &state.Ownerships).Where("game_id = ?", gameID).Order("id ASC").Select()
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SaveState writes the game, its players and its ownerships in one
// transaction.
func (s *PostgresStore) SaveState(ctx context.Context, state *models.GameState) error {
	if err := checkOwnerships(state); err != nil {
		return err
	}
	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.ModelContext(ctx, state.Game).WherePK().Update()
		if err != nil {
			return err
		}
		if res.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", engine.ErrGameNotFound, state.Game.Id)
		}
		return saveMembers(ctx, tx, state)
	})
}

func saveMembers(ctx context.Context, tx *pg.Tx, state *models.GameState) error {
	for _, p := range state.Players {
		if _, err := tx.ModelContext(ctx, p).OnConflict("(id) DO UPDATE").Insert(); err != nil {
			return fmt.Errorf("save player %s: %w", p.Id, err)
		}
	}
	for _, o := range state.Ownerships {
		var err error
		if o.Id == 0 {
			_, err = tx.ModelContext(ctx, o).Insert()
		} else {
			_, err = tx.ModelContext(ctx, o).WherePK().Update()
		}
		var pgErr pg.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return fmt.Errorf("%w: property %d", ErrOwnershipClash, o.Property_id)
		}
		if err != nil {
			return fmt.Errorf("save ownership of %d: %w", o.Property_id, err)
		}
	}
	return nil
}
