package database

import (
	"context"
	"errors"

	"github.com/Raul1156/monopoly/app/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrOwnershipClash = errors.New("property already has an owner")
)

// Store is the persistence port of the game service. Adapters must make
// SaveState atomic: either the whole state is written or none of it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile models.ProfileDto) (*models.User, error)
	// RecordResults applies the results of one finished game, all or none.
	// Elo never drops below zero.
	RecordResults(ctx context.Context, results []models.GameResult) error
	// TopUsers returns up to n users by Elo, then games won.
	TopUsers(ctx context.Context, n int) ([]*models.User, error)

	CreateGame(ctx context.Context, state *models.GameState) error
	ListGames(ctx context.Context, status string) ([]*models.Game, error)
	// LoadState returns a private copy of a game; it fails with
	// engine.ErrGameNotFound for unknown ids.
	LoadState(ctx context.Context, gameID string) (*models.GameState, error)
	SaveState(ctx context.Context, state *models.GameState) error
}

// ranksAbove orders the ranking: Elo, then games won, then name.
func ranksAbove(a, b *models.User) bool {
	if a.Elo != b.Elo {
		return a.Elo > b.Elo
	}
	if a.Games_won != b.Games_won {
		return a.Games_won > b.Games_won
	}
	return a.Username < b.Username
}

func checkOwnerships(state *models.GameState) error {
	seen := make(map[int]bool, len(state.Ownerships))
	for _, o := range state.Ownerships {
		if seen[o.Property_id] {
			return ErrOwnershipClash
		}
		seen[o.Property_id] = true
	}
	return nil
}
