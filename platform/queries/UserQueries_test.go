package queries

import (
	"context"
	"testing"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/platform/board"
	"github.com/Raul1156/monopoly/platform/database"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	b, err := board.Default(&scripted{values: []int{0}})
	require.NoError(t, err)
	svc := newService(t, b, database.NewMemoryStore(), nil)

	// Given: a registered user
	user, err := svc.Register(ctx, models.UserDto{Email: "ana@example.com", Pass: "tapas"})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.NotEqual(t, "tapas", user.Password)

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, models.UserDto{Email: "ANA@example.com", Pass: "x"})
		assert.ErrorIs(t, err, database.ErrUserExists)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, models.UserDto{Email: "ana@example.com", Pass: "paella"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, models.UserDto{Email: "bob@example.com", Pass: "tapas"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Token carries the user id", func(t *testing.T) {
		signed, err := svc.Login(ctx, models.UserDto{Email: "ana@example.com", Pass: "tapas"})
		require.NoError(t, err)

		token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, user.Id, token.Claims.(jwt.MapClaims)["user_id"])
	})

	t.Run("Missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, models.UserDto{Email: " "})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_Profiles(t *testing.T) {
	ctx := context.Background()
	b, err := board.Default(&scripted{values: []int{0}})
	require.NoError(t, err)
	store := database.NewMemoryStore()
	svc := newService(t, b, store, nil)

	ana, err := svc.Register(ctx, models.UserDto{Email: "ana@example.com", Username: "ana", Pass: "tapas"})
	require.NoError(t, err)
	bea, err := svc.Register(ctx, models.UserDto{Email: "bea@example.com", Username: "bea", Pass: "tapas"})
	require.NoError(t, err)

	t.Run("New users start level", func(t *testing.T) {
		assert.Equal(t, models.StartingElo, ana.Elo)
		assert.Equal(t, models.DefaultLevel, ana.Level)
		assert.Contains(t, ana.Avatar, "seed=ana")
	})

	t.Run("Own profile", func(t *testing.T) {
		u, err := svc.UpdateProfile(ctx, ana.Id, ana.Id, models.ProfileDto{Avatar: "gato.png", Level: "Experto"})

		require.NoError(t, err)
		assert.Equal(t, "gato.png", u.Avatar)
		assert.Equal(t, "Experto", u.Level)
	})

	t.Run("Someone else's profile", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, ana.Id, bea.Id, models.ProfileDto{Avatar: "x"})

		assert.ErrorIs(t, err, ErrNotYourProfile)
	})

	t.Run("Ranking", func(t *testing.T) {
		require.NoError(t, store.RecordResults(ctx, []models.GameResult{
			{User_id: bea.Id, Won: true, Elo: eloWin},
			{User_id: ana.Id, Elo: -eloLoss},
		}))

		top, err := svc.Ranking(ctx, 1)

		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, bea.Id, top[0].Id)
	})
}
