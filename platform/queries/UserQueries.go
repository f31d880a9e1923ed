package queries

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/platform/database"
	jwt "github.com/form3tech-oss/jwt-go"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL  = 72 * time.Hour
	avatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

func (s *Service) Register(ctx context.Context, dto models.UserDto) (*models.User, error) {
	email := strings.TrimSpace(dto.Email)
	if email == "" || dto.Pass == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidCredentials)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Pass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	username := dto.Username
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	user := &models.User{
		Id:         uuid.NewV4().String(),
		Email:      email,
		Username:   username,
		Password:   string(hash),
		Avatar:     avatarURL + url.QueryEscape(username),
		Level:      models.DefaultLevel,
		Elo:        models.StartingElo,
		Created_at: s.now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.Id).Info("user registered")
	return user, nil
}

// Login checks the password and returns a signed token carrying the user id.
func (s *Service) Login(ctx context.Context, dto models.UserDto) (string, error) {
	user, err := s.store.UserByEmail(ctx, strings.TrimSpace(dto.Email))
	if errors.Is(err, database.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Pass)) != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = user.Id
	claims["exp"] = s.now().Add(tokenTTL).Unix()
	return token.SignedString(s.secret)
}

func (s *Service) User(ctx context.Context, id string) (*models.User, error) {
	return s.store.UserByID(ctx, id)
}

const (
	eloWin  = 25
	eloLoss = 10

	defaultRanking = 10
	maxRanking     = 100
)

// recordResults adds a finished game to every seated user's record. The
// game itself is already saved, so a failure here is only logged.
func (s *Service) recordResults(ctx context.Context, st *models.GameState) {
	winner := engine.Winner(st.Players)
	results := make([]models.GameResult, 0, len(st.Players))
	for _, p := range st.Players {
		r := models.GameResult{User_id: p.User_id, Elo: -eloLoss}
		if winner != nil && p.Id == winner.Id {
			r.Won = true
			r.Elo = eloWin
		}
		results = append(results, r)
	}
	if err := s.store.RecordResults(ctx, results); err != nil {
		s.log.WithError(err).WithField("game_id", st.Game.Id).Error("failed recording game results")
	}
}

// Ranking returns the top count users, 10 by default.
func (s *Service) Ranking(ctx context.Context, count int) ([]*models.User, error) {
	if count <= 0 {
		count = defaultRanking
	}
	if count > maxRanking {
		count = maxRanking
	}
	return s.store.TopUsers(ctx, count)
}

// UpdateProfile changes the avatar and level of the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, id, callerID string, dto models.ProfileDto) (*models.User, error) {
	if id != callerID {
		return nil, ErrNotYourProfile
	}
	if strings.TrimSpace(dto.Level) == "" {
		dto.Level = models.DefaultLevel
	}
	return s.store.UpdateProfile(ctx, id, dto)
}
