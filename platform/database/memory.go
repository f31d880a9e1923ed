package database

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
)

// MemoryStore keeps everything in process. Loads and saves copy the state,
// so a caller never sees another caller's half-applied changes.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	games   map[string]*models.GameState
	ownerID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*models.User),
		games: make(map[string]*models.GameState),
	}
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("%w: %s", ErrUserExists, user.Email)
		}
	}
	u := *user
	m.users[u.Id] = &u
	return nil
}

func (m *MemoryStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *MemoryStore) UserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) UpdateProfile(_ context.Context, id string, profile models.ProfileDto) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u.Avatar = profile.Avatar
	u.Level = profile.Level
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) RecordResults(_ context.Context, results []models.GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range results {
		if _, ok := m.users[r.User_id]; !ok {
			return fmt.Errorf("%w: %s", ErrUserNotFound, r.User_id)
		}
	}
	for _, r := range results {
		u := m.users[r.User_id]
		u.Games_played++
		if r.Won {
			u.Games_won++
		}
		u.Elo += r.Elo
		if u.Elo < 0 {
			u.Elo = 0
		}
	}
	return nil
}

func (m *MemoryStore) TopUsers(_ context.Context, n int) ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return ranksAbove(users[i], users[j]) })
	if n >= 0 && len(users) > n {
		users = users[:n]
	}
	return users, nil
}

func (m *MemoryStore) CreateGame(_ context.Context, state *models.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[state.Game.Id]; ok {
		return fmt.Errorf("game %s already exists", state.Game.Id)
	}
	m.assignIDs(state)
	m.games[state.Game.Id] = state.Clone()
	return nil
}

func (m *MemoryStore) ListGames(_ context.Context, status string) ([]*models.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games := make([]*models.Game, 0)
	for _, st := range m.games {
		if status == "" || st.Game.Status == status {
			g := *st.Game
			games = append(games, &g)
		}
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].Created_at.Before(games[j].Created_at)
	})
	return games, nil
}

func (m *MemoryStore) LoadState(_ context.Context, gameID string) (*models.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrGameNotFound, gameID)
	}
	return st.Clone(), nil
}

func (m *MemoryStore) SaveState(_ context.Context, state *models.GameState) error {
	if err := checkOwnerships(state); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[state.Game.Id]; !ok {
		return fmt.Errorf("%w: %s", engine.ErrGameNotFound, state.Game.Id)
	}
	m.assignIDs(state)
	m.games[state.Game.Id] = state.Clone()
	return nil
}

func (m *MemoryStore) assignIDs(state *models.GameState) {
	for _, o := range state.Ownerships {
		if o.Id == 0 {
			m.ownerID++
			o.Id = m.ownerID
		}
	}
}
