package queries

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/platform/board"
	"github.com/Raul1156/monopoly/platform/database"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed values, cycling when it runs out.
type scripted struct {
	mu     sync.Mutex
	values []int
	i      int
}

func (s *scripted) NextInt(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.i%len(s.values)]
	s.i++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Broadcast(_, event string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type fixture struct {
	t       *testing.T
	ctx     context.Context
	store   *database.MemoryStore
	svc     *Service
	board   *board.Board
	cards   *scripted
	events  *recorder
	game    string
	players []string
	users   []string
}

func newService(t *testing.T, layout Layout, store database.Store, events Notifier) *Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return NewService(Options{
		Store:    store,
		Locker:   NewLocalLocker(),
		Board:    layout,
		Roller:   engine.NewRoller(&scripted{values: []int{3, 4}}),
		Notifier: events,
		Logger:   log,
		Secret:   []byte("test-secret"),
	})
}

// newFixture seats n players in a started game. Player i belongs to user
// "u<i+1>" and has turn order i.
func newFixture(t *testing.T, n int) *fixture {
	t.Helper()
	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		store:  database.NewMemoryStore(),
		cards:  &scripted{values: []int{0}},
		events: &recorder{},
	}
	b, err := board.Default(f.cards)
	require.NoError(t, err)
	f.board = b
	f.svc = newService(t, b, f.store, f.events)

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("u%d", i+1)
		require.NoError(t, f.store.CreateUser(f.ctx, &models.User{Id: id, Email: id + "@example.com", Username: id, Elo: models.StartingElo}))
		f.users = append(f.users, id)
	}
	st, err := f.svc.CreateGame(f.ctx, "u1", models.GameCreateDto{Name: "mesa"})
	require.NoError(t, err)
	f.game = st.Game.Id
	for _, u := range f.users[1:] {
		_, err := f.svc.JoinGame(f.ctx, f.game, u, "hat")
		require.NoError(t, err)
	}
	st, err = f.svc.StartGame(f.ctx, f.game, "u1")
	require.NoError(t, err)
	for _, p := range st.Players {
		f.players = append(f.players, p.Id)
	}
	return f
}

func (f *fixture) state() *models.GameState {
	st, err := f.store.LoadState(f.ctx, f.game)
	require.NoError(f.t, err)
	return st
}

func (f *fixture) edit(fn func(st *models.GameState)) {
	st := f.state()
	fn(st)
	require.NoError(f.t, f.store.SaveState(f.ctx, st))
}

func (f *fixture) player(i int) *models.Player {
	return f.state().Player(f.players[i])
}

func (f *fixture) move(i, d1, d2 int) (*TurnResult, error) {
	roll, err := engine.NewRoll(d1, d2)
	require.NoError(f.t, err)
	return f.svc.MovePlayer(f.ctx, f.game, f.players[i], f.users[i], &roll)
}

func (f *fixture) own(i int, propertyIDs ...int) {
	f.edit(func(st *models.GameState) {
		for _, id := range propertyIDs {
			st.Ownerships = append(st.Ownerships, &models.Ownership{Game_id: f.game, Player_id: f.players[i], Property_id: id})
		}
	})
}

// emptyDecks is the real board with no cards in it.
type emptyDecks struct {
	*board.Board
}

func (emptyDecks) DrawRandom(models.Deck) (models.Card, bool) {
	return models.Card{}, false
}
