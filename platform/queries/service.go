package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/platform/database"
	"github.com/sirupsen/logrus"
)

// Layout is the board plus its card decks.
type Layout interface {
	engine.Board
	engine.CardSource
}

type Options struct {
	Store    database.Store
	Locker   Locker
	Board    Layout
	Roller   *engine.Roller
	Notifier Notifier
	Logger   logrus.FieldLogger
	Secret   []byte
}

// Service runs game operations. Every operation on a game holds that game's
// lock, works on a fresh copy of its state and saves the copy in one go, so
// an operation that fails never leaves half its changes behind.
type Service struct {
	store  database.Store
	locker Locker
	board  Layout
	roller *engine.Roller
	notify Notifier
	log    logrus.FieldLogger
	secret []byte
	now    func() time.Time
}

func NewService(opts Options) *Service {
	s := &Service{
		store:  opts.Store,
		locker: opts.Locker,
		board:  opts.Board,
		roller: opts.Roller,
		notify: opts.Notifier,
		log:    opts.Logger,
		secret: opts.Secret,
		now:    time.Now,
	}
	if s.locker == nil {
		s.locker = NewLocalLocker()
	}
	if s.notify == nil {
		s.notify = Notifiers{}
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

type event struct {
	name    string
	payload interface{}
}

// session is one locked unit of work on a game.
type session struct {
	state    *models.GameState
	ledger   *engine.Ledger
	events   []event
	finished bool
}

func (ss *session) emit(name string, payload interface{}) {
	ss.events = append(ss.events, event{name: name, payload: payload})
}

func (s *Service) withGame(ctx context.Context, gameID string, fn func(ss *session) error) (*models.GameState, error) {
	unlock, err := s.locker.Lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := s.store.LoadState(ctx, gameID)
	if err != nil {
		return nil, err
	}
	ss := &session{state: state, ledger: engine.NewLedger(state.Players)}
	if err := fn(ss); err != nil {
		return nil, err
	}
	if err := s.store.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("save game %s: %w", gameID, err)
	}
	if ss.finished {
		s.recordResults(ctx, state)
	}
	for _, ev := range ss.events {
		s.notify.Broadcast(gameID, ev.name, ev.payload)
	}
	return state, nil
}

// actor resolves the player acting in a game. An empty userID skips the
// ownership check.
func actor(ss *session, playerID, userID string) (*models.Player, error) {
	p := ss.state.Player(playerID)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", engine.ErrPlayerNotFound, playerID)
	}
	if userID != "" && p.User_id != userID {
		return nil, ErrNotYourPlayer
	}
	return p, nil
}

// turnOf checks that the game is running and that it is p's turn.
func turnOf(ss *session, p *models.Player) error {
	if ss.state.Game.Status != models.StatusInProgress {
		return ErrGameNotStarted
	}
	if p.Bankrupt {
		return fmt.Errorf("%w: %s", engine.ErrPlayerBankrupt, p.Id)
	}
	if ss.state.Game.Current_turn != p.Turn_order {
		return ErrNotYourTurn
	}
	return nil
}

// resetTurn clears the per-turn flags of a player.
func resetTurn(p *models.Player) {
	p.Has_rolled = false
	p.Has_drawn = false
}

// advanceTurn hands the turn to the next solvent player.
func advanceTurn(ss *session, from *models.Player) {
	resetTurn(from)
	advanceFromOrder(ss, from.Turn_order)
}

// settle reports fresh bankruptcies and ends the game when one player is
// left. It returns true when the game is over.
func settle(ss *session, bankrupted []string) bool {
	for _, id := range bankrupted {
		ss.emit(EventPlayerBankrupt, id)
	}
	if ss.state.Game.Status != models.StatusInProgress {
		return false
	}
	if winner := engine.Winner(ss.state.Players); winner != nil {
		ss.state.Game.Status = models.StatusFinished
		ss.finished = true
		ss.emit(EventGameOver, winner.Id)
		return true
	}
	return false
}
