package queries

import (
	"context"
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/sirupsen/logrus"
)

type RentResult struct {
	From string `json:"from_player_id"`
	To   string `json:"to_player_id"`
	Due  int    `json:"due"`
	Paid int    `json:"paid"`
}

type TurnResult struct {
	Roll        engine.Roll        `json:"dice_roll"`
	Move        *engine.MoveResult `json:"move,omitempty"`
	StillInJail bool               `json:"still_in_jail"`
	Card        *engine.CardResult `json:"card,omitempty"`
	Rent        *RentResult        `json:"rent,omitempty"`
	Tax         int                `json:"tax_paid,omitempty"`
	CanBuy      bool               `json:"can_buy"`
	Property    *models.Property   `json:"property,omitempty"`
	RollAgain   bool               `json:"roll_again"`
	GameOver    bool               `json:"game_over"`
	Player      models.PlayerDto   `json:"player"`
}

type BuyResult struct {
	Ownership models.Ownership `json:"ownership"`
	MoneyLeft int              `json:"money_left"`
}

func (s *Service) RollDice() engine.Roll {
	return s.roller.Roll()
}

func bankruptSet(players []*models.Player) map[string]bool {
	set := make(map[string]bool, len(players))
	for _, p := range players {
		if p.Bankrupt {
			set[p.Id] = true
		}
	}
	return set
}

// afterMoney runs the bookkeeping every money-moving operation shares:
// announce new bankruptcies, end the game if one player is left, and pass
// the turn on when the current player has just gone bust.
func afterMoney(ss *session, before map[string]bool) bool {
	var fresh []string
	for _, p := range ss.state.Players {
		if p.Bankrupt && !before[p.Id] {
			fresh = append(fresh, p.Id)
		}
	}
	if settle(ss, fresh) {
		return true
	}
	if ss.state.Game.Status == models.StatusInProgress {
		if cur := currentPlayer(ss.state); cur != nil && cur.Bankrupt {
			resetTurn(cur)
			advanceFromOrder(ss, cur.Turn_order)
		}
	}
	return false
}

// MovePlayer plays the dice part of a turn: jail, movement, and whatever
// the landed space does. roll may be nil to roll server side.
func (s *Service) MovePlayer(ctx context.Context, gameID, playerID, userID string, roll *engine.Roll) (*TurnResult, error) {
	res := &TurnResult{}
	st, err := s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		if err := turnOf(ss, p); err != nil {
			return err
		}
		if p.Has_rolled {
			return ErrAlreadyRolled
		}

		r := s.roller.Roll()
		if roll != nil {
			r = *roll
		}
		res.Roll = r
		p.Has_rolled = true
		before := bankruptSet(ss.state.Players)

		wasJailed := p.In_jail
		if wasJailed {
			released, err := engine.ServeJailTurn(ss.ledger, p.Id, r)
			if err != nil {
				return err
			}
			if !released {
				res.StillInJail = true
				return nil
			}
			ss.emit(EventJailReleased, p.Id)
		}

		mv, err := engine.Move(s.board, p.Position, r)
		if err != nil {
			return err
		}
		if err := engine.ApplyMove(ss.ledger, p.Id, mv); err != nil {
			return err
		}
		res.Move = &mv
		ss.emit(EventPlayerMoved, map[string]interface{}{"player_id": p.Id, "move": mv})

		if !mv.SentToJail {
			if err := s.land(ss, p, mv, res); err != nil {
				return err
			}
		}

		res.GameOver = afterMoney(ss, before)
		if !res.GameOver && !p.Bankrupt && r.IsDouble && !wasJailed && !mv.SentToJail {
			p.Has_rolled = false
			res.RollAgain = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Player = st.PlayerDto(st.Player(playerID))
	s.log.WithFields(logrus.Fields{
		"game_id":   gameID,
		"player_id": playerID,
		"roll":      res.Roll.Total,
		"position":  res.Player.Pos,
	}).Debug("player moved")
	return res, nil
}

func (s *Service) land(ss *session, p *models.Player, mv engine.MoveResult, res *TurnResult) error {
	space := mv.Space
	switch space.Kind {
	case models.SpaceTax, models.SpaceLuxury:
		paid, err := ss.ledger.Debit(p.Id, space.ActionAmount)
		if err != nil {
			return err
		}
		res.Tax = paid
		ss.emit(EventTaxPaid, map[string]interface{}{"player_id": p.Id, "amount": paid})
	case models.SpaceChance, models.SpaceCommunityChest:
		deck := models.DeckChance
		if space.Kind == models.SpaceCommunityChest {
			deck = models.DeckCommunityChest
		}
		card, err := engine.DrawAndApply(s.board, deck, ss.ledger, p.Id)
		if err != nil {
			return err
		}
		p.Has_drawn = true
		res.Card = &card
		ss.emit(EventCardDrawn, card)
	case models.SpaceProperty:
		return s.landOnProperty(ss, p, space, mv.Roll, res)
	}
	return nil
}

func (s *Service) landOnProperty(ss *session, p *models.Player, space models.Space, roll engine.Roll, res *TurnResult) error {
	prop, err := s.board.Property(space.PropertyId)
	if err != nil {
		return err
	}
	owned := ss.state.OwnershipOf(prop.Id)
	if owned == nil {
		if prop.Purchasable() {
			res.CanBuy = true
			res.Property = &prop
		}
		return nil
	}
	if owned.Player_id == p.Id {
		return nil
	}
	owner := ss.state.Player(owned.Player_id)
	if owner == nil || owner.Bankrupt {
		return nil
	}

	due, err := engine.RentFor(s.board, owned, ss.state.OwnedBy(owner.Id), roll.Total)
	if err != nil {
		return err
	}
	paid, err := ss.ledger.Transfer(p.Id, owner.Id, due)
	if err != nil {
		return err
	}
	res.Rent = &RentResult{From: p.Id, To: owner.Id, Due: due, Paid: paid}
	ss.emit(EventRentPaid, res.Rent)
	return nil
}

// UseStation teleports a player between two stations they own, along with
// every station in between. The teleport takes the place of the dice roll,
// so it is only allowed before rolling and ends the move for the turn.
func (s *Service) UseStation(ctx context.Context, gameID, playerID, userID string, from, to int) (*engine.MoveResult, error) {
	var res engine.MoveResult
	_, err := s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		if err := turnOf(ss, p); err != nil {
			return err
		}
		if p.Has_rolled {
			return ErrAlreadyRolled
		}
		if p.In_jail {
			return fmt.Errorf("%w: player is in jail", engine.ErrInvalidMove)
		}
		if p.Position != from {
			return fmt.Errorf("%w: player is on %d, not %d", engine.ErrInvalidMove, p.Position, from)
		}

		var stations []int
		for _, o := range ss.state.OwnedBy(p.Id) {
			prop, err := s.board.Property(o.Property_id)
			if err != nil {
				return err
			}
			if prop.Kind == models.PropertyStation {
				stations = append(stations, prop.Position)
			}
		}
		dest, err := engine.Teleport(from, to, stations)
		if err != nil {
			return err
		}
		space, err := s.board.Space(dest)
		if err != nil {
			return err
		}
		p.Position = dest
		p.Has_rolled = true
		res = engine.MoveResult{
			From:        from,
			NewPosition: dest,
			Space:       space,
			Message:     fmt.Sprintf("teleported to %s", space.Name),
		}
		ss.emit(EventPlayerMoved, map[string]interface{}{"player_id": p.Id, "move": res})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Service) BuyProperty(ctx context.Context, gameID, playerID, userID string, propertyID int) (*BuyResult, error) {
	var res *BuyResult
	_, err := s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		res, err = s.buy(ss, p, propertyID)
		return err
	})
	return res, err
}

// BuyCurrent buys whatever property the player is standing on.
func (s *Service) BuyCurrent(ctx context.Context, gameID, playerID, userID string) (*BuyResult, error) {
	var res *BuyResult
	_, err := s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		space, err := s.board.Space(p.Position)
		if err != nil {
			return err
		}
		if space.Kind != models.SpaceProperty {
			return ErrNotForSale
		}
		res, err = s.buy(ss, p, space.PropertyId)
		return err
	})
	return res, err
}

func (s *Service) buy(ss *session, p *models.Player, propertyID int) (*BuyResult, error) {
	if err := turnOf(ss, p); err != nil {
		return nil, err
	}
	prop, err := s.board.Property(propertyID)
	if err != nil {
		return nil, err
	}
	if !prop.Purchasable() {
		return nil, ErrNotForSale
	}
	if ss.state.OwnershipOf(prop.Id) != nil {
		return nil, ErrPropertyOwned
	}
	if p.Money < prop.Price {
		return nil, fmt.Errorf("%w: %s costs %d", engine.ErrInsufficientFunds, prop.Name, prop.Price)
	}
	if _, err := ss.ledger.Debit(p.Id, prop.Price); err != nil {
		return nil, err
	}
	o := &models.Ownership{
		Game_id:     ss.state.Game.Id,
		Player_id:   p.Id,
		Property_id: prop.Id,
		Acquired_at: s.now(),
	}
	ss.state.Ownerships = append(ss.state.Ownerships, o)
	ss.emit(EventPropertyBought, map[string]interface{}{"player_id": p.Id, "property": prop})
	return &BuyResult{Ownership: *o, MoneyLeft: p.Money}, nil
}

// PayRent moves a rent payment between two players. A payer who cannot
// cover it pays what they have and goes bankrupt.
func (s *Service) PayRent(ctx context.Context, gameID, fromID, toID, userID string, amount int) (*RentResult, error) {
	var res *RentResult
	_, err := s.withGame(ctx, gameID, func(ss *session) error {
		if ss.state.Game.Status != models.StatusInProgress {
			return ErrGameNotStarted
		}
		if fromID == toID {
			return fmt.Errorf("%w: a player cannot pay rent to themselves", engine.ErrInvalidMove)
		}
		if _, err := actor(ss, fromID, userID); err != nil {
			return err
		}
		before := bankruptSet(ss.state.Players)
		paid, err := ss.ledger.Transfer(fromID, toID, amount)
		if err != nil {
			return err
		}
		res = &RentResult{From: fromID, To: toID, Due: amount, Paid: paid}
		ss.emit(EventRentPaid, res)
		afterMoney(ss, before)
		return nil
	})
	return res, err
}

// DrawCard draws a card without applying it.
func (s *Service) DrawCard(deckName string) (models.Card, error) {
	deck, err := models.ParseDeck(deckName)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", engine.ErrInvalidDeck, err)
	}
	card, ok := s.board.DrawRandom(deck)
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %s", engine.ErrEmptyDeck, deck)
	}
	return card, nil
}

func (s *Service) DrawAndApply(ctx context.Context, gameID, playerID, userID, deckName string) (*engine.CardResult, error) {
	deck, err := models.ParseDeck(deckName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidDeck, err)
	}
	var res engine.CardResult
	_, err = s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		if err := turnOf(ss, p); err != nil {
			return err
		}
		if p.Has_drawn {
			return ErrAlreadyDrew
		}
		before := bankruptSet(ss.state.Players)
		res, err = engine.DrawAndApply(s.board, deck, ss.ledger, playerID)
		if err != nil {
			return err
		}
		p.Has_drawn = true
		ss.emit(EventCardDrawn, res)
		afterMoney(ss, before)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Service) PayOutOfJail(ctx context.Context, gameID, playerID, userID string) (models.PlayerDto, error) {
	st, err := s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		if err := turnOf(ss, p); err != nil {
			return err
		}
		if p.Has_rolled {
			return ErrAlreadyRolled
		}
		if err := engine.PayOutOfJail(ss.ledger, p.Id); err != nil {
			return err
		}
		ss.emit(EventJailReleased, p.Id)
		return nil
	})
	if err != nil {
		return models.PlayerDto{}, err
	}
	return st.PlayerDto(st.Player(playerID)), nil
}

func (s *Service) EndTurn(ctx context.Context, gameID, playerID, userID string) (*models.GameState, error) {
	return s.withGame(ctx, gameID, func(ss *session) error {
		p, err := actor(ss, playerID, userID)
		if err != nil {
			return err
		}
		if err := turnOf(ss, p); err != nil {
			return err
		}
		if !p.Has_rolled {
			return ErrMustRoll
		}
		advanceTurn(ss, p)
		return nil
	})
}
