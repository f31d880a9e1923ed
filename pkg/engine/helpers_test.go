package engine

import (
	"fmt"

	"github.com/Raul1156/monopoly/app/models"
)

// seqSource replays a fixed sequence of values, cycling when it runs out.
type seqSource struct {
	values []int
	i      int
}

func (s *seqSource) NextInt(min, max int) int {
	v := s.values[s.i%len(s.values)]
	s.i++
	if v < min || v > max {
		panic(fmt.Sprintf("scripted value %d outside [%d, %d]", v, min, max))
	}
	return v
}

type testBoard struct {
	spaces     [TrackLength]models.Space
	properties map[int]models.Property
}

// newTestBoard lays out the track: corners, tax squares, card squares,
// stations at 5/15/25/35, utilities at 12/28 and streets everywhere else.
// Property ids equal positions.
func newTestBoard() *testBoard {
	b := &testBoard{properties: make(map[int]models.Property)}
	fixed := map[int]models.SpaceKind{
		0: models.SpaceGo, 10: models.SpaceJail, 20: models.SpaceFreeParking, 30: models.SpaceGoToJail,
		4: models.SpaceTax, 38: models.SpaceLuxury,
		2: models.SpaceCommunityChest, 17: models.SpaceCommunityChest, 33: models.SpaceCommunityChest,
		7: models.SpaceChance, 22: models.SpaceChance, 36: models.SpaceChance,
	}
	for pos := 0; pos < TrackLength; pos++ {
		if kind, ok := fixed[pos]; ok {
			b.spaces[pos] = models.Space{Position: pos, Name: string(kind), Kind: kind}
			continue
		}
		kind := models.PropertyStreet
		switch pos {
		case 5, 15, 25, 35:
			kind = models.PropertyStation
		case 12, 28:
			kind = models.PropertyUtility
		}
		b.spaces[pos] = models.Space{Position: pos, Name: fmt.Sprintf("lot %d", pos), Kind: models.SpaceProperty, PropertyId: pos}
		b.properties[pos] = models.Property{Id: pos, Name: fmt.Sprintf("lot %d", pos), Kind: kind, Price: 100 + pos, Position: pos}
	}
	return b
}

func (b *testBoard) Space(pos int) (models.Space, error) {
	if !validPosition(pos) {
		return models.Space{}, fmt.Errorf("%w: %d", ErrInvalidMove, pos)
	}
	return b.spaces[pos], nil
}

func (b *testBoard) Property(id int) (models.Property, error) {
	p, ok := b.properties[id]
	if !ok {
		return models.Property{}, fmt.Errorf("%w: %d", ErrPropertyNotFound, id)
	}
	return p, nil
}

type fixedDeck struct {
	cards map[models.Deck][]models.Card
}

func (d fixedDeck) DrawRandom(deck models.Deck) (models.Card, bool) {
	cards := d.cards[deck]
	if len(cards) == 0 {
		return models.Card{}, false
	}
	return cards[0], true
}

func newPlayers(money ...int) []*models.Player {
	players := make([]*models.Player, 0, len(money))
	for i, m := range money {
		players = append(players, &models.Player{
			Id:         fmt.Sprintf("p%d", i+1),
			Money:      m,
			Turn_order: i,
		})
	}
	return players
}
