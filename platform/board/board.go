package board

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
)

//go:embed board.json
var defaultLayout []byte

type layout struct {
	Spaces     []models.Space    `json:"spaces"`
	Properties []models.Property `json:"properties"`
	Cards      []models.Card     `json:"cards"`
}

// Board is the static layout of the track plus the two card decks. It is
// read-only after loading and can be shared between games.
type Board struct {
	spaces     [engine.TrackLength]models.Space
	properties map[int]models.Property
	ordered    []models.Property
	decks      map[models.Deck][]models.Card
	rnd        engine.Source
}

// Default loads the layout compiled into the binary.
func Default(rnd engine.Source) (*Board, error) {
	return Parse(defaultLayout, rnd)
}

// LoadFile reads a layout from disk, for boards other than the built-in one.
func LoadFile(path string, rnd engine.Source) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board %s: %w", path, err)
	}
	return Parse(data, rnd)
}

func Parse(data []byte, rnd engine.Source) (*Board, error) {
	var l layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	if len(l.Spaces) != engine.TrackLength {
		return nil, fmt.Errorf("board has %d spaces, want %d", len(l.Spaces), engine.TrackLength)
	}

	b := &Board{
		properties: make(map[int]models.Property, len(l.Properties)),
		ordered:    l.Properties,
		decks:      make(map[models.Deck][]models.Card),
		rnd:        rnd,
	}
	for _, p := range l.Properties {
		b.properties[p.Id] = p
	}

	seen := make(map[int]bool, engine.TrackLength)
	for _, s := range l.Spaces {
		if s.Position < 0 || s.Position >= engine.TrackLength || seen[s.Position] {
			return nil, fmt.Errorf("space %q has bad or duplicate position %d", s.Name, s.Position)
		}
		if !s.Kind.Valid() {
			return nil, fmt.Errorf("space %d has unknown kind %q", s.Position, s.Kind)
		}
		if s.Kind == models.SpaceProperty {
			if _, ok := b.properties[s.PropertyId]; !ok {
				return nil, fmt.Errorf("space %d points at missing property %d", s.Position, s.PropertyId)
			}
		}
		seen[s.Position] = true
		b.spaces[s.Position] = s
	}

	for _, c := range l.Cards {
		if !c.Deck.Valid() {
			return nil, fmt.Errorf("card %d has unknown deck %q", c.Id, c.Deck)
		}
		b.decks[c.Deck] = append(b.decks[c.Deck], c)
	}
	return b, nil
}

func (b *Board) Space(pos int) (models.Space, error) {
	if pos < 0 || pos >= engine.TrackLength {
		return models.Space{}, fmt.Errorf("%w: position %d", engine.ErrInvalidMove, pos)
	}
	return b.spaces[pos], nil
}

func (b *Board) Spaces() []models.Space {
	return b.spaces[:]
}

func (b *Board) Property(id int) (models.Property, error) {
	p, ok := b.properties[id]
	if !ok {
		return models.Property{}, fmt.Errorf("%w: %d", engine.ErrPropertyNotFound, id)
	}
	return p, nil
}

func (b *Board) Properties() []models.Property {
	return b.ordered
}

// GetByPos returns the property sitting on a board position.
func (b *Board) GetByPos(pos int) (models.Property, error) {
	space, err := b.Space(pos)
	if err != nil {
		return models.Property{}, err
	}
	if space.Kind != models.SpaceProperty {
		return models.Property{}, fmt.Errorf("%w: nothing for sale at %d", engine.ErrPropertyNotFound, pos)
	}
	return b.Property(space.PropertyId)
}

// DrawRandom picks a card uniformly from the deck. Decks never run out;
// every draw sees the full deck.
func (b *Board) DrawRandom(deck models.Deck) (models.Card, bool) {
	cards := b.decks[deck]
	if len(cards) == 0 {
		return models.Card{}, false
	}
	return cards[b.rnd.NextInt(0, len(cards)-1)], true
}
