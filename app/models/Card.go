package models

import "fmt"

type Deck string

const (
	DeckCommunityChest Deck = "community_chest"
	DeckChance         Deck = "chance"
)

// ParseDeck accepts the deck names used by clients, including the
// "comunidad"/"suerte" spellings of the printed cards.
func ParseDeck(s string) (Deck, error) {
	switch s {
	case "community_chest", "community", "chest", "COMUNIDAD", "comunidad":
		return DeckCommunityChest, nil
	case "chance", "luck", "SUERTE", "suerte":
		return DeckChance, nil
	}
	return "", fmt.Errorf("unknown deck %q", s)
}

func (d Deck) Valid() bool {
	return d == DeckCommunityChest || d == DeckChance
}

// EffectKind says what a card does with its value. The value is always
// stored positive; the kind carries the direction.
type EffectKind int

const (
	EffectUnknown EffectKind = iota
	EffectGainMoney
	EffectLoseMoney
	EffectCollectFromAllOthers
	EffectPayAllOthers
)

var effectNames = map[EffectKind]string{
	EffectGainMoney:            "gain_money",
	EffectLoseMoney:            "lose_money",
	EffectCollectFromAllOthers: "collect_from_all",
	EffectPayAllOthers:         "pay_all",
}

var effectAliases = map[string]EffectKind{
	"ganar_dinero":     EffectGainMoney,
	"perder_dinero":    EffectLoseMoney,
	"cobrar_jugadores": EffectCollectFromAllOthers,
	"pagar_jugadores":  EffectPayAllOthers,
}

func (e EffectKind) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

func (e EffectKind) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EffectKind) UnmarshalText(text []byte) error {
	s := string(text)
	for kind, name := range effectNames {
		if name == s {
			*e = kind
			return nil
		}
	}
	if kind, ok := effectAliases[s]; ok {
		*e = kind
		return nil
	}
	*e = EffectUnknown
	return nil
}

type Card struct {
	Id          int        `json:"id"`
	Deck        Deck       `json:"deck"`
	Description string     `json:"description"`
	Effect      EffectKind `json:"effect"`
	Value       int        `json:"value"`
}
