package models

import (
	"fmt"
)

type SpaceKind string

const (
	SpaceGo             SpaceKind = "go"
	SpaceProperty       SpaceKind = "property"
	SpaceTax            SpaceKind = "tax"
	SpaceChance         SpaceKind = "chance"
	SpaceCommunityChest SpaceKind = "community_chest"
	SpaceJail           SpaceKind = "jail"
	SpaceGoToJail       SpaceKind = "go_to_jail"
	SpaceFreeParking    SpaceKind = "free_parking"
	SpaceLuxury         SpaceKind = "luxury"
)

func (k SpaceKind) Valid() bool {
	switch k {
	case SpaceGo, SpaceProperty, SpaceTax, SpaceChance, SpaceCommunityChest,
		SpaceJail, SpaceGoToJail, SpaceFreeParking, SpaceLuxury:
		return true
	}
	return false
}

// Space is one of the forty squares of the track. PropertyId is 0 when the
// space has no property behind it.
type Space struct {
	Position     int       `json:"position"`
	Name         string    `json:"name"`
	Kind         SpaceKind `json:"kind"`
	PropertyId   int       `json:"property_id,omitempty"`
	ActionAmount int       `json:"action_amount,omitempty"`
}

type PropertyKind string

const (
	PropertyStreet  PropertyKind = "street"
	PropertyStation PropertyKind = "station"
	PropertyUtility PropertyKind = "utility"
	PropertySpecial PropertyKind = "special"
)

type Property struct {
	Id        int          `json:"id"`
	Name      string       `json:"name"`
	Kind      PropertyKind `json:"kind"`
	Price     int          `json:"price"`
	Rent      int          `json:"rent"`
	HouseCost int          `json:"housecost,omitempty"`
	Mortgage  int          `json:"mortgage,omitempty"`
	Group     string       `json:"group"` // color, not used by rent
	Position  int          `json:"position"`
}

// Purchasable reports whether the property can be owned by a player.
func (p Property) Purchasable() bool {
	return p.Kind != PropertySpecial && p.Price > 0
}

func (p Property) String() string {
	return fmt.Sprintf("%s (#%d)", p.Name, p.Id)
}
