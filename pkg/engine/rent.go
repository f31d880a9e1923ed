package engine

import "github.com/Raul1156/monopoly/app/models"

type RentQuery struct {
	PropertyID     int
	Houses         int
	HasHotel       bool
	StationsOwned  int
	UtilitiesOwned int
	RollTotal      int
}

// Rent applies the flat rent table. Tiers are checked in order: hotel,
// houses, stations, utilities, bare street. Color groups play no part.
func Rent(q RentQuery) int {
	var rent int
	switch {
	case q.HasHotel:
		rent = 200 * (q.PropertyID/10 + 1)
	case q.Houses > 0:
		rent = 50 * q.Houses * (q.PropertyID/10 + 1)
	case q.StationsOwned > 0:
		rent = 25 << (q.StationsOwned - 1)
	case q.UtilitiesOwned > 0:
		mult := 10
		if q.UtilitiesOwned == 1 {
			mult = 4
		}
		rent = q.RollTotal * mult
	default:
		rent = 10 * (q.PropertyID/5 + 1)
	}
	if rent < 0 {
		return 0
	}
	return rent
}

// RentFor prices a landing on an owned property. holdings are all of the
// owner's ownerships in the game; stations and utilities only count when
// the landed property is of that kind. Mortgaged properties charge nothing.
func RentFor(board Board, owned *models.Ownership, holdings []*models.Ownership, rollTotal int) (int, error) {
	if owned.Mortgaged {
		return 0, nil
	}
	prop, err := board.Property(owned.Property_id)
	if err != nil {
		return 0, err
	}
	q := RentQuery{
		PropertyID: prop.Id,
		Houses:     owned.Houses,
		HasHotel:   owned.Has_hotel,
		RollTotal:  rollTotal,
	}
	if prop.Kind == models.PropertyStation || prop.Kind == models.PropertyUtility {
		n, err := countKind(board, holdings, prop.Kind)
		if err != nil {
			return 0, err
		}
		if prop.Kind == models.PropertyStation {
			q.StationsOwned = n
		} else {
			q.UtilitiesOwned = n
		}
	}
	return Rent(q), nil
}

func countKind(board Board, holdings []*models.Ownership, kind models.PropertyKind) (int, error) {
	n := 0
	for _, o := range holdings {
		p, err := board.Property(o.Property_id)
		if err != nil {
			return 0, err
		}
		if p.Kind == kind {
			n++
		}
	}
	return n, nil
}
