package engine

import (
	"sort"

	"github.com/Raul1156/monopoly/app/models"
)

// NextActive returns the first non-bankrupt player whose turn order comes
// after current, wrapping around to the lowest. It returns nil when every
// player is bankrupt.
func NextActive(players []*models.Player, current int) *models.Player {
	active := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if !p.Bankrupt {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Turn_order < active[j].Turn_order
	})
	for _, p := range active {
		if p.Turn_order > current {
			return p
		}
	}
	return active[0]
}

// Winner returns the last player standing, or nil while more than one
// player is still solvent.
func Winner(players []*models.Player) *models.Player {
	var last *models.Player
	for _, p := range players {
		if p.Bankrupt {
			continue
		}
		if last != nil {
			return nil
		}
		last = p
	}
	return last
}
