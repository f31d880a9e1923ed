package engine

import "fmt"

func stationIndex(pos int) int {
	for i, s := range StationPositions {
		if s == pos {
			return i
		}
	}
	return -1
}

// Teleport moves a token between two stations without dice. The player must
// own at least two stations and every station from one end to the other in
// track order. No money changes hands.
func Teleport(from, to int, ownedStations []int) (int, error) {
	fromIdx, toIdx := stationIndex(from), stationIndex(to)
	if fromIdx < 0 {
		return 0, fmt.Errorf("%w: position %d is not a station", ErrInvalidMove, from)
	}
	if toIdx < 0 {
		return 0, fmt.Errorf("%w: position %d is not a station", ErrInvalidMove, to)
	}
	if from == to {
		return 0, fmt.Errorf("%w: already on station %d", ErrInvalidMove, from)
	}

	owned := make(map[int]bool, len(ownedStations))
	for _, pos := range ownedStations {
		if stationIndex(pos) >= 0 {
			owned[pos] = true
		}
	}
	if len(owned) < 2 {
		return 0, fmt.Errorf("%w: at least two stations are needed", ErrInsufficientOwnership)
	}

	lo, hi := fromIdx, toIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, pos := range StationPositions[lo : hi+1] {
		if !owned[pos] {
			return 0, fmt.Errorf("%w: station %d is not owned", ErrInsufficientOwnership, pos)
		}
	}
	return to, nil
}
