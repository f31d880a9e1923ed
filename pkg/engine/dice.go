package engine

import (
	"fmt"
	"math/rand"
	"sync"
)

// Source is the randomness provider used for dice and card draws.
type Source interface {
	// NextInt returns a value in [min, max], both inclusive.
	NextInt(min, max int) int
}

type randSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandSource returns a Source backed by math/rand. It is safe for
// concurrent use.
func NewRandSource(seed int64) Source {
	return &randSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *randSource) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rnd.Intn(max-min+1)
}

type Roll struct {
	Die1     int  `json:"dice1"`
	Die2     int  `json:"dice2"`
	Total    int  `json:"total"`
	IsDouble bool `json:"is_double"`
}

// NewRoll builds a roll from dice values supplied by a client.
func NewRoll(die1, die2 int) (Roll, error) {
	if die1 < 1 || die1 > dieFaces || die2 < 1 || die2 > dieFaces {
		return Roll{}, fmt.Errorf("%w: dice must be between 1 and %d, got %d and %d", ErrInvalidMove, dieFaces, die1, die2)
	}
	return Roll{Die1: die1, Die2: die2, Total: die1 + die2, IsDouble: die1 == die2}, nil
}

type Roller struct {
	src Source
}

func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

func (r *Roller) Roll() Roll {
	d1 := r.src.NextInt(1, dieFaces)
	d2 := r.src.NextInt(1, dieFaces)
	return Roll{Die1: d1, Die2: d2, Total: d1 + d2, IsDouble: d1 == d2}
}
