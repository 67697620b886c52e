package booking

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
)

// Oracle decides whether a restaurant can seat a party at a given slot.
// The stock implementation is a stand-in for a real seating ledger; swapping
// in one backed by actual reservations only touches this interface.
type Oracle interface {
	Decide(r directory.Restaurant, date, timeOfDay string, partySize int) bool
}

// BiasedOracle simulates availability with a biased coin. Small parties see
// an 80% acceptance rate; the rate steps down as the party approaches
// seating capacity, and a party over capacity is never accepted.
type BiasedOracle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBiasedOracle builds an oracle around the given randomness source, or a
// time-seeded one when rng is nil.
func NewBiasedOracle(rng *rand.Rand) *BiasedOracle {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BiasedOracle{rng: rng}
}

func (o *BiasedOracle) Decide(r directory.Restaurant, date, timeOfDay string, partySize int) bool {
	if partySize <= 0 || partySize > r.SeatingCapacity {
		return false
	}

	load := float64(partySize) / float64(r.SeatingCapacity)
	var p float64
	switch {
	case load <= 0.5:
		p = 0.8
	case load <= 0.8:
		p = 0.4
	default:
		p = 0.15
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Float64() < p
}
