package reservation

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var ErrIncompleteReservation = errors.New("reservation is missing required fields")

// codeAttemptsPerWidth bounds random draws before the code space is widened
// by another digit.
const codeAttemptsPerWidth = 64

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand overrides the confirmation-code randomness source.
func WithRand(rng *rand.Rand) StoreOption {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Store holds reservations created over the process lifetime. All access is
// serialized internally; Create assigns a unique RS-<digits> confirmation
// code under the same lock that appends the record.
type Store struct {
	mu     sync.Mutex
	byCode map[string]Reservation
	order  []string
	rng    *rand.Rand
	now    func() time.Time
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		byCode: make(map[string]Reservation),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create assigns a confirmation code and creation timestamp, appends the
// record, and returns the stored reservation.
func (s *Store) Create(r Reservation) (Reservation, error) {
	if r.RestaurantName == "" || r.Date == "" || r.Time == "" ||
		r.PartySize <= 0 || r.UserName == "" || r.UserPhone == "" {
		return Reservation{}, ErrIncompleteReservation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r.ConfirmationCode = s.nextCodeLocked()
	r.CreatedAt = s.now().UTC()
	s.byCode[r.ConfirmationCode] = r
	s.order = append(s.order, r.ConfirmationCode)
	return r, nil
}

func (s *Store) nextCodeLocked() string {
	// 10000..99999 to start, matching the RS-<digits> format; widen by a
	// digit if the space is saturated.
	low, span := 10000, 90000
	for {
		for attempt := 0; attempt < codeAttemptsPerWidth; attempt++ {
			code := fmt.Sprintf("RS-%d", low+s.rng.Intn(span))
			if _, taken := s.byCode[code]; !taken {
				return code
			}
		}
		low *= 10
		span *= 10
	}
}

// ByCode looks up a reservation by confirmation code.
func (s *Store) ByCode(code string) (Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byCode[code]
	return r, ok
}

// All returns reservations in creation order.
func (s *Store) All() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reservation, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.byCode[code])
	}
	return out
}

// Count returns the number of reservations created so far.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
