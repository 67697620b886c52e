package booking

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
	"github.com/Kaztic/foodiespot-reservation-agent/agent/reservation"
)

// Availability is the outcome of an availability check. It is always data:
// lookup failures and capacity refusals are reported through Available=false
// plus a human-readable message, never through an error.
type Availability struct {
	Available  bool   `json:"available"`
	Message    string `json:"message"`
	Restaurant string `json:"restaurant,omitempty"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
	PartySize  int    `json:"party_size,omitempty"`
}

// BookingResult is the outcome of a reservation attempt. A refusal carries
// Success=false and the reason; a success carries the stored reservation's
// confirmation code and the restaurant's identifying fields.
type BookingResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	Restaurant       string `json:"restaurant"`
	Address          string `json:"address,omitempty"`
	Date             string `json:"date,omitempty"`
	Time             string `json:"time,omitempty"`
	PartySize        int    `json:"party_size,omitempty"`
	UserName         string `json:"user_name,omitempty"`
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithOracle overrides the availability oracle.
func WithOracle(oracle Oracle) ManagerOption {
	return func(m *Manager) {
		if oracle != nil {
			m.oracle = oracle
		}
	}
}

// Manager is the sole owner of the restaurant directory and the reservation
// store; every read and mutation goes through it.
type Manager struct {
	dir    *directory.Directory
	store  *reservation.Store
	oracle Oracle

	// mu serializes the availability decision and the store append inside
	// MakeReservation so two concurrent bookings cannot both observe an
	// available slot.
	mu sync.Mutex
}

func NewManager(dir *directory.Directory, store *reservation.Store, opts ...ManagerOption) (*Manager, error) {
	if dir == nil {
		return nil, errors.New("restaurant directory is required")
	}
	if store == nil {
		return nil, errors.New("reservation store is required")
	}

	m := &Manager{
		dir:    dir,
		store:  store,
		oracle: NewBiasedOracle(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// Restaurants returns directory records matching the criteria, in insertion
// order.
func (m *Manager) Restaurants(c directory.Criteria) []directory.Restaurant {
	return m.dir.Search(c)
}

// FindRestaurantByName resolves a restaurant case-insensitively. Absence is
// a normal outcome.
func (m *Manager) FindRestaurantByName(name string) (directory.Restaurant, bool) {
	return m.dir.FindByName(name)
}

// CheckAvailability reports whether the named restaurant can seat the party
// at the given slot. The decision is advisory: MakeReservation runs its own
// independent check, since nothing is held by asking.
func (m *Manager) CheckAvailability(name, date, timeOfDay string, partySize int) Availability {
	r, ok := m.dir.FindByName(name)
	if !ok {
		return Availability{
			Available: false,
			Message:   fmt.Sprintf("Restaurant '%s' not found.", name),
		}
	}
	return m.decide(r, date, timeOfDay, partySize)
}

func (m *Manager) decide(r directory.Restaurant, date, timeOfDay string, partySize int) Availability {
	if partySize > r.SeatingCapacity {
		return Availability{
			Available:  false,
			Message:    fmt.Sprintf("Party size of %d exceeds the maximum capacity of %d.", partySize, r.SeatingCapacity),
			Restaurant: r.Name,
		}
	}

	if !m.oracle.Decide(r, date, timeOfDay, partySize) {
		return Availability{
			Available:  false,
			Message:    fmt.Sprintf("Sorry, %s is fully booked at that time. Please try another time.", r.Name),
			Restaurant: r.Name,
		}
	}

	return Availability{
		Available:  true,
		Message:    fmt.Sprintf("Table for %d is available at %s on %s at %s.", partySize, r.Name, date, timeOfDay),
		Restaurant: r.Name,
		Date:       date,
		Time:       timeOfDay,
		PartySize:  partySize,
	}
}

// MakeReservation resolves the restaurant, runs an independent availability
// decision, and on success appends a reservation with a fresh confirmation
// code. Refusals are data, not errors.
func (m *Manager) MakeReservation(name, date, timeOfDay string, partySize int, userName, userPhone string) BookingResult {
	r, ok := m.dir.FindByName(name)
	if !ok {
		return BookingResult{
			Success:    false,
			Message:    fmt.Sprintf("Restaurant '%s' not found.", name),
			Restaurant: name,
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	avail := m.decide(r, date, timeOfDay, partySize)
	if !avail.Available {
		return BookingResult{
			Success:    false,
			Message:    avail.Message,
			Restaurant: r.Name,
		}
	}

	stored, err := m.store.Create(reservation.Reservation{
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
		Date:           date,
		Time:           timeOfDay,
		PartySize:      partySize,
		UserName:       userName,
		UserPhone:      userPhone,
	})
	if err != nil {
		// Tool-layer validation makes this unreachable; still surfaced as
		// data so nothing raises across the tool boundary.
		return BookingResult{
			Success:    false,
			Message:    fmt.Sprintf("Could not record the reservation: %s.", err),
			Restaurant: r.Name,
		}
	}

	log.Info().
		Str("confirmation_code", stored.ConfirmationCode).
		Str("restaurant", r.Name).
		Str("date", date).
		Str("time", timeOfDay).
		Int("party_size", partySize).
		Msg("reservation created")

	return BookingResult{
		Success:          true,
		Message:          fmt.Sprintf("Reservation confirmed at %s for %d people on %s at %s.", r.Name, partySize, date, timeOfDay),
		ConfirmationCode: stored.ConfirmationCode,
		Restaurant:       r.Name,
		Address:          r.Address,
		Date:             date,
		Time:             timeOfDay,
		PartySize:        partySize,
		UserName:         userName,
	}
}

// ReservationByCode retrieves a stored reservation by confirmation code.
func (m *Manager) ReservationByCode(code string) (reservation.Reservation, bool) {
	return m.store.ByCode(code)
}

// Reservations returns every reservation created so far, in creation order.
func (m *Manager) Reservations() []reservation.Reservation {
	return m.store.All()
}
