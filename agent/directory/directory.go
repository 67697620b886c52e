package directory

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrEmptyDirectory = errors.New("directory has no restaurants")
	ErrDuplicateName  = errors.New("duplicate restaurant name")
)

//go:embed seed.json
var seedRaw []byte

// Directory is the read-mostly restaurant collection. It is immutable after
// construction, so concurrent reads need no synchronization.
type Directory struct {
	restaurants []Restaurant
}

// New builds a directory from the given records, preserving their order.
// Names must resolve case-insensitively to at most one record.
func New(restaurants []Restaurant) (*Directory, error) {
	if len(restaurants) == 0 {
		return nil, ErrEmptyDirectory
	}

	seen := make(map[string]struct{}, len(restaurants))
	for _, r := range restaurants {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("restaurant id=%d has an empty name", r.ID)
		}
		if r.SeatingCapacity <= 0 {
			return nil, fmt.Errorf("restaurant %q has non-positive seating capacity %d", r.Name, r.SeatingCapacity)
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		seen[key] = struct{}{}
	}

	return &Directory{restaurants: append([]Restaurant(nil), restaurants...)}, nil
}

// Load builds the directory from the embedded seed dataset.
func Load() (*Directory, error) {
	return fromJSON(seedRaw)
}

// LoadFile builds the directory from an external JSON file, overriding the
// embedded seed.
func LoadFile(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read restaurant data: %w", err)
	}
	return fromJSON(raw)
}

func fromJSON(raw []byte) (*Directory, error) {
	var restaurants []Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurant data: %w", err)
	}
	return New(restaurants)
}

// All returns every restaurant in insertion order.
func (d *Directory) All() []Restaurant {
	return append([]Restaurant(nil), d.restaurants...)
}

// Len returns the number of restaurants in the directory.
func (d *Directory) Len() int {
	return len(d.restaurants)
}

// Search returns restaurants matching the criteria, in insertion order.
// An empty result is a normal outcome, not an error.
func (d *Directory) Search(c Criteria) []Restaurant {
	matched := make([]Restaurant, 0, len(d.restaurants))
	for _, r := range d.restaurants {
		if matches(r, c) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matches(r Restaurant, c Criteria) bool {
	if cuisine := strings.ToLower(strings.TrimSpace(c.Cuisine)); cuisine != "" {
		if !strings.Contains(strings.ToLower(r.Cuisine), cuisine) {
			return false
		}
	}
	if location := strings.ToLower(strings.TrimSpace(c.Location)); location != "" {
		inLocation := strings.Contains(strings.ToLower(r.Location), location)
		inAddress := strings.Contains(strings.ToLower(r.Address), location)
		if !inLocation && !inAddress {
			return false
		}
	}
	if c.PartySize > 0 && r.SeatingCapacity < c.PartySize {
		return false
	}
	if text := strings.ToLower(strings.TrimSpace(c.Text)); text != "" {
		if !matchesText(r, text) {
			return false
		}
	}
	return true
}

func matchesText(r Restaurant, text string) bool {
	if strings.Contains(strings.ToLower(r.Name), text) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), text) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), text) {
			return true
		}
	}
	return false
}

// FindByName resolves a restaurant by name, case-insensitively. An exact
// match wins; otherwise the substring match whose name length is closest to
// the query is returned. Absence is a normal outcome.
func (d *Directory) FindByName(name string) (Restaurant, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return Restaurant{}, false
	}

	for _, r := range d.restaurants {
		if strings.ToLower(r.Name) == query {
			return r, true
		}
	}

	var best Restaurant
	bestDiff := -1
	for _, r := range d.restaurants {
		if !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		diff := len(r.Name) - len(query)
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = r
			bestDiff = diff
		}
	}
	if bestDiff < 0 {
		return Restaurant{}, false
	}
	return best, true
}
