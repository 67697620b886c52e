package tool

import (
	"fmt"
	"strings"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
)

// RestaurantSummary is one row of a list_restaurants result.
type RestaurantSummary struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Cuisine         string  `json:"cuisine"`
	Location        string  `json:"location"`
	Address         string  `json:"address"`
	SeatingCapacity int     `json:"seating_capacity"`
	Rating          float64 `json:"rating"`
}

type ListRestaurantsOutput struct {
	Count       int                 `json:"count"`
	Restaurants []RestaurantSummary `json:"restaurants"`
}

// RestaurantDetails is the full record returned by get_restaurant_details.
// Opening-hours keys are reshaped with capitalized day names for display.
type RestaurantDetails struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Cuisine         string            `json:"cuisine"`
	Location        string            `json:"location"`
	Address         string            `json:"address"`
	SeatingCapacity int               `json:"seating_capacity"`
	OpeningHours    map[string]string `json:"opening_hours"`
	Rating          float64           `json:"rating"`
	Description     string            `json:"description"`
}

// RestaurantDetailsOutput uses the lookup-style envelope: a found boolean
// plus a message on absence.
type RestaurantDetailsOutput struct {
	Found      bool               `json:"found"`
	Message    string             `json:"message,omitempty"`
	Restaurant *RestaurantDetails `json:"restaurant,omitempty"`
}

func listRestaurants(mgr DataManager, args map[string]any) ListRestaurantsOutput {
	criteria := directory.Criteria{
		Cuisine:   stringArg(args, "cuisine"),
		Location:  stringArg(args, "location"),
		PartySize: optionalIntArg(args, "party_size"),
		Text:      stringArg(args, "text"),
		Date:      stringArg(args, "date"),
		Time:      stringArg(args, "time"),
	}

	found := mgr.Restaurants(criteria)
	summaries := make([]RestaurantSummary, 0, len(found))
	for _, r := range found {
		summaries = append(summaries, RestaurantSummary{
			ID:              r.ID,
			Name:            r.Name,
			Cuisine:         r.Cuisine,
			Location:        r.Location,
			Address:         r.Address,
			SeatingCapacity: r.SeatingCapacity,
			Rating:          r.Rating,
		})
	}

	return ListRestaurantsOutput{
		Count:       len(summaries),
		Restaurants: summaries,
	}
}

func restaurantDetails(mgr DataManager, args map[string]any) RestaurantDetailsOutput {
	name := stringArg(args, "restaurant_name")

	r, ok := mgr.FindRestaurantByName(name)
	if !ok {
		return RestaurantDetailsOutput{
			Found:   false,
			Message: fmt.Sprintf("Restaurant '%s' not found.", name),
		}
	}

	return RestaurantDetailsOutput{
		Found: true,
		Restaurant: &RestaurantDetails{
			ID:              r.ID,
			Name:            r.Name,
			Cuisine:         r.Cuisine,
			Location:        r.Location,
			Address:         r.Address,
			SeatingCapacity: r.SeatingCapacity,
			OpeningHours:    displayHours(r.OpeningHours),
			Rating:          r.Rating,
			Description:     r.Description,
		},
	}
}

func displayHours(hours map[string]string) map[string]string {
	out := make(map[string]string, len(hours))
	for day, h := range hours {
		out[capitalize(day)] = h
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
