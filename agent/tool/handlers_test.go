package tool

import (
	"testing"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
)

func TestListRestaurantsNoArgs(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	out := listRestaurants(mgr, map[string]any{})

	if out.Count != 2 || len(out.Restaurants) != 2 {
		t.Fatalf("Count = %d, len = %d, want 2/2", out.Count, len(out.Restaurants))
	}
	if out.Restaurants[0].Name != "Pasta Paradise" {
		t.Fatalf("first restaurant = %q", out.Restaurants[0].Name)
	}
	if got := mgr.lastCall(t).criteria; got != (directory.Criteria{}) {
		t.Fatalf("criteria = %+v, want zero value", got)
	}
}

func TestListRestaurantsForwardsCriteria(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	listRestaurants(mgr, map[string]any{
		"cuisine":    "Italian",
		"location":   "Downtown",
		"party_size": float64(6),
		"text":       "pasta",
		"date":       "2023-06-15",
		"time":       "19:00",
	})

	got := mgr.lastCall(t).criteria
	want := directory.Criteria{
		Cuisine: "Italian", Location: "Downtown", PartySize: 6,
		Text: "pasta", Date: "2023-06-15", Time: "19:00",
	}
	if got != want {
		t.Fatalf("criteria = %+v, want %+v", got, want)
	}
}

func TestListRestaurantsIgnoresBogusPartySize(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	listRestaurants(mgr, map[string]any{"party_size": "a few"})

	if got := mgr.lastCall(t).criteria.PartySize; got != 0 {
		t.Fatalf("PartySize = %d, want 0 for unparseable value", got)
	}
}

func TestRestaurantDetailsFound(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	out := restaurantDetails(mgr, map[string]any{"restaurant_name": "Pasta Paradise"})

	if !out.Found {
		t.Fatalf("Found = false, message = %q", out.Message)
	}
	if out.Restaurant == nil {
		t.Fatal("Restaurant is nil")
	}
	if out.Restaurant.SeatingCapacity != 60 {
		t.Fatalf("SeatingCapacity = %d, want 60", out.Restaurant.SeatingCapacity)
	}
	if got := out.Restaurant.OpeningHours["Monday"]; got != "11:30-22:00" {
		t.Fatalf("OpeningHours[Monday] = %q, want display-cased day keys", got)
	}
	if _, ok := out.Restaurant.OpeningHours["monday"]; ok {
		t.Fatal("lowercase day key leaked into details output")
	}
}

func TestRestaurantDetailsNotFound(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	out := restaurantDetails(mgr, map[string]any{"restaurant_name": "Burger Barn"})

	if out.Found {
		t.Fatal("Found = true for unknown restaurant")
	}
	if out.Message != "Restaurant 'Burger Barn' not found." {
		t.Fatalf("Message = %q", out.Message)
	}
	if out.Restaurant != nil {
		t.Fatal("Restaurant should be nil when not found")
	}
}

func TestCheckAvailabilityValidation(t *testing.T) {
	t.Parallel()

	valid := map[string]any{
		"restaurant_name": "Pasta Paradise",
		"date":            "2023-06-15",
		"time":            "19:30",
		"party_size":      float64(4),
	}

	cases := []struct {
		name     string
		override map[string]any
		want     string
	}{
		{"non-numeric party size", map[string]any{"party_size": "abc"}, msgPartySizeNotNumeric},
		{"missing party size", map[string]any{"party_size": nil}, msgPartySizeNotNumeric},
		{"zero party size", map[string]any{"party_size": float64(0)}, msgPartySizeNotPos},
		{"negative party size", map[string]any{"party_size": float64(-3)}, msgPartySizeNotPos},
		{"bad date", map[string]any{"date": "June 15th"}, msgBadDateFormat},
		{"empty date", map[string]any{"date": ""}, msgBadDateFormat},
		{"bad time", map[string]any{"time": "7pm"}, msgBadTimeFormat},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mgr := testFakeManager()
			args := map[string]any{}
			for k, v := range valid {
				args[k] = v
			}
			for k, v := range tc.override {
				args[k] = v
			}

			out := checkAvailability(mgr, args)
			verr, ok := out.(ValidationError)
			if !ok {
				t.Fatalf("result = %T, want ValidationError", out)
			}
			if !verr.Error || verr.Message != tc.want {
				t.Fatalf("validation = %+v, want message %q", verr, tc.want)
			}
			if len(mgr.calls) != 0 {
				t.Fatal("manager consulted despite failed validation")
			}
		})
	}
}

func TestCheckAvailabilityDelegates(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	out := checkAvailability(mgr, map[string]any{
		"restaurant_name": "Pasta Paradise",
		"date":            "2023-06-15",
		"time":            "19:30",
		"party_size":      "4",
	})

	if _, ok := out.(ValidationError); ok {
		t.Fatalf("unexpected validation error: %+v", out)
	}
	call := mgr.lastCall(t)
	if call.method != "CheckAvailability" {
		t.Fatalf("manager method = %q", call.method)
	}
	if call.name != "Pasta Paradise" || call.date != "2023-06-15" || call.timeOfDay != "19:30" || call.partySize != 4 {
		t.Fatalf("forwarded args = %+v", call)
	}
}

func TestMakeReservationValidationOrder(t *testing.T) {
	t.Parallel()

	// Several fields are invalid at once; the surfaced message follows the
	// fixed precedence party_size, user_name, user_phone, date, time.
	cases := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			"party size outranks name",
			map[string]any{"party_size": "soon", "user_name": "", "date": "bad"},
			msgPartySizeNotNumeric,
		},
		{
			"name outranks phone and date",
			map[string]any{"party_size": float64(2), "user_name": "  ", "user_phone": "", "date": "bad"},
			msgMissingUserName,
		},
		{
			"phone outranks date",
			map[string]any{"party_size": float64(2), "user_name": "Alex", "user_phone": "", "date": "bad"},
			msgMissingUserPhone,
		},
		{
			"date outranks time",
			map[string]any{
				"party_size": float64(2), "user_name": "Alex", "user_phone": "555-0100",
				"date": "June 15th", "time": "7pm",
			},
			msgBadDateFormat,
		},
		{
			"time checked last",
			map[string]any{
				"party_size": float64(2), "user_name": "Alex", "user_phone": "555-0100",
				"date": "2023-06-15", "time": "7pm",
			},
			msgBadTimeFormat,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mgr := testFakeManager()
			out := makeReservation(mgr, tc.args)
			verr, ok := out.(ValidationError)
			if !ok {
				t.Fatalf("result = %T, want ValidationError", out)
			}
			if verr.Message != tc.want {
				t.Fatalf("message = %q, want %q", verr.Message, tc.want)
			}
			if len(mgr.calls) != 0 {
				t.Fatal("manager consulted despite failed validation")
			}
		})
	}
}

func TestMakeReservationDelegates(t *testing.T) {
	t.Parallel()

	mgr := testFakeManager()
	out := makeReservation(mgr, map[string]any{
		"restaurant_name": "Sushi Sensation",
		"date":            "2023-06-15",
		"time":            "18:00",
		"party_size":      float64(2),
		"user_name":       "Alex Chen",
		"user_phone":      "555-0100",
	})

	if _, ok := out.(ValidationError); ok {
		t.Fatalf("unexpected validation error: %+v", out)
	}
	call := mgr.lastCall(t)
	if call.method != "MakeReservation" {
		t.Fatalf("manager method = %q", call.method)
	}
	if call.userName != "Alex Chen" || call.userPhone != "555-0100" || call.partySize != 2 {
		t.Fatalf("forwarded args = %+v", call)
	}
}
