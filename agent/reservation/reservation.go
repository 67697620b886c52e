package reservation

import "time"

// Reservation is a confirmed booking. Records are never mutated or deleted
// after creation; they live only for the process lifetime.
type Reservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	RestaurantID     int       `json:"restaurant_id"`
	RestaurantName   string    `json:"restaurant_name"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	PartySize        int       `json:"party_size"`
	UserName         string    `json:"user_name"`
	UserPhone        string    `json:"user_phone"`
	CreatedAt        time.Time `json:"created_at"`
}
