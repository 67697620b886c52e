package directory

// Restaurant is a single directory record. Records are immutable once the
// directory is built; OpeningHours keys are lowercase day names
// ("monday".."sunday") and values are either "HH:MM-HH:MM" or "Closed".
type Restaurant struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Cuisine         string            `json:"cuisine"`
	Location        string            `json:"location"`
	Address         string            `json:"address"`
	Description     string            `json:"description"`
	SeatingCapacity int               `json:"seating_capacity"`
	Rating          float64           `json:"rating"`
	OpeningHours    map[string]string `json:"opening_hours"`
	Tags            []string          `json:"tags,omitempty"`
}

// Criteria is the optional filter set for directory searches. Zero values
// impose no constraint; populated filters combine with logical AND.
// Date and Time are accepted for schema compatibility but do not exclude
// results: availability is a separate question answered elsewhere.
type Criteria struct {
	Cuisine   string
	Location  string
	PartySize int
	Text      string
	Date      string
	Time      string
}
