package domain

import "time"

// Rally is a user-curated ordered itinerary of 3-5 spots, persisted by the
// rally backend service. This service only consumes it over HTTP.
type Rally struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Region    string    `json:"region"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
}

// RallySpot is an itinerary stop. Rating and Memo are set once the stop
// has been visited and evaluated.
type RallySpot struct {
	Spot
	OrderNo int      `json:"order_no"`
	Rating  *float64 `json:"rating,omitempty"`
	Memo    string   `json:"memo,omitempty"`
}

// Rated converts an evaluated stop to a RatedSpot. Callers must check
// Rating is set first; unrated stops never reach tier classification.
func (rs RallySpot) Rated() RatedSpot {
	var rating float64
	if rs.Rating != nil {
		rating = *rs.Rating
	}
	return RatedSpot{
		Spot:    rs.Spot,
		OrderNo: rs.OrderNo,
		Rating:  rating,
		Memo:    rs.Memo,
	}
}
