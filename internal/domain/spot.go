package domain

import "time"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot is a single point of interest surfaced by the places provider.
// ID is the provider-assigned place id; it is stable across repeated
// queries for the same underlying place.
type Spot struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address,omitempty"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Rating   *float64 `json:"rating,omitempty"`
	PhotoURL *string  `json:"photo_url,omitempty"`
}

// CacheEntry is one cached spot observation, denormalized per
// (place_id, region, genre). Validity is decided by ExpiresAt alone:
// an expired row is treated as absent even while physically stored.
type CacheEntry struct {
	PlaceID    string    `json:"place_id" db:"place_id"`
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	Lat        float64   `json:"lat" db:"lat"`
	Lng        float64   `json:"lng" db:"lng"`
	Rating     *float64  `json:"rating,omitempty" db:"rating"`
	PhotoURL   *string   `json:"photo_url,omitempty" db:"photo_url"`
	Region     string    `json:"region" db:"region"`
	Genre      string    `json:"genre" db:"genre"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	FetchCount int       `json:"fetch_count" db:"fetch_count"`
}

// Spot converts the cached observation back to the canonical shape.
func (e CacheEntry) Spot() Spot {
	return Spot{
		ID:       e.PlaceID,
		Name:     e.Name,
		Address:  e.Address,
		Lat:      e.Lat,
		Lng:      e.Lng,
		Rating:   e.Rating,
		PhotoURL: e.PhotoURL,
	}
}

// NewCacheEntry builds a fresh observation for a spot fetched under a
// (region, genre) query. FetchCount starts at 1; cache hits increment it.
func NewCacheEntry(s Spot, region, genre string, now time.Time, ttl time.Duration) CacheEntry {
	return CacheEntry{
		PlaceID:    s.ID,
		Name:       s.Name,
		Address:    s.Address,
		Lat:        s.Lat,
		Lng:        s.Lng,
		Rating:     s.Rating,
		PhotoURL:   s.PhotoURL,
		Region:     region,
		Genre:      genre,
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		FetchCount: 1,
	}
}

// RatedSpot is a rally stop that has been evaluated by the user.
type RatedSpot struct {
	Spot
	OrderNo int     `json:"order_no"`
	Rating  float64 `json:"rating"`
	Memo    string  `json:"memo,omitempty"`
}
