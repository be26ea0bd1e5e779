package repository

import (
	"context"

	"github.com/spot-rally/internal/domain"
)

// PlaceSearchRepository queries the external place-search capability.
// The result list is the provider's raw ordering and is NOT bounded here;
// bounding belongs to the resolution service so the adapter stays reusable.
type PlaceSearchRepository interface {
	SearchNearby(ctx context.Context, loc domain.Location, category string, radiusMeters int) ([]domain.Spot, error)

	// RawSearch returns the provider's response body untouched, for the
	// passthrough endpoint.
	RawSearch(ctx context.Context, query string, loc domain.Location, radiusMeters int, placeType string) ([]byte, error)
}
