package repository

import (
	"context"

	"github.com/spot-rally/internal/domain"
)

// GeocodingRepository resolves free-text region strings to coordinates.
// Failures surface as errors.ErrNotConfigured, errors.ErrZeroResults or
// *errors.ProviderError.
type GeocodingRepository interface {
	Geocode(ctx context.Context, address string) (*domain.Location, error)

	// RawGeocode returns the provider's response body untouched, for the
	// passthrough endpoint.
	RawGeocode(ctx context.Context, address string) ([]byte, error)
}
