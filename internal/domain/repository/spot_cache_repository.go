package repository

import (
	"context"

	"github.com/spot-rally/internal/domain"
)

// SpotCacheRepository is the persistent (region, genre)-keyed spot cache.
type SpotCacheRepository interface {
	// Lookup returns unexpired entries for a query key, most recently
	// updated first, capped at the configured result bound. Returned
	// entries get their fetch counter bumped best-effort.
	Lookup(ctx context.Context, region, genre string) ([]domain.CacheEntry, error)

	// Upsert writes observations keyed by (place_id, region, genre),
	// overwriting all attributes and resetting the fetch counter on conflict.
	Upsert(ctx context.Context, entries []domain.CacheEntry) error
}
