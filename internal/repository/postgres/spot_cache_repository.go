package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/pkg/errors"
	"go.uber.org/zap"
)

type spotCacheRepository struct {
	db         *sqlx.DB
	logger     *zap.Logger
	maxResults int
}

func NewSpotCacheRepository(db *DB, maxResults int) repository.SpotCacheRepository {
	return &spotCacheRepository{
		db:         db.DB,
		logger:     db.logger,
		maxResults: maxResults,
	}
}

// Lookup returns unexpired entries for (region, genre), most recently
// updated first, capped at maxResults. Expiry is enforced in the predicate:
// an expired row is invisible here even though it is still stored.
func (r *spotCacheRepository) Lookup(ctx context.Context, region, genre string) ([]domain.CacheEntry, error) {
	query := `
		SELECT
			place_id, region, genre, name, address, lat, lng, rating,
			photo_url, created_at, updated_at, expires_at, fetch_count
		FROM spot_cache
		WHERE region = $1 AND genre = $2 AND expires_at > now()
		ORDER BY updated_at DESC
		LIMIT $3
	`

	var entries []domain.CacheEntry
	if err := r.db.SelectContext(ctx, &entries, query, region, genre, r.maxResults); err != nil {
		r.logger.Error("Failed to lookup spot cache",
			zap.String("region", region),
			zap.String("genre", genre),
			zap.Error(err),
		)
		return nil, errors.ErrCacheUnavailable
	}

	if len(entries) > 0 {
		r.bumpFetchCount(ctx, region, genre, entries)
	}

	return entries, nil
}

// bumpFetchCount is hit telemetry, not correctness: a failed increment is
// logged and the read result is returned anyway.
func (r *spotCacheRepository) bumpFetchCount(ctx context.Context, region, genre string, entries []domain.CacheEntry) {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.PlaceID
	}

	query := `
		UPDATE spot_cache
		SET fetch_count = fetch_count + 1, updated_at = now()
		WHERE region = $1 AND genre = $2 AND place_id = ANY($3)
	`

	if _, err := r.db.ExecContext(ctx, query, region, genre, pq.Array(ids)); err != nil {
		r.logger.Warn("Failed to bump cache fetch count",
			zap.String("region", region),
			zap.String("genre", genre),
			zap.Error(err),
		)
	}
}

// Upsert writes observations keyed by (place_id, region, genre). On
// conflict every attribute is overwritten, expires_at is recomputed from
// the entry and fetch_count resets to 1, marking the row freshly fetched.
func (r *spotCacheRepository) Upsert(ctx context.Context, entries []domain.CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO spot_cache (
			place_id, region, genre, name, address, lat, lng, rating,
			photo_url, created_at, updated_at, expires_at, fetch_count
		) VALUES (
			:place_id, :region, :genre, :name, :address, :lat, :lng, :rating,
			:photo_url, :created_at, :updated_at, :expires_at, :fetch_count
		)
		ON CONFLICT (place_id, region, genre) DO UPDATE SET
			name        = EXCLUDED.name,
			address     = EXCLUDED.address,
			lat         = EXCLUDED.lat,
			lng         = EXCLUDED.lng,
			rating      = EXCLUDED.rating,
			photo_url   = EXCLUDED.photo_url,
			updated_at  = EXCLUDED.updated_at,
			expires_at  = EXCLUDED.expires_at,
			fetch_count = 1
	`

	if _, err := r.db.NamedExecContext(ctx, query, entries); err != nil {
		r.logger.Error("Failed to upsert spot cache entries",
			zap.Int("count", len(entries)),
			zap.Error(err),
		)
		return errors.ErrCacheUnavailable
	}

	return nil
}
