package postgres

import (
	"context"

	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"go.uber.org/zap"
)

type noopSpotCache struct {
	logger *zap.Logger
}

// NewNoopSpotCache is the degraded-mode cache used when no database is
// configured: every lookup is a miss and every upsert is dropped, so the
// resolution service always takes the provider path.
func NewNoopSpotCache(logger *zap.Logger) repository.SpotCacheRepository {
	logger.Warn("Spot cache running in degraded mode: no database configured")
	return &noopSpotCache{logger: logger}
}

func (n *noopSpotCache) Lookup(ctx context.Context, region, genre string) ([]domain.CacheEntry, error) {
	return nil, nil
}

func (n *noopSpotCache) Upsert(ctx context.Context, entries []domain.CacheEntry) error {
	return nil
}
