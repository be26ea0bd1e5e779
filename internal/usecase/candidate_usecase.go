package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/usecase/dto"
)

// CandidateUseCase resolves a (region, genre) query into a bounded,
// deduplicated candidate list: cache first, then geocode + place search
// with an asynchronous write-through back into the cache.
type CandidateUseCase struct {
	cacheRepo  repository.SpotCacheRepository
	geoRepo    repository.GeocodingRepository
	searchRepo repository.PlaceSearchRepository
	logger     *zap.Logger

	radiusMeters int
	maxResults   int
	cacheTTL     time.Duration
	country      string
	mockFallback bool
}

func NewCandidateUseCase(
	cacheRepo repository.SpotCacheRepository,
	geoRepo repository.GeocodingRepository,
	searchRepo repository.PlaceSearchRepository,
	logger *zap.Logger,
	searchCfg config.SearchConfig,
) *CandidateUseCase {
	return &CandidateUseCase{
		cacheRepo:    cacheRepo,
		geoRepo:      geoRepo,
		searchRepo:   searchRepo,
		logger:       logger,
		radiusMeters: searchCfg.RadiusMeters,
		maxResults:   searchCfg.MaxResults,
		cacheTTL:     searchCfg.CacheTTL,
		country:      searchCfg.Country,
		mockFallback: searchCfg.MockFallback,
	}
}

// Resolve returns at most maxResults spots for the query. Provider and
// cache failures never surface as errors here: they degrade to an empty
// list tagged SourceError (or the mock set when the demo fallback is on).
func (uc *CandidateUseCase) Resolve(ctx context.Context, region, genre string) *dto.SpotsResponse {
	// Fast path: a fresh cache entry short-circuits all provider calls.
	entries, err := uc.cacheRepo.Lookup(ctx, region, genre)
	if err != nil {
		// Cache trouble is a miss, never a failure.
		uc.logger.Warn("Spot cache lookup failed, falling through to provider",
			zap.String("region", region),
			zap.String("genre", genre),
			zap.Error(err),
		)
	}
	if len(entries) > 0 {
		spots := make([]domain.Spot, 0, len(entries))
		for _, e := range entries {
			spots = append(spots, e.Spot())
		}
		uc.logger.Debug("Candidates served from cache",
			zap.String("region", region),
			zap.String("genre", genre),
			zap.Int("count", len(spots)),
		)
		return &dto.SpotsResponse{Spots: spots, Source: dto.SourceCache}
	}

	// Region names are short and ambiguous on their own; scope the geocode
	// query to the configured country.
	loc, err := uc.geoRepo.Geocode(ctx, fmt.Sprintf("%s, %s", region, uc.country))
	if err != nil {
		uc.logger.Warn("Geocoding failed",
			zap.String("region", region),
			zap.Error(err),
		)
		return uc.degraded(region, genre)
	}

	category := domain.CategoryForGenre(genre)
	raw, err := uc.searchRepo.SearchNearby(ctx, *loc, category, uc.radiusMeters)
	if err != nil {
		uc.logger.Warn("Place search failed",
			zap.String("region", region),
			zap.String("category", category),
			zap.Error(err),
		)
		return &dto.SpotsResponse{Spots: []domain.Spot{}, Source: dto.SourceError}
	}

	spots := uc.bound(raw)

	// Write-through is fire-and-forget: a vanished caller must not cancel
	// it, and a cache-write failure must never fail the resolution.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	go func() {
		defer cancel()
		uc.storeResults(writeCtx, region, genre, spots)
	}()

	return &dto.SpotsResponse{Spots: spots, Source: dto.SourceAPI}
}

// bound dedupes by place id and truncates to maxResults, preserving the
// provider's order.
func (uc *CandidateUseCase) bound(raw []domain.Spot) []domain.Spot {
	seen := make(map[string]struct{}, len(raw))
	spots := make([]domain.Spot, 0, uc.maxResults)
	for _, s := range raw {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		spots = append(spots, s)
		if len(spots) == uc.maxResults {
			break
		}
	}
	return spots
}

func (uc *CandidateUseCase) storeResults(ctx context.Context, region, genre string, spots []domain.Spot) {
	if len(spots) == 0 {
		return
	}

	now := time.Now()
	entries := make([]domain.CacheEntry, 0, len(spots))
	for _, s := range spots {
		entries = append(entries, domain.NewCacheEntry(s, region, genre, now, uc.cacheTTL))
	}

	if err := uc.cacheRepo.Upsert(ctx, entries); err != nil {
		uc.logger.Warn("Spot cache write-through failed",
			zap.String("region", region),
			zap.String("genre", genre),
			zap.Int("count", len(entries)),
			zap.Error(err),
		)
	}
}

// degraded picks the configured fallback behavior when the provider chain
// breaks before any results exist: a deterministic demo set, or an empty
// error-tagged response. The flag selects one, never a mix.
func (uc *CandidateUseCase) degraded(region, genre string) *dto.SpotsResponse {
	if !uc.mockFallback {
		return &dto.SpotsResponse{Spots: []domain.Spot{}, Source: dto.SourceError}
	}
	return &dto.SpotsResponse{Spots: uc.mockSpots(region, genre), Source: dto.SourceMock}
}

// mockSpots is a deterministic demo set keyed off the query so the UI has
// something to render when no provider credential is available.
func (uc *CandidateUseCase) mockSpots(region, genre string) []domain.Spot {
	rating := func(v float64) *float64 { return &v }

	spots := []domain.Spot{
		{ID: "mock-1", Name: fmt.Sprintf("%s %s Ichiban", region, genre), Address: region + " 1-1-1", Lat: 35.6595, Lng: 139.7005, Rating: rating(4.6)},
		{ID: "mock-2", Name: fmt.Sprintf("%s %s Niban", region, genre), Address: region + " 2-2-2", Lat: 35.6601, Lng: 139.6982, Rating: rating(4.1)},
		{ID: "mock-3", Name: fmt.Sprintf("%s %s Sanban", region, genre), Address: region + " 3-3-3", Lat: 35.6583, Lng: 139.7016, Rating: rating(3.8)},
		{ID: "mock-4", Name: fmt.Sprintf("%s %s Yonban", region, genre), Address: region + " 4-4-4", Lat: 35.6610, Lng: 139.7030, Rating: rating(3.2)},
		{ID: "mock-5", Name: fmt.Sprintf("%s %s Goban", region, genre), Address: region + " 5-5-5", Lat: 35.6577, Lng: 139.6990, Rating: rating(4.4)},
	}

	if len(spots) > uc.maxResults {
		spots = spots[:uc.maxResults]
	}
	return spots
}
