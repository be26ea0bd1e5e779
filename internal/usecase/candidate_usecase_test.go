package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/usecase"
	"github.com/spot-rally/internal/usecase/dto"
)

// MockSpotCacheRepository is a mock of SpotCacheRepository
type MockSpotCacheRepository struct {
	mock.Mock
}

func (m *MockSpotCacheRepository) Lookup(ctx context.Context, region, genre string) ([]domain.CacheEntry, error) {
	args := m.Called(ctx, region, genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CacheEntry), args.Error(1)
}

func (m *MockSpotCacheRepository) Upsert(ctx context.Context, entries []domain.CacheEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockGeocodingRepository) RawGeocode(ctx context.Context, address string) ([]byte, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPlaceSearchRepository is a mock of PlaceSearchRepository
type MockPlaceSearchRepository struct {
	mock.Mock
}

func (m *MockPlaceSearchRepository) SearchNearby(ctx context.Context, loc domain.Location, category string, radiusMeters int) ([]domain.Spot, error) {
	args := m.Called(ctx, loc, category, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Spot), args.Error(1)
}

func (m *MockPlaceSearchRepository) RawSearch(ctx context.Context, query string, loc domain.Location, radiusMeters int, placeType string) ([]byte, error) {
	args := m.Called(ctx, query, loc, radiusMeters, placeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func searchConfig(mockFallback bool) config.SearchConfig {
	return config.SearchConfig{
		RadiusMeters: 2000,
		MaxResults:   5,
		CacheTTL:     7 * 24 * time.Hour,
		Country:      "Japan",
		MockFallback: mockFallback,
	}
}

func providerSpots(n int) []domain.Spot {
	spots := make([]domain.Spot, 0, n)
	for i := 0; i < n; i++ {
		spots = append(spots, domain.Spot{
			ID:   string(rune('a' + i)),
			Name: "Spot " + string(rune('A'+i)),
			Lat:  35.0,
			Lng:  139.0,
		})
	}
	return spots
}

func TestCandidateUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	shibuya := &domain.Location{Lat: 35.6595, Lng: 139.7005}

	t.Run("fresh cache entries short-circuit the providers", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		now := time.Now()
		entries := []domain.CacheEntry{
			domain.NewCacheEntry(domain.Spot{ID: "a", Name: "Cached A"}, "Shibuya", "ramen", now, time.Hour),
			domain.NewCacheEntry(domain.Spot{ID: "b", Name: "Cached B"}, "Shibuya", "ramen", now, time.Hour),
		}
		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return(entries, nil)

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		assert.Equal(t, dto.SourceCache, result.Source)
		require.Len(t, result.Spots, 2)
		assert.Equal(t, "a", result.Spots[0].ID)

		mockGeo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		mockSearch.AssertNotCalled(t, "SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss resolves via geocode and search with write-through", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(shibuya, nil)
		mockSearch.On("SearchNearby", ctx, *shibuya, "restaurant", 2000).Return(providerSpots(3), nil)

		stored := make(chan []domain.CacheEntry, 1)
		mockCache.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored <- args.Get(1).([]domain.CacheEntry)
		}).Return(nil)

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		assert.Equal(t, dto.SourceAPI, result.Source)
		assert.Len(t, result.Spots, 3)

		select {
		case entries := <-stored:
			assert.Len(t, entries, 3)
			assert.Equal(t, "Shibuya", entries[0].Region)
			assert.Equal(t, "ramen", entries[0].Genre)
			assert.Equal(t, 1, entries[0].FetchCount)
		case <-time.After(2 * time.Second):
			t.Fatal("expected asynchronous cache write-through")
		}
	})

	t.Run("cache lookup failure falls through to the providers", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return(nil, errors.ErrCacheUnavailable)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(shibuya, nil)
		mockSearch.On("SearchNearby", ctx, *shibuya, "restaurant", 2000).Return(providerSpots(2), nil)
		mockCache.On("Upsert", mock.Anything, mock.Anything).Return(nil).Maybe()

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		assert.Equal(t, dto.SourceAPI, result.Source)
		assert.Len(t, result.Spots, 2)
	})

	t.Run("results are deduplicated and bounded", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		raw := providerSpots(7)
		raw = append([]domain.Spot{raw[0]}, raw...) // duplicate first place id

		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(shibuya, nil)
		mockSearch.On("SearchNearby", ctx, *shibuya, "restaurant", 2000).Return(raw, nil)
		mockCache.On("Upsert", mock.Anything, mock.Anything).Return(nil).Maybe()

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		require.Len(t, result.Spots, 5)
		seen := map[string]bool{}
		for _, s := range result.Spots {
			assert.False(t, seen[s.ID], "duplicate place id %s", s.ID)
			seen[s.ID] = true
		}
	})

	t.Run("geocode failure degrades to an empty error response", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Nowhere", "ramen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Nowhere, Japan").Return(nil, errors.ErrZeroResults)

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Nowhere", "ramen")

		assert.Equal(t, dto.SourceError, result.Source)
		assert.Empty(t, result.Spots)
		mockSearch.AssertNotCalled(t, "SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("geocode failure with mock fallback serves the demo set", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(nil, errors.ErrNotConfigured)

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(true))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		assert.Equal(t, dto.SourceMock, result.Source)
		assert.Len(t, result.Spots, 5)
		assert.Contains(t, result.Spots[0].Name, "Shibuya")
	})

	t.Run("place search failure degrades to an empty error response", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Shibuya", "ramen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(shibuya, nil)
		mockSearch.On("SearchNearby", ctx, *shibuya, "restaurant", 2000).
			Return(nil, errors.NewProviderError("REQUEST_DENIED", "key rejected"))

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "ramen")

		assert.Equal(t, dto.SourceError, result.Source)
		assert.Empty(t, result.Spots)
	})

	t.Run("unknown genre searches with the default category", func(t *testing.T) {
		mockCache := &MockSpotCacheRepository{}
		mockGeo := &MockGeocodingRepository{}
		mockSearch := &MockPlaceSearchRepository{}

		mockCache.On("Lookup", ctx, "Shibuya", "onsen").Return([]domain.CacheEntry{}, nil)
		mockGeo.On("Geocode", ctx, "Shibuya, Japan").Return(shibuya, nil)
		mockSearch.On("SearchNearby", ctx, *shibuya, domain.DefaultCategory, 2000).Return(providerSpots(1), nil)
		mockCache.On("Upsert", mock.Anything, mock.Anything).Return(nil).Maybe()

		uc := usecase.NewCandidateUseCase(mockCache, mockGeo, mockSearch, logger, searchConfig(false))
		result := uc.Resolve(ctx, "Shibuya", "onsen")

		assert.Equal(t, dto.SourceAPI, result.Source)
		mockSearch.AssertExpectations(t)
	})
}
