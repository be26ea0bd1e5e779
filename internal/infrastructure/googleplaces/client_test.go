package googleplaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/pkg/errors"
)

func testClient(serverURL string) *Client {
	return NewClient(&config.GoogleConfig{
		APIKey:         "test_key",
		GeocodeBaseURL: serverURL,
		PlacesBaseURL:  serverURL,
		RequestTimeout: 5,
	}, zap.NewNop())
}

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestClient_Geocode(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := jsonServer(t, `{
			"status": "OK",
			"results": [
				{"formatted_address": "Shibuya, Tokyo, Japan",
				 "geometry": {"location": {"lat": 35.6595, "lng": 139.7005}}}
			]
		}`)
		defer server.Close()

		client := testClient(server.URL)
		loc, err := client.Geocode(context.Background(), "Shibuya, Japan")

		require.NoError(t, err)
		assert.InDelta(t, 35.6595, loc.Lat, 0.0001)
		assert.InDelta(t, 139.7005, loc.Lng, 0.0001)
	})

	t.Run("zero results", func(t *testing.T) {
		server := jsonServer(t, `{"status": "ZERO_RESULTS", "results": []}`)
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.Geocode(context.Background(), "xyzzy")

		assert.ErrorIs(t, err, errors.ErrZeroResults)
	})

	t.Run("request denied carries the provider status", func(t *testing.T) {
		server := jsonServer(t, `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`)
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.Geocode(context.Background(), "Shibuya")

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "REQUEST_DENIED", provErr.Status)
	})

	t.Run("missing api key short-circuits without a request", func(t *testing.T) {
		client := NewClient(&config.GoogleConfig{
			GeocodeBaseURL: "http://localhost:1",
			PlacesBaseURL:  "http://localhost:1",
			RequestTimeout: 1,
		}, zap.NewNop())

		_, err := client.Geocode(context.Background(), "Shibuya")
		assert.ErrorIs(t, err, errors.ErrNotConfigured)
	})

	t.Run("non-200 response is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.Geocode(context.Background(), "Shibuya")

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "HTTP_503", provErr.Status)
	})
}

func TestClient_SearchNearby(t *testing.T) {
	loc := domain.Location{Lat: 35.6595, Lng: 139.7005}

	t.Run("maps provider results to spots", func(t *testing.T) {
		server := jsonServer(t, `{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Ramen Ichiban",
				 "formatted_address": "1-1-1 Shibuya",
				 "geometry": {"location": {"lat": 35.66, "lng": 139.70}},
				 "rating": 4.6,
				 "photos": [{"photo_reference": "ref1"}]},
				{"place_id": "p2", "name": "Ramen Niban",
				 "vicinity": "2-2-2 Shibuya",
				 "geometry": {"location": {"lat": 35.65, "lng": 139.71}}}
			]
		}`)
		defer server.Close()

		client := testClient(server.URL)
		spots, err := client.SearchNearby(context.Background(), loc, "restaurant", 2000)

		require.NoError(t, err)
		require.Len(t, spots, 2)

		assert.Equal(t, "p1", spots[0].ID)
		assert.Equal(t, "1-1-1 Shibuya", spots[0].Address)
		require.NotNil(t, spots[0].Rating)
		assert.InDelta(t, 4.6, *spots[0].Rating, 0.001)
		require.NotNil(t, spots[0].PhotoURL)
		assert.Contains(t, *spots[0].PhotoURL, "ref1")

		// Nearby results carry vicinity instead of formatted_address,
		// and a zero rating means unrated.
		assert.Equal(t, "2-2-2 Shibuya", spots[1].Address)
		assert.Nil(t, spots[1].Rating)
		assert.Nil(t, spots[1].PhotoURL)
	})

	t.Run("zero results", func(t *testing.T) {
		server := jsonServer(t, `{"status": "ZERO_RESULTS", "results": []}`)
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.SearchNearby(context.Background(), loc, "restaurant", 2000)

		assert.ErrorIs(t, err, errors.ErrZeroResults)
	})

	t.Run("over query limit carries the provider status", func(t *testing.T) {
		server := jsonServer(t, `{"status": "OVER_QUERY_LIMIT", "error_message": "quota exceeded"}`)
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.SearchNearby(context.Background(), loc, "restaurant", 2000)

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "OVER_QUERY_LIMIT", provErr.Status)
	})
}

func TestClient_RawSearch(t *testing.T) {
	raw := `{"status": "OK", "results": [{"place_id": "p1"}]}`
	server := jsonServer(t, raw)
	defer server.Close()

	client := testClient(server.URL)
	body, err := client.RawSearch(context.Background(), "ramen", domain.Location{Lat: 35.66, Lng: 139.70}, 2000, "restaurant")

	require.NoError(t, err)
	assert.JSONEq(t, raw, string(body))
}
