package rallyapi

import (
	"context"
	"encoding/json"
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
	return NewClient(&config.RallyAPIConfig{
		BaseURL:        serverURL,
		Token:          "test_token",
		RequestTimeout: 5,
	}, zap.NewNop())
}

func TestClient_CreateRally(t *testing.T) {
	t.Run("posts the payload and decodes the envelope", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/rallies", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": {"id": "rally-1", "title": "Shibuya Ramen Tour"}, "message": "created"}`))
		}))
		defer server.Close()

		client := testClient(server.URL)
		rally, err := client.CreateRally(context.Background(), "Shibuya Ramen Tour", "Shibuya", "ramen", []domain.RallySpot{
			{Spot: domain.Spot{ID: "a", Name: "Alpha"}, OrderNo: 1},
			{Spot: domain.Spot{ID: "b", Name: "Beta"}, OrderNo: 2},
			{Spot: domain.Spot{ID: "c", Name: "Gamma"}, OrderNo: 3},
		})

		require.NoError(t, err)
		assert.Equal(t, "rally-1", rally.ID)
		assert.Equal(t, "Bearer test_token", gotAuth)
		assert.Equal(t, "Shibuya", gotBody["region"])
		assert.Len(t, gotBody["spots"], 3)
	})

	t.Run("missing base url is not configured", func(t *testing.T) {
		client := NewClient(&config.RallyAPIConfig{RequestTimeout: 1}, zap.NewNop())

		_, err := client.CreateRally(context.Background(), "t", "r", "g", nil)
		assert.ErrorIs(t, err, errors.ErrNotConfigured)
	})
}

func TestClient_GetRally(t *testing.T) {
	t.Run("404 maps to rally not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.GetRally(context.Background(), "ghost")

		assert.Equal(t, errors.ErrRallyNotFound, err)
	})

	t.Run("5xx is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := testClient(server.URL)
		_, err := client.GetRally(context.Background(), "rally-1")

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "HTTP_502", provErr.Status)
	})
}

func TestClient_ListRallySpots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rallies/rally-1/spots", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "a", "name": "Alpha", "order_no": 1, "rating": 4.6},
			{"id": "b", "name": "Beta", "order_no": 2}
		], "message": ""}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	spots, err := client.ListRallySpots(context.Background(), "rally-1")

	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, 1, spots[0].OrderNo)
	require.NotNil(t, spots[0].Rating)
	assert.InDelta(t, 4.6, *spots[0].Rating, 0.001)
	assert.Nil(t, spots[1].Rating)
}
