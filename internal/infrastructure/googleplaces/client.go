package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the Google Geocoding and Places Web Service APIs.
// It implements both the geocoding and the place-search repository
// contracts; the two APIs share one credential and one transport.
type Client struct {
	httpClient     *http.Client
	geocodeBaseURL string
	placesBaseURL  string
	apiKey         string
	logger         *zap.Logger
}

func NewClient(cfg *config.GoogleConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		geocodeBaseURL: cfg.GeocodeBaseURL,
		placesBaseURL:  cfg.PlacesBaseURL,
		apiKey:         cfg.APIKey,
		logger:         logger,
	}
}

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type searchResponse struct {
	Results []struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Vicinity         string `json:"vicinity"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating float64 `json:"rating"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Geocode resolves a free-text address to its best-match coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	body, err := c.get(ctx, c.geocodeURL(address))
	if err != nil {
		return nil, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to decode geocode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch {
	case resp.Status == "ZERO_RESULTS" || (resp.Status == "OK" && len(resp.Results) == 0):
		return nil, errors.ErrZeroResults
	case resp.Status != "OK":
		c.logger.Error("Geocoding API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("message", resp.ErrorMessage))
		return nil, errors.NewProviderError(resp.Status, resp.ErrorMessage)
	}

	loc := resp.Results[0].Geometry.Location
	return &domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// RawGeocode returns the provider's geocoding response body untouched.
func (c *Client) RawGeocode(ctx context.Context, address string) ([]byte, error) {
	return c.get(ctx, c.geocodeURL(address))
}

// SearchNearby returns the provider's raw result list for a category search
// around a point. The list is not bounded here.
func (c *Client) SearchNearby(
	ctx context.Context,
	loc domain.Location,
	category string,
	radiusMeters int,
) ([]domain.Spot, error) {
	body, err := c.get(ctx, c.searchURL(category, loc, radiusMeters, category))
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to decode search response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch {
	case resp.Status == "ZERO_RESULTS" || (resp.Status == "OK" && len(resp.Results) == 0):
		return nil, errors.ErrZeroResults
	case resp.Status != "OK":
		c.logger.Error("Places API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("message", resp.ErrorMessage))
		return nil, errors.NewProviderError(resp.Status, resp.ErrorMessage)
	}

	spots := make([]domain.Spot, 0, len(resp.Results))
	for _, r := range resp.Results {
		spot := domain.Spot{
			ID:   r.PlaceID,
			Name: r.Name,
			Lat:  r.Geometry.Location.Lat,
			Lng:  r.Geometry.Location.Lng,
		}

		// Text search fills formatted_address, nearby search fills vicinity.
		if r.FormattedAddress != "" {
			spot.Address = r.FormattedAddress
		} else {
			spot.Address = r.Vicinity
		}

		if r.Rating > 0 {
			rating := r.Rating
			spot.Rating = &rating
		}

		if len(r.Photos) > 0 && r.Photos[0].PhotoReference != "" {
			photoURL := c.PhotoURL(r.Photos[0].PhotoReference)
			spot.PhotoURL = &photoURL
		}

		spots = append(spots, spot)
	}

	return spots, nil
}

// RawSearch returns the provider's text-search response body untouched.
func (c *Client) RawSearch(
	ctx context.Context,
	query string,
	loc domain.Location,
	radiusMeters int,
	placeType string,
) ([]byte, error) {
	return c.get(ctx, c.searchURL(query, loc, radiusMeters, placeType))
}

// PhotoURL builds a fetchable photo URL from a provider photo reference.
func (c *Client) PhotoURL(photoReference string) string {
	return fmt.Sprintf("%s/photo?maxwidth=400&photo_reference=%s&key=%s",
		c.placesBaseURL, url.QueryEscape(photoReference), c.apiKey)
}

func (c *Client) geocodeURL(address string) string {
	return fmt.Sprintf("%s/json?address=%s&key=%s",
		c.geocodeBaseURL, url.QueryEscape(address), c.apiKey)
}

func (c *Client) searchURL(query string, loc domain.Location, radiusMeters int, placeType string) string {
	return fmt.Sprintf("%s/textsearch/json?query=%s&location=%f,%f&radius=%d&type=%s&key=%s",
		c.placesBaseURL,
		url.QueryEscape(query),
		loc.Lat, loc.Lng,
		radiusMeters,
		url.QueryEscape(placeType),
		c.apiKey,
	)
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, errors.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.NewProviderError("TRANSPORT_ERROR", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Google API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.NewProviderError(
			fmt.Sprintf("HTTP_%d", resp.StatusCode), string(body))
	}

	return body, nil
}
