package rallyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client consumes the rally/rating persistence backend. The backend is a
// black box; only its {data, message} envelope shape is relied on.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

func NewClient(cfg *config.RallyAPIConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		logger:  logger,
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type createRallyRequest struct {
	Title  string             `json:"title"`
	Region string             `json:"region"`
	Genre  string             `json:"genre"`
	Spots  []domain.RallySpot `json:"spots"`
}

// CreateRally persists a new rally with its ordered stops.
func (c *Client) CreateRally(
	ctx context.Context,
	title, region, genre string,
	spots []domain.RallySpot,
) (*domain.Rally, error) {
	payload := createRallyRequest{
		Title:  title,
		Region: region,
		Genre:  genre,
		Spots:  spots,
	}

	var rally domain.Rally
	if err := c.do(ctx, http.MethodPost, "/rallies", payload, &rally); err != nil {
		return nil, err
	}
	return &rally, nil
}

// GetRally fetches one rally by id.
func (c *Client) GetRally(ctx context.Context, id string) (*domain.Rally, error) {
	var rally domain.Rally
	if err := c.do(ctx, http.MethodGet, "/rallies/"+id, nil, &rally); err != nil {
		return nil, err
	}
	return &rally, nil
}

// ListRallySpots fetches a rally's stops with any recorded ratings joined in.
func (c *Client) ListRallySpots(ctx context.Context, rallyID string) ([]domain.RallySpot, error) {
	var spots []domain.RallySpot
	if err := c.do(ctx, http.MethodGet, "/rallies/"+rallyID+"/spots", nil, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	if c.baseURL == "" {
		return errors.ErrNotConfigured
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Rally API request failed",
			zap.String("path", path), zap.Error(err))
		return errors.NewProviderError("TRANSPORT_ERROR", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.ErrRallyNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("Rally API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(raw)))
		return errors.NewProviderError(
			fmt.Sprintf("HTTP_%d", resp.StatusCode), string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}

	return nil
}
