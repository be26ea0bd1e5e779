package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/pkg/utils"
	"go.uber.org/zap"
)

// GeoHandler exposes the raw provider passthrough endpoints used by the
// frontend for map widgets. Responses are the provider's JSON untouched.
type GeoHandler struct {
	geoRepo    repository.GeocodingRepository
	searchRepo repository.PlaceSearchRepository
	logger     *zap.Logger
}

func NewGeoHandler(
	geoRepo repository.GeocodingRepository,
	searchRepo repository.PlaceSearchRepository,
	logger *zap.Logger,
) *GeoHandler {
	return &GeoHandler{
		geoRepo:    geoRepo,
		searchRepo: searchRepo,
		logger:     logger,
	}
}

// Geocode proxies the geocoding provider.
func (h *GeoHandler) Geocode(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return utils.SendError(c, errors.ErrMissingAddress)
	}

	body, err := h.geoRepo.RawGeocode(c.Context(), address)
	if err != nil {
		h.logger.Error("Geocode passthrough failed", zap.Error(err))
		return utils.SendError(c, errors.ErrProviderUnavailable)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// SearchPlaces proxies the place-search provider.
func (h *GeoHandler) SearchPlaces(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	loc, err := parseLocation(c.Query("location"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	radius := c.QueryInt("radius", 2000)
	if !utils.ValidateRadius(radius) {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	placeType := c.Query("type", domain.DefaultCategory)

	body, err := h.searchRepo.RawSearch(c.Context(), query, *loc, radius, placeType)
	if err != nil {
		h.logger.Error("Place search passthrough failed", zap.Error(err))
		return utils.SendError(c, errors.ErrProviderUnavailable)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// parseLocation parses "lat,lng".
func parseLocation(s string) (*domain.Location, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, errors.ErrInvalidRequest
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidRequest
	}

	return &domain.Location{Lat: lat, Lng: lng}, nil
}
