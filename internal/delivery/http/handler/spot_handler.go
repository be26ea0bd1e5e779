package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/usecase"
	"github.com/spot-rally/internal/usecase/dto"
	"go.uber.org/zap"
)

// SpotHandler serves candidate resolution.
type SpotHandler struct {
	candidateUC *usecase.CandidateUseCase
	logger      *zap.Logger
}

func NewSpotHandler(candidateUC *usecase.CandidateUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		candidateUC: candidateUC,
		logger:      logger,
	}
}

// GetSpots resolves candidates for a (region, genre) query.
// Missing parameters are the only 400; provider/config failures come back
// as 500 with an empty spot list so the UI renders a neutral empty state.
func (h *SpotHandler) GetSpots(c *fiber.Ctx) error {
	region := c.Query("region")
	genre := c.Query("genre")

	if region == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errors.ErrMissingRegion.Message,
		})
	}
	if genre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errors.ErrMissingGenre.Message,
		})
	}

	result := h.candidateUC.Resolve(c.Context(), region, genre)

	if result.Source == dto.SourceError {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": errors.ErrProviderUnavailable.Message,
			"spots": []domain.Spot{},
		})
	}

	return c.JSON(result)
}
