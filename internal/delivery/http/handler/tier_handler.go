package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spot-rally/internal/pkg/utils"
	"github.com/spot-rally/internal/pkg/validator"
	"github.com/spot-rally/internal/usecase"
	"github.com/spot-rally/internal/usecase/dto"
	"go.uber.org/zap"
)

// TierHandler serves tier grouping and drag reordering. Both operations
// are pure state transitions; the client sends the state, gets the next
// state back, and owns nothing but event translation.
type TierHandler struct {
	tierUC *usecase.TierBoardUseCase
	logger *zap.Logger
}

func NewTierHandler(tierUC *usecase.TierBoardUseCase, logger *zap.Logger) *TierHandler {
	return &TierHandler{
		tierUC: tierUC,
		logger: logger,
	}
}

// Group partitions rated stops into S/A/B tiers.
func (h *TierHandler) Group(c *fiber.Ctx) error {
	var req dto.GroupTiersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.tierUC.Group(req), nil)
}

// Reorder applies one drag operation to a board.
func (h *TierHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderTiersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tierUC.Reorder(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
