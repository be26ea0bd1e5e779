package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/pkg/utils"
	"github.com/spot-rally/internal/usecase"
	"go.uber.org/zap"
)

// RallyHandler serves the public share view of a rated rally.
type RallyHandler struct {
	tierUC *usecase.TierBoardUseCase
	logger *zap.Logger
}

func NewRallyHandler(tierUC *usecase.TierBoardUseCase, logger *zap.Logger) *RallyHandler {
	return &RallyHandler{
		tierUC: tierUC,
		logger: logger,
	}
}

// ShareBoard returns a rally's rated stops grouped into tiers.
func (h *RallyHandler) ShareBoard(c *fiber.Ctx) error {
	rallyID := c.Params("id")
	if rallyID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	board, err := h.tierUC.ShareBoard(c.Context(), rallyID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, board, nil)
}
