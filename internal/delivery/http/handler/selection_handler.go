package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spot-rally/internal/pkg/utils"
	"github.com/spot-rally/internal/pkg/validator"
	"github.com/spot-rally/internal/usecase"
	"github.com/spot-rally/internal/usecase/dto"
	"go.uber.org/zap"
)

// SelectionHandler serves the draft-selection resource.
type SelectionHandler struct {
	selectionUC *usecase.SelectionUseCase
	logger      *zap.Logger
}

func NewSelectionHandler(selectionUC *usecase.SelectionUseCase, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		selectionUC: selectionUC,
		logger:      logger,
	}
}

// Create opens a new draft over a candidate list.
func (h *SelectionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sel, err := h.selectionUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: sel})
}

// Get returns a draft by id.
func (h *SelectionHandler) Get(c *fiber.Ctx) error {
	sel, err := h.selectionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sel, nil)
}

// Toggle flips one candidate in or out of the draft.
func (h *SelectionHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sel, err := h.selectionUC.Toggle(c.Context(), c.Params("id"), req.SpotID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sel, &utils.Meta{Total: len(sel.SelectedIDs)})
}

// Reorder moves one selected spot to a new position.
func (h *SelectionHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	sel, err := h.selectionUC.Reorder(c.Context(), c.Params("id"), req.FromIndex, req.ToIndex)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sel, nil)
}

// Submit commits a draft as a rally.
func (h *SelectionHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	rally, err := h.selectionUC.Submit(c.Context(), c.Params("id"), req.Title)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: rally})
}
