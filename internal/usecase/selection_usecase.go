package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/usecase/dto"
)

// SelectionUseCase manages draft selections: the ordered, bounded set of
// candidates a user is assembling into a rally. Drafts live server-side
// and are handed between pages by id.
type SelectionUseCase struct {
	selectionRepo repository.SelectionRepository
	rallyRepo     repository.RallyRepository
	logger        *zap.Logger

	maxSpots int
	minSpots int
}

func NewSelectionUseCase(
	selectionRepo repository.SelectionRepository,
	rallyRepo repository.RallyRepository,
	logger *zap.Logger,
	cfg config.SelectionConfig,
) *SelectionUseCase {
	return &SelectionUseCase{
		selectionRepo: selectionRepo,
		rallyRepo:     rallyRepo,
		logger:        logger,
		maxSpots:      cfg.MaxSpots,
		minSpots:      cfg.MinSpots,
	}
}

// Create opens a draft over a candidate snapshot with nothing selected.
func (uc *SelectionUseCase) Create(ctx context.Context, req dto.CreateSelectionRequest) (*domain.Selection, error) {
	sel := &domain.Selection{
		ID:          uuid.NewString(),
		Region:      req.Region,
		Genre:       req.Genre,
		Candidates:  req.Candidates,
		SelectedIDs: []string{},
		UpdatedAt:   time.Now(),
	}

	if err := uc.selectionRepo.Save(ctx, sel); err != nil {
		uc.logger.Error("Failed to create selection", zap.Error(err))
		return nil, errors.ErrCacheError
	}

	return sel, nil
}

// Get loads a draft; expired drafts are gone.
func (uc *SelectionUseCase) Get(ctx context.Context, id string) (*domain.Selection, error) {
	sel, err := uc.selectionRepo.Get(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load selection", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if sel == nil {
		return nil, errors.ErrSelectionNotFound
	}
	return sel, nil
}

// Toggle flips one candidate in or out of the selection. A spot outside
// the draft's candidate list is rejected; hitting the size bound leaves
// the selection unchanged (the UI surfaces the replace flow).
func (uc *SelectionUseCase) Toggle(ctx context.Context, id, spotID string) (*domain.Selection, error) {
	sel, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sel.Candidate(spotID) == nil {
		return nil, errors.ErrSpotNotCandidate
	}

	sel.SelectedIDs = domain.ToggleID(sel.SelectedIDs, spotID, uc.maxSpots)
	sel.UpdatedAt = time.Now()

	if err := uc.selectionRepo.Save(ctx, sel); err != nil {
		uc.logger.Error("Failed to save selection", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	return sel, nil
}

// Reorder moves one selected spot to a new position. Membership and size
// never change.
func (uc *SelectionUseCase) Reorder(ctx context.Context, id string, fromIndex, toIndex int) (*domain.Selection, error) {
	sel, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sel.SelectedIDs = domain.MoveID(sel.SelectedIDs, fromIndex, toIndex)
	sel.UpdatedAt = time.Now()

	if err := uc.selectionRepo.Save(ctx, sel); err != nil {
		uc.logger.Error("Failed to save selection", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	return sel, nil
}

// Submit turns a draft into a persisted rally via the rally backend.
// The 3-5 stop window is enforced here, at the commit boundary.
func (uc *SelectionUseCase) Submit(ctx context.Context, id, title string) (*domain.Rally, error) {
	sel, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	chosen := sel.SelectedSpots()
	if len(chosen) < uc.minSpots || len(chosen) > uc.maxSpots {
		return nil, errors.ErrSelectionSize.WithDetails(map[string]interface{}{
			"selected": len(chosen),
			"min":      uc.minSpots,
			"max":      uc.maxSpots,
		})
	}

	stops := make([]domain.RallySpot, 0, len(chosen))
	for i, s := range chosen {
		stops = append(stops, domain.RallySpot{
			Spot:    s,
			OrderNo: i + 1,
		})
	}

	rally, err := uc.rallyRepo.CreateRally(ctx, title, sel.Region, sel.Genre, stops)
	if err != nil {
		uc.logger.Error("Failed to create rally",
			zap.String("selection_id", id),
			zap.Error(err),
		)
		return nil, errors.ErrProviderUnavailable
	}

	uc.logger.Info("Rally created from draft",
		zap.String("selection_id", id),
		zap.String("rally_id", rally.ID),
		zap.Int("stops", len(stops)),
	)

	return rally, nil
}
