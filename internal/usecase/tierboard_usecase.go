package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/pkg/errors"
	"github.com/spot-rally/internal/usecase/dto"
)

// TierBoardUseCase wraps the pure tier engine and builds the public share
// view from a persisted rally.
type TierBoardUseCase struct {
	rallyRepo repository.RallyRepository
	logger    *zap.Logger
}

func NewTierBoardUseCase(rallyRepo repository.RallyRepository, logger *zap.Logger) *TierBoardUseCase {
	return &TierBoardUseCase{
		rallyRepo: rallyRepo,
		logger:    logger,
	}
}

// Group partitions rated stops into the three tiers.
func (uc *TierBoardUseCase) Group(req dto.GroupTiersRequest) *dto.TierBoardResponse {
	spots := make([]domain.RatedSpot, 0, len(req.Spots))
	for _, in := range req.Spots {
		spots = append(spots, in.Rated())
	}

	return &dto.TierBoardResponse{Board: domain.GroupByTier(spots)}
}

// Reorder applies one drag operation to a board.
func (uc *TierBoardUseCase) Reorder(req dto.ReorderTiersRequest) (*dto.TierBoardResponse, error) {
	targetIndex := -1
	if req.TargetIndex != nil {
		targetIndex = *req.TargetIndex
	}

	board, err := req.Board.Reorder(
		req.SpotID,
		domain.Tier(req.FromTier),
		domain.Tier(req.ToTier),
		targetIndex,
	)
	if err != nil {
		return nil, errors.ErrSpotNotOnBoard.WithDetails(map[string]interface{}{
			"spot_id":   req.SpotID,
			"from_tier": req.FromTier,
		})
	}

	return &dto.TierBoardResponse{Board: board}, nil
}

// ShareBoard builds the public view of a rally: its rated stops grouped
// into tiers. Unrated stops are filtered out before classification.
func (uc *TierBoardUseCase) ShareBoard(ctx context.Context, rallyID string) (*dto.ShareBoardResponse, error) {
	rally, err := uc.rallyRepo.GetRally(ctx, rallyID)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		uc.logger.Error("Failed to fetch rally", zap.String("rally_id", rallyID), zap.Error(err))
		return nil, errors.ErrProviderUnavailable
	}

	stops, err := uc.rallyRepo.ListRallySpots(ctx, rallyID)
	if err != nil {
		uc.logger.Error("Failed to fetch rally spots", zap.String("rally_id", rallyID), zap.Error(err))
		return nil, errors.ErrProviderUnavailable
	}

	rated := make([]domain.RatedSpot, 0, len(stops))
	for _, stop := range stops {
		if stop.Rating == nil {
			continue
		}
		rated = append(rated, stop.Rated())
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].OrderNo < rated[j].OrderNo
	})

	return &dto.ShareBoardResponse{
		Rally: rally,
		Board: domain.GroupByTier(rated),
	}, nil
}
