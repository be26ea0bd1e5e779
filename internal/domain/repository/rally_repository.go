package repository

import (
	"context"

	"github.com/spot-rally/internal/domain"
)

// RallyRepository is the black-box rally/rating persistence API, consumed
// over HTTP. Only the response shapes are depended on.
type RallyRepository interface {
	CreateRally(ctx context.Context, title, region, genre string, spots []domain.RallySpot) (*domain.Rally, error)
	GetRally(ctx context.Context, id string) (*domain.Rally, error)
	ListRallySpots(ctx context.Context, rallyID string) ([]domain.RallySpot, error)
}
