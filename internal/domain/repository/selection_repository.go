package repository

import (
	"context"

	"github.com/spot-rally/internal/domain"
)

// SelectionRepository stores draft selections server-side so pages hand off
// an id instead of sharing browser-local state.
type SelectionRepository interface {
	// Get returns nil, nil when the draft does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.Selection, error)

	Save(ctx context.Context, sel *domain.Selection) error
}
