package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spot-rally/internal/domain"
	"github.com/spot-rally/internal/domain/repository"
	"github.com/spot-rally/internal/repository/cache"
	"go.uber.org/zap"
)

type selectionRepository struct {
	client *goredis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewSelectionRepository stores draft selections as JSON values with a
// session TTL. Drafts are a cross-page handoff resource addressed by id,
// not durable data, so Redis expiry is the whole lifecycle.
func NewSelectionRepository(redis *cache.Redis, ttl time.Duration) repository.SelectionRepository {
	return &selectionRepository{
		client: redis.Client(),
		logger: redis.Logger(),
		ttl:    ttl,
	}
}

func selectionKey(id string) string {
	return "selection:" + id
}

func (r *selectionRepository) Get(ctx context.Context, id string) (*domain.Selection, error) {
	val, err := r.client.Get(ctx, selectionKey(id)).Bytes()
	if err == goredis.Nil {
		return nil, nil // expired or never existed
	}
	if err != nil {
		r.logger.Error("Failed to get selection", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("selection get error: %w", err)
	}

	var sel domain.Selection
	if err := json.Unmarshal(val, &sel); err != nil {
		r.logger.Error("Failed to unmarshal selection", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("unmarshal selection: %w", err)
	}

	return &sel, nil
}

func (r *selectionRepository) Save(ctx context.Context, sel *domain.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}

	if err := r.client.Set(ctx, selectionKey(sel.ID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save selection", zap.String("id", sel.ID), zap.Error(err))
		return fmt.Errorf("selection set error: %w", err)
	}

	r.logger.Debug("Selection saved",
		zap.String("id", sel.ID),
		zap.Int("selected", len(sel.SelectedIDs)),
	)
	return nil
}
