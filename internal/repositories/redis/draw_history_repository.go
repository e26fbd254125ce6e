package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
)

// Compile-time check to ensure DrawHistoryRepository implements the interface
var _ repositories.DrawHistoryRepository = (*DrawHistoryRepository)(nil)

// DrawHistoryRepository keeps the latest draws of a player in a capped list
type DrawHistoryRepository struct {
	client redis.Cmdable
	limit  int64
}

// NewDrawHistoryRepository creates a new DrawHistoryRepository keeping at
// most limit draws per player
func NewDrawHistoryRepository(client redis.Cmdable, limit int) *DrawHistoryRepository {
	if limit <= 0 {
		limit = 100
	}
	return &DrawHistoryRepository{client: client, limit: int64(limit)}
}

func drawsKey(playerID string) string {
	return "player:" + playerID + ":lottery-draws"
}

// Create pushes a draw to the head of the list and trims the tail
func (r *DrawHistoryRepository) Create(ctx context.Context, draw *models.DrawResult) error {
	raw, err := json.Marshal(draw)
	if err != nil {
		return err
	}
	key := drawsKey(draw.PlayerID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, raw)
		pipe.LTrim(ctx, key, 0, r.limit-1)
		return nil
	})
	return err
}

// FindByPlayerID returns up to limit draws, newest first
func (r *DrawHistoryRepository) FindByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	items, err := r.client.LRange(ctx, drawsKey(playerID), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	draws := make([]*models.DrawResult, 0, len(items))
	for _, item := range items {
		var d models.DrawResult
		if err := json.Unmarshal([]byte(item), &d); err != nil {
			return nil, fmt.Errorf("failed to decode draw: %w", err)
		}
		draws = append(draws, &d)
	}
	return draws, nil
}
