package redis

import (
	"context"
	"fmt"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
)

// Compile-time check to ensure PlayerStateRepository implements the interface
var _ repositories.PlayerStateRepository = (*PlayerStateRepository)(nil)

// PlayerStateRepository stores each persisted key as player:<id>:<key>
type PlayerStateRepository struct {
	client redis.Cmdable
}

// NewPlayerStateRepository creates a new PlayerStateRepository
func NewPlayerStateRepository(client redis.Cmdable) *PlayerStateRepository {
	return &PlayerStateRepository{client: client}
}

func playerKey(playerID, key string) string {
	return "player:" + playerID + ":" + key
}

// Load reads every key of the player in one MGET
func (r *PlayerStateRepository) Load(ctx context.Context, playerID string) (*models.PlayerState, error) {
	keys := make([]string, len(repositories.StateKeys))
	for i, k := range repositories.StateKeys {
		keys[i] = playerKey(playerID, k)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read player state: %w", err)
	}

	kv := make(map[string]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			kv[repositories.StateKeys[i]] = s
		}
	}
	return repositories.DecodeState(playerID, kv)
}

// Save writes every key inside a MULTI/EXEC transaction
func (r *PlayerStateRepository) Save(ctx context.Context, state *models.PlayerState) error {
	kv, err := repositories.EncodeState(state)
	if err != nil {
		return err
	}

	pairs := make([]interface{}, 0, len(kv)*2)
	for _, k := range repositories.StateKeys {
		pairs = append(pairs, playerKey(state.PlayerID, k), kv[k])
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.MSet(ctx, pairs...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save player state: %w", err)
	}
	return nil
}
