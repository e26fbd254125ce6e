package memory

import (
	"context"
	"sync"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
)

// Compile-time check to ensure PlayerStateRepository implements the interface
var _ repositories.PlayerStateRepository = (*PlayerStateRepository)(nil)

// PlayerStateRepository keeps the persisted key/value layout in process
type PlayerStateRepository struct {
	mu      sync.RWMutex
	players map[string]map[string]string
}

// NewPlayerStateRepository creates an empty PlayerStateRepository
func NewPlayerStateRepository() *PlayerStateRepository {
	return &PlayerStateRepository{players: make(map[string]map[string]string)}
}

// Load decodes the stored layout of a player
func (r *PlayerStateRepository) Load(ctx context.Context, playerID string) (*models.PlayerState, error) {
	r.mu.RLock()
	kv, ok := r.players[playerID]
	r.mu.RUnlock()
	if !ok {
		return nil, repositories.ErrStateNotFound
	}
	return repositories.DecodeState(playerID, kv)
}

// Save replaces every key of the player at once
func (r *PlayerStateRepository) Save(ctx context.Context, state *models.PlayerState) error {
	kv, err := repositories.EncodeState(state)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.players[state.PlayerID] = kv
	r.mu.Unlock()
	return nil
}

// SetRaw overwrites a single persisted key. Used to seed or corrupt state
// from outside the service.
func (r *PlayerStateRepository) SetRaw(playerID, key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kv, ok := r.players[playerID]
	if !ok {
		kv = make(map[string]string)
		r.players[playerID] = kv
	}
	kv[key] = value
}

// Raw returns a copy of the persisted keys of a player
func (r *PlayerStateRepository) Raw(playerID string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.players[playerID]))
	for k, v := range r.players[playerID] {
		out[k] = v
	}
	return out
}
