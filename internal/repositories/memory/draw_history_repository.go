package memory

import (
	"context"
	"sync"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
)

// Compile-time check to ensure DrawHistoryRepository implements the interface
var _ repositories.DrawHistoryRepository = (*DrawHistoryRepository)(nil)

// DrawHistoryRepository keeps draws in process, newest last
type DrawHistoryRepository struct {
	mu    sync.RWMutex
	draws map[string][]*models.DrawResult
}

// NewDrawHistoryRepository creates an empty DrawHistoryRepository
func NewDrawHistoryRepository() *DrawHistoryRepository {
	return &DrawHistoryRepository{draws: make(map[string][]*models.DrawResult)}
}

// Create appends a draw
func (r *DrawHistoryRepository) Create(ctx context.Context, draw *models.DrawResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *draw
	r.draws[draw.PlayerID] = append(r.draws[draw.PlayerID], &cp)
	return nil
}

// FindByPlayerID returns up to limit draws, newest first. limit <= 0 returns all.
func (r *DrawHistoryRepository) FindByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.draws[playerID]
	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*models.DrawResult, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		cp := *all[i]
		out = append(out, &cp)
	}
	return out, nil
}
