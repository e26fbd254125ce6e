package repositories

import (
	"context"
	"errors"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

// ErrStateNotFound is returned when nothing has been persisted for a player yet
var ErrStateNotFound = errors.New("player state not found")

// ErrMalformedState is returned when persisted values cannot be decoded
var ErrMalformedState = errors.New("malformed persisted player state")

// PlayerStateRepository persists the ledger and challenge list of a player.
// Save writes every key in one step: a later Load never observes a partial
// write.
type PlayerStateRepository interface {
	Load(ctx context.Context, playerID string) (*models.PlayerState, error)
	Save(ctx context.Context, state *models.PlayerState) error
}

// DrawHistoryRepository records lottery draws
type DrawHistoryRepository interface {
	Create(ctx context.Context, draw *models.DrawResult) error
	FindByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error)
}
