package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/puzpuzpuz/xsync"
	"golang.org/x/exp/slog"

	"github.com/gingerprotocol/rewards-backend/internal/catalog"
	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
)

// DefaultCatalogCacheSize is used when no positive cache size is configured
const DefaultCatalogCacheSize = 64

// PlayerStore loads, reconciles and saves player state. Callers hold the
// player's lock around every load-modify-save sequence.
type PlayerStore struct {
	repo     repositories.PlayerStateRepository
	catalogs *lru.Cache
	// One mutex per player id seen by this process, never evicted: a mutex
	// can only be dropped safely when no goroutine holds or awaits it. Ids are
	// capped at 128 bytes by the handlers, so the map grows with the player
	// base like the memory driver does.
	locks *xsync.MapOf[string, *sync.Mutex]
}

// NewPlayerStore creates a new PlayerStore caching up to cacheSize generated catalogs
func NewPlayerStore(repo repositories.PlayerStateRepository, cacheSize int) (*PlayerStore, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCatalogCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}
	return &PlayerStore{
		repo:     repo,
		catalogs: cache,
		locks:    xsync.NewMapOf[*sync.Mutex](),
	}, nil
}

// Lock acquires the player's mutex and returns the matching unlock
func (s *PlayerStore) Lock(playerID string) func() {
	mu, _ := s.locks.LoadOrStore(playerID, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// Catalog returns a private copy of the catalog generated for day
func (s *PlayerStore) Catalog(day int) []models.Challenge {
	var generated []models.Challenge
	if v, ok := s.catalogs.Get(day); ok {
		generated = v.([]models.Challenge)
	} else {
		generated = catalog.Generate(day)
		s.catalogs.Add(day, generated)
	}
	out := make([]models.Challenge, len(generated))
	copy(out, generated)
	return out
}

// Load returns the player's state merged with the catalog of its current
// day. A player seen for the first time, or whose persisted state cannot be
// decoded, starts over from a fresh day 1 state which is persisted at once.
func (s *PlayerStore) Load(ctx context.Context, playerID string) (*models.PlayerState, error) {
	state, err := s.repo.Load(ctx, playerID)
	switch {
	case err == nil:
		state.Challenges = catalog.Merge(state.Ledger.CurrentDay, s.Catalog(state.Ledger.CurrentDay), state.Challenges)
		state.SyncCompleted()
		return state, nil
	case errors.Is(err, repositories.ErrStateNotFound):
		slog.Info("Initializing player state", "playerId", playerID)
	case errors.Is(err, repositories.ErrMalformedState):
		slog.Warn("Discarding malformed player state", "playerId", playerID, "error", err)
	default:
		return nil, fmt.Errorf("failed to load player state: %w", err)
	}

	state = &models.PlayerState{
		PlayerID:   playerID,
		Ledger:     models.NewPlayerLedger(),
		Challenges: s.Catalog(1),
	}
	if err := s.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Save persists the whole state in a single repository write
func (s *PlayerStore) Save(ctx context.Context, state *models.PlayerState) error {
	state.SyncCompleted()
	if err := s.repo.Save(ctx, state); err != nil {
		slog.Error("Failed to save player state", "error", err, "playerId", state.PlayerID)
		return fmt.Errorf("failed to save player state: %w", err)
	}
	return nil
}
