package services

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/gingerprotocol/rewards-backend/internal/catalog"
	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/progress"
)

// ChallengeService defines the operations on a player's challenge ledger
type ChallengeService interface {
	// LoadOrInitialize returns the player's state, creating it on first use
	LoadOrInitialize(ctx context.Context, playerID string) (*models.PlayerState, error)

	// ListChallenges returns the player's challenges, filtered by "all" or a category
	ListChallenges(ctx context.Context, playerID, filter string) ([]models.Challenge, error)

	// CompleteChallenge marks a challenge completed and credits its rewards
	CompleteChallenge(ctx context.Context, playerID, challengeID string) (*models.CompletionResult, error)

	// SetCurrentDay records the program day reached by the player
	SetCurrentDay(ctx context.Context, playerID string, day int) (*models.PlayerState, error)

	// GetLedger returns the player's running totals
	GetLedger(ctx context.Context, playerID string) (models.PlayerLedger, error)

	// Progress returns the per-category and overall completion report
	Progress(ctx context.Context, playerID string) (progress.Report, error)
}

// Compile-time check to ensure ChallengeServiceImpl implements the interface
var _ ChallengeService = (*ChallengeServiceImpl)(nil)

// ChallengeServiceImpl implements ChallengeService
type ChallengeServiceImpl struct {
	store *PlayerStore
}

// NewChallengeService creates a new ChallengeServiceImpl
func NewChallengeService(store *PlayerStore) *ChallengeServiceImpl {
	return &ChallengeServiceImpl{store: store}
}

// LoadOrInitialize returns the player's state, creating it on first use
func (s *ChallengeServiceImpl) LoadOrInitialize(ctx context.Context, playerID string) (*models.PlayerState, error) {
	defer s.store.Lock(playerID)()
	return s.store.Load(ctx, playerID)
}

// ListChallenges returns the player's challenges matching filter
func (s *ChallengeServiceImpl) ListChallenges(ctx context.Context, playerID, filter string) ([]models.Challenge, error) {
	if filter != "" && filter != "all" {
		if _, err := models.ParseCategory(filter); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
		}
	}
	state, err := s.LoadOrInitialize(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return progress.Filter(state.Challenges, filter), nil
}

// CompleteChallenge marks a challenge completed. Unknown, already completed
// and locked challenges are left untouched and reported with Applied false.
func (s *ChallengeServiceImpl) CompleteChallenge(ctx context.Context, playerID, challengeID string) (*models.CompletionResult, error) {
	defer s.store.Lock(playerID)()

	state, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result := &models.CompletionResult{Ledger: state.Ledger}
	idx := state.FindChallenge(challengeID)
	switch {
	case idx < 0:
		result.Outcome = models.OutcomeNotFound
	case state.Challenges[idx].IsCompleted:
		result.Outcome = models.OutcomeAlreadyCompleted
	case state.Challenges[idx].IsLocked:
		result.Outcome = models.OutcomeLocked
	}
	if result.Outcome != "" {
		slog.Debug("Challenge completion ignored", "playerId", playerID, "challengeId", challengeID, "outcome", result.Outcome)
		if idx >= 0 {
			ch := state.Challenges[idx]
			result.Challenge = &ch
		}
		return result, nil
	}

	ch := &state.Challenges[idx]
	ch.IsCompleted = true
	ch.Progress = ch.MaxProgress
	tickets := ch.LotteryTickets()
	state.Ledger.TotalPoints += ch.Points
	state.Ledger.LotteryTickets += tickets

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	completed := *ch
	result.Applied = true
	result.Outcome = models.OutcomeCompleted
	result.Challenge = &completed
	result.PointsAwarded = completed.Points
	result.TicketsAwarded = tickets
	result.Ledger = state.Ledger
	result.Notification = &models.Notification{
		Level:   models.NotificationSuccess,
		Message: completionMessage(completed),
	}

	slog.Info("Challenge completed", "playerId", playerID, "challengeId", challengeID, "points", completed.Points, "tickets", tickets, "totalPoints", state.Ledger.TotalPoints)
	return result, nil
}

// completionMessage renders the success toast. Lottery rewards mention the
// reward value even when it is a prize identifier rather than a count.
func completionMessage(ch models.Challenge) string {
	msg := fmt.Sprintf(msgChallengeCompleted, ch.Points)
	if ch.Reward != nil && ch.Reward.Type == models.RewardLottery {
		msg += fmt.Sprintf(msgTicketsAwarded, ch.Reward.Value.String())
	}
	return msg
}

// SetCurrentDay stores day and reconciles the catalog against it
func (s *ChallengeServiceImpl) SetCurrentDay(ctx context.Context, playerID string, day int) (*models.PlayerState, error) {
	if day < 1 {
		return nil, ErrInvalidDay
	}
	defer s.store.Lock(playerID)()

	state, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	previous := state.Ledger.CurrentDay
	state.Ledger.CurrentDay = day
	state.Challenges = catalog.Merge(day, s.store.Catalog(day), state.Challenges)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	slog.Info("Player day updated", "playerId", playerID, "from", previous, "to", day, "challenges", len(state.Challenges))
	return state, nil
}

// GetLedger returns the player's running totals
func (s *ChallengeServiceImpl) GetLedger(ctx context.Context, playerID string) (models.PlayerLedger, error) {
	state, err := s.LoadOrInitialize(ctx, playerID)
	if err != nil {
		return models.PlayerLedger{}, err
	}
	return state.Ledger, nil
}

// Progress returns the completion report of the player's challenges
func (s *ChallengeServiceImpl) Progress(ctx context.Context, playerID string) (progress.Report, error) {
	state, err := s.LoadOrInitialize(ctx, playerID)
	if err != nil {
		return progress.Report{}, err
	}
	return progress.BuildReport(state.Challenges), nil
}
