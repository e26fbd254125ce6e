package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/gingerprotocol/rewards-backend/internal/lottery"
	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
)

// LotteryService defines the lottery operations
type LotteryService interface {
	// DrawPrize spends one ticket and draws a prize from the table
	DrawPrize(ctx context.Context, playerID string) (*models.DrawResult, error)

	// Prizes returns the prize table in declared order
	Prizes() []models.Prize

	// History returns the player's latest draws, newest first
	History(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error)
}

// Compile-time check to ensure LotteryServiceImpl implements the interface
var _ LotteryService = (*LotteryServiceImpl)(nil)

// LotteryServiceImpl implements LotteryService
type LotteryServiceImpl struct {
	store  *PlayerStore
	draws  repositories.DrawHistoryRepository
	table  *lottery.Table
	source lottery.Source
	now    func() time.Time
}

// NewLotteryService creates a new LotteryServiceImpl
func NewLotteryService(store *PlayerStore, draws repositories.DrawHistoryRepository, table *lottery.Table, source lottery.Source) *LotteryServiceImpl {
	return &LotteryServiceImpl{
		store:  store,
		draws:  draws,
		table:  table,
		source: source,
		now:    time.Now,
	}
}

// DrawPrize spends one ticket and draws a prize. Without tickets it returns
// ErrInsufficientTickets and changes nothing.
func (s *LotteryServiceImpl) DrawPrize(ctx context.Context, playerID string) (*models.DrawResult, error) {
	defer s.store.Lock(playerID)()

	state, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if state.Ledger.LotteryTickets <= 0 {
		slog.Info("Draw refused without tickets", "playerId", playerID)
		return nil, ErrInsufficientTickets
	}

	roll := s.source.Float64()
	prize, fallback := s.table.Select(roll)
	if fallback {
		slog.Warn("Roll exceeded prize table mass, awarding last prize", "playerId", playerID, "roll", roll, "totalMass", s.table.TotalMass())
	}

	state.Ledger.LotteryTickets--
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	draw := &models.DrawResult{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		Prize:       prize,
		Roll:        roll,
		Fallback:    fallback,
		TicketsLeft: state.Ledger.LotteryTickets,
		DrawnAt:     s.now().UTC(),
		Notification: &models.Notification{
			Level:   models.NotificationSuccess,
			Message: fmt.Sprintf(msgPrizeWon, prize.Name),
		},
	}

	// The ticket is already spent, so a failed history write does not fail the draw.
	// The toast belongs to the response only.
	record := *draw
	record.Notification = nil
	if err := s.draws.Create(ctx, &record); err != nil {
		slog.Error("Failed to record lottery draw", "error", err, "playerId", playerID, "drawId", draw.ID)
	}

	slog.Info("Lottery draw executed", "playerId", playerID, "drawId", draw.ID, "prize", prize.Kind, "ticketsLeft", draw.TicketsLeft)
	return draw, nil
}

// Prizes returns the prize table in declared order
func (s *LotteryServiceImpl) Prizes() []models.Prize {
	return s.table.Prizes()
}

// History returns the player's latest draws, newest first
func (s *LotteryServiceImpl) History(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error) {
	draws, err := s.draws.FindByPlayerID(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lottery draws: %w", err)
	}
	return draws, nil
}
