package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gingerprotocol/rewards-backend/internal/lottery"
	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	"github.com/gingerprotocol/rewards-backend/internal/repositories/memory"
)

type lotteryFixture struct {
	challenges *ChallengeServiceImpl
	lottery    *LotteryServiceImpl
	states     *memory.PlayerStateRepository
	draws      *memory.DrawHistoryRepository
}

func newLotteryFixture(t *testing.T, table *lottery.Table, rolls ...float64) *lotteryFixture {
	t.Helper()
	states := memory.NewPlayerStateRepository()
	draws := memory.NewDrawHistoryRepository()
	store := newTestStore(t, states)

	svc := NewLotteryService(store, draws, table, lottery.NewFixedSource(rolls...))
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return &lotteryFixture{
		challenges: NewChallengeService(store),
		lottery:    svc,
		states:     states,
		draws:      draws,
	}
}

// seedTickets initializes the player and overwrites its ticket balance
func (f *lotteryFixture) seedTickets(t *testing.T, playerID, tickets string) {
	t.Helper()
	_, err := f.challenges.LoadOrInitialize(context.Background(), playerID)
	require.NoError(t, err)
	f.states.SetRaw(playerID, repositories.KeyLotteryTickets, tickets)
}

func TestDrawPrize_InsufficientTickets(t *testing.T) {
	f := newLotteryFixture(t, lottery.DefaultTable(), 0.5)
	ctx := context.Background()

	_, err := f.challenges.CompleteChallenge(ctx, "p1", "daily-1")
	require.NoError(t, err)
	before := f.states.Raw("p1")

	draw, err := f.lottery.DrawPrize(ctx, "p1")
	require.ErrorIs(t, err, ErrInsufficientTickets)
	require.Nil(t, draw)
	require.Equal(t, before, f.states.Raw("p1"))

	history, err := f.lottery.History(ctx, "p1", 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestDrawPrize_SpendsOneTicket(t *testing.T) {
	f := newLotteryFixture(t, lottery.DefaultTable(), 0.005, 0.99)
	ctx := context.Background()
	f.seedTickets(t, "p1", "2")

	draw, err := f.lottery.DrawPrize(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, models.PrizeVoyage, draw.Prize.Kind)
	require.Equal(t, 1, draw.TicketsLeft)
	require.False(t, draw.Fallback)
	require.NotEmpty(t, draw.ID)
	require.Equal(t, "Tirage effectué ! Vous avez gagné : Voyage à Paris", draw.Notification.Message)

	draw, err = f.lottery.DrawPrize(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, models.PrizeBonusPoints, draw.Prize.Kind)
	require.Zero(t, draw.TicketsLeft)

	_, err = f.lottery.DrawPrize(ctx, "p1")
	require.ErrorIs(t, err, ErrInsufficientTickets)

	ledger, err := f.challenges.GetLedger(ctx, "p1")
	require.NoError(t, err)
	require.Zero(t, ledger.LotteryTickets)
	require.Zero(t, ledger.TotalPoints)

	history, err := f.lottery.History(ctx, "p1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, models.PrizeBonusPoints, history[0].Prize.Kind)
	require.Equal(t, models.PrizeVoyage, history[1].Prize.Kind)
	for _, d := range history {
		require.Nil(t, d.Notification)
	}
}

func TestDrawPrize_TicketsFromCompletedChallenge(t *testing.T) {
	f := newLotteryFixture(t, lottery.DefaultTable(), 0.25)
	ctx := context.Background()

	_, err := f.challenges.SetCurrentDay(ctx, "p1", 7)
	require.NoError(t, err)
	_, err = f.challenges.CompleteChallenge(ctx, "p1", "weekly-1")
	require.NoError(t, err)

	draw, err := f.lottery.DrawPrize(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, models.PrizeCamera, draw.Prize.Kind)
	require.Zero(t, draw.TicketsLeft)

	ledger, err := f.challenges.GetLedger(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 100, ledger.TotalPoints)
}

func TestDrawPrize_FallbackToLastPrize(t *testing.T) {
	table, err := lottery.NewTable([]models.Prize{
		{Kind: models.PrizeTV, Name: "TV", Probability: 0.1},
		{Kind: models.PrizeGiftCard200, Name: "Carte Cadeau 200€", Probability: 0.2},
	})
	require.NoError(t, err)

	f := newLotteryFixture(t, table, 0.9)
	f.seedTickets(t, "p1", "1")

	draw, err := f.lottery.DrawPrize(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, draw.Fallback)
	require.Equal(t, models.PrizeGiftCard200, draw.Prize.Kind)
	require.Equal(t, 0.9, draw.Roll)
}

func TestPrizes(t *testing.T) {
	f := newLotteryFixture(t, lottery.DefaultTable())
	prizes := f.lottery.Prizes()
	require.Len(t, prizes, 12)
	require.Equal(t, models.PrizeVoyage, prizes[0].Kind)
}
