package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
)

const playerStates = "player_states"

func TestPlayerStateRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("load missing player", func(mt *mtest.T) {
		repo := NewPlayerStateRepository(mt.DB, playerStates)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mtest.TestDb+"."+playerStates, mtest.FirstBatch))

		_, err := repo.Load(context.Background(), "nobody")
		require.ErrorIs(mt, err, repositories.ErrStateNotFound)
	})

	mt.Run("load stored player", func(mt *mtest.T) {
		repo := NewPlayerStateRepository(mt.DB, playerStates)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mtest.TestDb+"."+playerStates, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "current-day", Value: "16"},
			{Key: "total-points", Value: "1010"},
			{Key: "lottery-tickets", Value: "2"},
			{Key: "challenges", Value: `[{"id":"daily-1","category":"daily","isCompleted":true,"maxProgress":1,"progress":1}]`},
			{Key: "updatedAt", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}))

		got, err := repo.Load(context.Background(), "p1")
		require.NoError(mt, err)
		require.Equal(mt, 16, got.Ledger.CurrentDay)
		require.Equal(mt, 1010, got.Ledger.TotalPoints)
		require.Equal(mt, 2, got.Ledger.LotteryTickets)
		require.Equal(mt, []string{"daily-1"}, got.Ledger.CompletedChallengeIDs)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "find", evt.CommandName)
		require.Equal(mt, "p1", evt.Command.Lookup("filter", "_id").StringValue())
	})

	mt.Run("load malformed player", func(mt *mtest.T) {
		repo := NewPlayerStateRepository(mt.DB, playerStates)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mtest.TestDb+"."+playerStates, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "current-day", Value: "zero"},
			{Key: "challenges", Value: "[]"},
		}))

		_, err := repo.Load(context.Background(), "p1")
		require.ErrorIs(mt, err, repositories.ErrMalformedState)
	})

	mt.Run("save upserts one document", func(mt *mtest.T) {
		repo := NewPlayerStateRepository(mt.DB, playerStates)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "p1"}}}},
		))

		err := repo.Save(context.Background(), &models.PlayerState{
			PlayerID:   "p1",
			Ledger:     models.PlayerLedger{CurrentDay: 3, TotalPoints: 45, LotteryTickets: 0},
			Challenges: []models.Challenge{{ID: "daily-1", IsCompleted: true}},
		})
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "update", evt.CommandName)
		updates, err := evt.Command.Lookup("updates").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, updates, 1)

		update := updates[0].Document()
		require.True(mt, update.Lookup("upsert").Boolean())
		require.Equal(mt, "p1", update.Lookup("q", "_id").StringValue())
		require.Equal(mt, "p1", update.Lookup("u", "_id").StringValue())
		require.Equal(mt, "3", update.Lookup("u", "current-day").StringValue())
		require.Equal(mt, "45", update.Lookup("u", "total-points").StringValue())
		require.Equal(mt, "0", update.Lookup("u", "lottery-tickets").StringValue())
		require.Contains(mt, update.Lookup("u", "challenges").StringValue(), `"id":"daily-1"`)
	})

	mt.Run("save failure is wrapped", func(mt *mtest.T) {
		repo := NewPlayerStateRepository(mt.DB, playerStates)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		err := repo.Save(context.Background(), &models.PlayerState{PlayerID: "p1", Ledger: models.NewPlayerLedger()})
		require.ErrorContains(mt, err, "failed to save player state")
	})
}

func TestDrawHistoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("create inserts the record", func(mt *mtest.T) {
		repo := NewDrawHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.Create(context.Background(), &models.DrawResult{
			ID:       "d1",
			PlayerID: "p1",
			Prize:    models.Prize{Kind: models.PrizeCamera, Name: "Appareil Photo DSLR"},
			Roll:     0.25,
			DrawnAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Notification: &models.Notification{
				Level:   models.NotificationSuccess,
				Message: "Tirage effectué ! Vous avez gagné : Appareil Photo DSLR",
			},
		})
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "insert", evt.CommandName)
		require.Equal(mt, "lottery_draws", evt.Command.Lookup("insert").StringValue())
		docs, err := evt.Command.Lookup("documents").Array().Values()
		require.NoError(mt, err)
		doc := docs[0].Document()
		require.Equal(mt, "d1", doc.Lookup("_id").StringValue())
		require.Equal(mt, "camera", doc.Lookup("prize", "kind").StringValue())
		_, err = doc.LookupErr("notification")
		require.Error(mt, err)
	})

	mt.Run("find returns newest first with limit", func(mt *mtest.T) {
		repo := NewDrawHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mtest.TestDb+".lottery_draws", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "d2"},
				{Key: "playerId", Value: "p1"},
				{Key: "prize", Value: bson.D{{Key: "kind", Value: "tv"}, {Key: "name", Value: "TV 4K 65\""}}},
				{Key: "roll", Value: 0.03},
				{Key: "drawnAt", Value: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
			},
			bson.D{
				{Key: "_id", Value: "d1"},
				{Key: "playerId", Value: "p1"},
				{Key: "prize", Value: bson.D{{Key: "kind", Value: "camera"}}},
				{Key: "drawnAt", Value: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			},
		))

		draws, err := repo.FindByPlayerID(context.Background(), "p1", 2)
		require.NoError(mt, err)
		require.Len(mt, draws, 2)
		require.Equal(mt, "d2", draws[0].ID)
		require.Equal(mt, models.PrizeTV, draws[0].Prize.Kind)
		require.Equal(mt, models.PrizeCamera, draws[1].Prize.Kind)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "find", evt.CommandName)
		require.Equal(mt, "p1", evt.Command.Lookup("filter", "playerId").StringValue())
		require.Equal(mt, int64(-1), evt.Command.Lookup("sort", "drawnAt").AsInt64())
		require.Equal(mt, int64(2), evt.Command.Lookup("limit").AsInt64())
	})

	mt.Run("find without draws returns an empty slice", func(mt *mtest.T) {
		repo := NewDrawHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mtest.TestDb+".lottery_draws", mtest.FirstBatch))

		draws, err := repo.FindByPlayerID(context.Background(), "p2", 0)
		require.NoError(mt, err)
		require.NotNil(mt, draws)
		require.Empty(mt, draws)
	})
}
