package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

func TestEncodeDecodeState(t *testing.T) {
	state := &models.PlayerState{
		PlayerID: "p1",
		Ledger:   models.PlayerLedger{CurrentDay: 16, TotalPoints: 330, LotteryTickets: 3},
		Challenges: []models.Challenge{
			{ID: "daily-1", Category: models.CategoryDaily, IsCompleted: true, Progress: 1, MaxProgress: 1,
				Reward: &models.Reward{Type: models.RewardPoints, Value: models.AmountValue(10)}},
			{ID: "lottery-special-1", Category: models.CategoryLottery, MaxProgress: 1,
				Reward: &models.Reward{Type: models.RewardLottery, Value: models.PrizeValue(models.PrizeVoyage)}},
		},
	}

	kv, err := EncodeState(state)
	require.NoError(t, err)
	require.Equal(t, "16", kv[KeyCurrentDay])
	require.Equal(t, "330", kv[KeyTotalPoints])
	require.Equal(t, "3", kv[KeyLotteryTickets])
	require.Contains(t, kv[KeyChallenges], `"value":"voyage"`)

	got, err := DecodeState("p1", kv)
	require.NoError(t, err)
	require.Equal(t, state.Ledger.CurrentDay, got.Ledger.CurrentDay)
	require.Equal(t, state.Ledger.TotalPoints, got.Ledger.TotalPoints)
	require.Equal(t, state.Ledger.LotteryTickets, got.Ledger.LotteryTickets)
	require.Equal(t, []string{"daily-1"}, got.Ledger.CompletedChallengeIDs)
	require.Equal(t, state.Challenges, got.Challenges)
}

func TestDecodeState_Missing(t *testing.T) {
	_, err := DecodeState("p1", map[string]string{})
	require.ErrorIs(t, err, ErrStateNotFound)

	got, err := DecodeState("p1", map[string]string{KeyChallenges: "[]"})
	require.NoError(t, err)
	require.Equal(t, 1, got.Ledger.CurrentDay)
	require.Zero(t, got.Ledger.TotalPoints)
	require.Zero(t, got.Ledger.LotteryTickets)
}

func TestDecodeState_Malformed(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]string
	}{
		{"bad json", map[string]string{KeyChallenges: "{not json"}},
		{"bad day", map[string]string{KeyChallenges: "[]", KeyCurrentDay: "abc"}},
		{"day zero", map[string]string{KeyChallenges: "[]", KeyCurrentDay: "0"}},
		{"negative points", map[string]string{KeyChallenges: "[]", KeyTotalPoints: "-5"}},
		{"bad tickets", map[string]string{KeyChallenges: "[]", KeyLotteryTickets: "1.5"}},
		{"unknown prize", map[string]string{KeyChallenges: `[{"id":"x","reward":{"type":"lottery","value":"yacht"}}]`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState("p1", tt.kv)
			require.ErrorIs(t, err, ErrMalformedState)
		})
	}
}
