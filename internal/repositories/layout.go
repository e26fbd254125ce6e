package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

// Persisted keys of a player's state
const (
	KeyCurrentDay     = "current-day"
	KeyTotalPoints    = "total-points"
	KeyLotteryTickets = "lottery-tickets"
	KeyChallenges     = "challenges"
)

// StateKeys lists every persisted key
var StateKeys = []string{KeyCurrentDay, KeyTotalPoints, KeyLotteryTickets, KeyChallenges}

// EncodeState renders a player's state as the persisted key/value layout
func EncodeState(state *models.PlayerState) (map[string]string, error) {
	challenges := state.Challenges
	if challenges == nil {
		challenges = []models.Challenge{}
	}
	raw, err := json.Marshal(challenges)
	if err != nil {
		return nil, fmt.Errorf("encode challenges: %w", err)
	}
	return map[string]string{
		KeyCurrentDay:     strconv.Itoa(state.Ledger.CurrentDay),
		KeyTotalPoints:    strconv.Itoa(state.Ledger.TotalPoints),
		KeyLotteryTickets: strconv.Itoa(state.Ledger.LotteryTickets),
		KeyChallenges:     string(raw),
	}, nil
}

// DecodeState rebuilds a player's state from the persisted layout. Missing
// counters take their initial value; a missing challenge list means the
// player was never initialized. Unparsable or out of range values yield
// ErrMalformedState.
func DecodeState(playerID string, kv map[string]string) (*models.PlayerState, error) {
	rawChallenges, ok := kv[KeyChallenges]
	if !ok || rawChallenges == "" {
		return nil, ErrStateNotFound
	}

	ledger := models.NewPlayerLedger()
	var err error
	if ledger.CurrentDay, err = counter(kv, KeyCurrentDay, 1, 1); err != nil {
		return nil, err
	}
	if ledger.TotalPoints, err = counter(kv, KeyTotalPoints, 0, 0); err != nil {
		return nil, err
	}
	if ledger.LotteryTickets, err = counter(kv, KeyLotteryTickets, 0, 0); err != nil {
		return nil, err
	}

	var challenges []models.Challenge
	if err := json.Unmarshal([]byte(rawChallenges), &challenges); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedState, KeyChallenges, err)
	}

	state := &models.PlayerState{
		PlayerID:   playerID,
		Ledger:     ledger,
		Challenges: challenges,
	}
	state.SyncCompleted()
	return state, nil
}

func counter(kv map[string]string, key string, def, min int) (int, error) {
	raw, ok := kv[key]
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedState, key, err)
	}
	if n < min {
		return 0, fmt.Errorf("%w: %s: %d is below %d", ErrMalformedState, key, n, min)
	}
	return n, nil
}
