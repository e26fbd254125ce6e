package models

// PlayerLedger holds the running totals of a player
type PlayerLedger struct {
	CurrentDay            int      `json:"currentDay"`
	TotalPoints           int      `json:"totalPoints"`
	LotteryTickets        int      `json:"lotteryTickets"`
	CompletedChallengeIDs []string `json:"completedChallengeIds"`
}

// NewPlayerLedger returns the ledger created on first load
func NewPlayerLedger() PlayerLedger {
	return PlayerLedger{
		CurrentDay:            1,
		CompletedChallengeIDs: []string{},
	}
}

// PlayerState is everything persisted for one player: the ledger plus the
// challenge list carrying completion and progress flags.
type PlayerState struct {
	PlayerID   string       `json:"playerId"`
	Ledger     PlayerLedger `json:"ledger"`
	Challenges []Challenge  `json:"challenges"`
}

// FindChallenge returns the index of the challenge with the given id, or -1
func (s *PlayerState) FindChallenge(id string) int {
	for i := range s.Challenges {
		if s.Challenges[i].ID == id {
			return i
		}
	}
	return -1
}

// SyncCompleted rebuilds the completed id set from the challenge list
func (s *PlayerState) SyncCompleted() {
	ids := make([]string, 0, len(s.Challenges))
	for _, c := range s.Challenges {
		if c.IsCompleted {
			ids = append(ids, c.ID)
		}
	}
	s.Ledger.CompletedChallengeIDs = ids
}
