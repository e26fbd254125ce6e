// Package catalog builds the list of challenges available on a given program day.
package catalog

import "github.com/gingerprotocol/rewards-backend/internal/models"

// Day thresholds at which the special lottery challenges are appended
const (
	SpecialDrawDay  = 16
	MegaDrawDay     = 25
	UltimateDrawDay = 50
)

// Generate returns the catalog for currentDay. It is pure: the same day
// always yields the same challenges, only IsLocked depends on the day.
// Days below 1 are treated as day 1.
func Generate(currentDay int) []models.Challenge {
	if currentDay < 1 {
		currentDay = 1
	}

	challenges := baseChallenges()
	if currentDay >= SpecialDrawDay {
		challenges = append(challenges, specialDrawChallenges()...)
	}
	if currentDay >= MegaDrawDay {
		challenges = append(challenges, megaDrawChallenges()...)
	}
	if currentDay >= UltimateDrawDay {
		challenges = append(challenges, ultimateDrawChallenges()...)
	}

	for i := range challenges {
		challenges[i].IsLocked = currentDay < challenges[i].DaysRequired
	}
	return challenges
}

// Merge overlays the completion state of previous onto a freshly generated
// catalog. Challenges are matched by id; IsCompleted and Progress survive,
// IsLocked comes from fresh. Challenges only present in previous are kept
// at the end, relocked against currentDay, so nothing a player earned
// disappears. Ids appear at most once; the first persisted copy wins.
func Merge(currentDay int, fresh, previous []models.Challenge) []models.Challenge {
	byID := make(map[string]models.Challenge, len(previous))
	for _, c := range previous {
		byID[c.ID] = c
	}

	merged := make([]models.Challenge, 0, len(fresh))
	seen := make(map[string]struct{}, len(fresh))
	for _, c := range fresh {
		if old, ok := byID[c.ID]; ok {
			c.IsCompleted = old.IsCompleted
			c.Progress = old.Progress
		}
		merged = append(merged, c)
		seen[c.ID] = struct{}{}
	}
	for _, c := range previous {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		c.IsLocked = currentDay < c.DaysRequired
		merged = append(merged, c)
		seen[c.ID] = struct{}{}
	}
	return merged
}
