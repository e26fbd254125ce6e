package models

import (
	"encoding/json"
	"fmt"
)

// Category determines which progress bucket a challenge counts toward
type Category string

const (
	CategoryDaily     Category = "daily"
	CategoryWeekly    Category = "weekly"
	CategoryMilestone Category = "milestone"
	CategoryPremium   Category = "premium"
	CategoryLottery   Category = "lottery"
)

// ProgressCategories are the buckets shown in the general progress card
var ProgressCategories = []Category{CategoryDaily, CategoryWeekly, CategoryMilestone, CategoryPremium}

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryDaily, CategoryWeekly, CategoryMilestone, CategoryPremium, CategoryLottery:
		return c, nil
	default:
		return "", fmt.Errorf("unknown challenge category %q", s)
	}
}

// Label returns the display name of the category
func (c Category) Label() string {
	switch c {
	case CategoryDaily:
		return "Quotidien"
	case CategoryWeekly:
		return "Hebdomadaire"
	case CategoryMilestone:
		return "Étape"
	case CategoryPremium:
		return "Premium"
	case CategoryLottery:
		return "Tirages"
	default:
		return string(c)
	}
}

// Difficulty is informational only
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyEpic   Difficulty = "epic"
)

// Label returns the display name of the difficulty
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Facile"
	case DifficultyMedium:
		return "Moyen"
	case DifficultyHard:
		return "Difficile"
	default:
		return "Épique"
	}
}

// RewardType is the kind of reward attached to a challenge
type RewardType string

const (
	RewardPoints  RewardType = "points"
	RewardLottery RewardType = "lottery"
	RewardSpecial RewardType = "special"
)

// RewardValue holds either a numeric amount or a thematic prize identifier.
// It is encoded as a JSON number or a JSON string respectively.
type RewardValue struct {
	Amount int
	Prize  PrizeKind
}

// AmountValue builds a numeric reward value
func AmountValue(n int) RewardValue {
	return RewardValue{Amount: n}
}

// PrizeValue builds a thematic (string) reward value
func PrizeValue(k PrizeKind) RewardValue {
	return RewardValue{Prize: k}
}

// IsNumeric reports whether the value is a number rather than a prize identifier
func (v RewardValue) IsNumeric() bool {
	return v.Prize == ""
}

func (v RewardValue) String() string {
	if v.IsNumeric() {
		return fmt.Sprintf("%d", v.Amount)
	}
	return string(v.Prize)
}

// MarshalJSON implements json.Marshaler
func (v RewardValue) MarshalJSON() ([]byte, error) {
	if v.IsNumeric() {
		return json.Marshal(v.Amount)
	}
	return json.Marshal(string(v.Prize))
}

// UnmarshalJSON implements json.Unmarshaler
func (v *RewardValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = AmountValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("reward value must be a number or a string: %w", err)
	}
	kind, err := ParsePrizeKind(s)
	if err != nil {
		return err
	}
	*v = PrizeValue(kind)
	return nil
}

// Reward is granted when a challenge is completed
type Reward struct {
	Type        RewardType  `json:"type"`
	Value       RewardValue `json:"value"`
	Description string      `json:"description"`
	Icon        Icon        `json:"iconName"`
}

// Challenge is a single completable task with a day based unlock gate
type Challenge struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     Category   `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Points       int        `json:"points"`
	DaysRequired int        `json:"daysRequired"`
	IsCompleted  bool       `json:"isCompleted"`
	IsLocked     bool       `json:"isLocked"`
	Progress     int        `json:"progress"`
	MaxProgress  int        `json:"maxProgress"`
	Icon         Icon       `json:"iconName"`
	Reward       *Reward    `json:"reward,omitempty"`
}

// LotteryTickets returns the number of tickets granted on completion.
// Only lottery rewards with a numeric value grant tickets.
func (c Challenge) LotteryTickets() int {
	if c.Reward == nil || c.Reward.Type != RewardLottery || !c.Reward.Value.IsNumeric() {
		return 0
	}
	return c.Reward.Value.Amount
}
