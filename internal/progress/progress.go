// Package progress computes completion counters for display.
package progress

import "github.com/gingerprotocol/rewards-backend/internal/models"

// CategoryProgress counts completed challenges of one category
type CategoryProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Percentage returns completed/total*100, or 0 for an empty bucket
func (p CategoryProgress) Percentage() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// AggregateByCategory counts challenges per requested category. Every
// requested category is present in the result, even when it has no
// challenges.
func AggregateByCategory(challenges []models.Challenge, categories []models.Category) map[models.Category]CategoryProgress {
	out := make(map[models.Category]CategoryProgress, len(categories))
	for _, c := range categories {
		out[c] = CategoryProgress{}
	}
	for _, ch := range challenges {
		p, ok := out[ch.Category]
		if !ok {
			continue
		}
		p.Total++
		if ch.IsCompleted {
			p.Completed++
		}
		out[ch.Category] = p
	}
	return out
}

// Overall counts every challenge regardless of category
func Overall(challenges []models.Challenge) CategoryProgress {
	var p CategoryProgress
	for _, ch := range challenges {
		p.Total++
		if ch.IsCompleted {
			p.Completed++
		}
	}
	return p
}

// Filter returns the challenges of category, or all of them for "all"
func Filter(challenges []models.Challenge, category string) []models.Challenge {
	if category == "" || category == "all" {
		return challenges
	}
	out := make([]models.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		if string(ch.Category) == category {
			out = append(out, ch)
		}
	}
	return out
}

// Report is the progress card payload
type Report struct {
	Categories []CategoryReport `json:"categories"`
	Overall    CategoryReport   `json:"overall"`
}

// CategoryReport is one row of the progress card
type CategoryReport struct {
	Category   models.Category `json:"category,omitempty"`
	Label      string          `json:"label,omitempty"`
	Completed  int             `json:"completed"`
	Total      int             `json:"total"`
	Percentage float64         `json:"percentage"`
}

// BuildReport aggregates the progress categories in display order
func BuildReport(challenges []models.Challenge) Report {
	agg := AggregateByCategory(challenges, models.ProgressCategories)
	rows := make([]CategoryReport, 0, len(models.ProgressCategories))
	for _, c := range models.ProgressCategories {
		p := agg[c]
		rows = append(rows, CategoryReport{
			Category:   c,
			Label:      c.Label(),
			Completed:  p.Completed,
			Total:      p.Total,
			Percentage: p.Percentage(),
		})
	}
	all := Overall(challenges)
	return Report{
		Categories: rows,
		Overall: CategoryReport{
			Completed:  all.Completed,
			Total:      all.Total,
			Percentage: all.Percentage(),
		},
	}
}
