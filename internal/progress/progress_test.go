package progress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

func sample() []models.Challenge {
	return []models.Challenge{
		{ID: "d1", Category: models.CategoryDaily, IsCompleted: true},
		{ID: "d2", Category: models.CategoryDaily},
		{ID: "d3", Category: models.CategoryDaily, IsCompleted: true},
		{ID: "w1", Category: models.CategoryWeekly},
		{ID: "l1", Category: models.CategoryLottery, IsCompleted: true},
	}
}

func TestAggregateByCategory(t *testing.T) {
	got := AggregateByCategory(sample(), models.ProgressCategories)

	require.Len(t, got, 4)
	require.Equal(t, CategoryProgress{Completed: 2, Total: 3}, got[models.CategoryDaily])
	require.Equal(t, CategoryProgress{Completed: 0, Total: 1}, got[models.CategoryWeekly])
	require.Equal(t, CategoryProgress{}, got[models.CategoryMilestone])
	require.Equal(t, CategoryProgress{}, got[models.CategoryPremium])
	_, ok := got[models.CategoryLottery]
	require.False(t, ok)
}

func TestPercentage(t *testing.T) {
	require.Zero(t, CategoryProgress{}.Percentage())
	require.InDelta(t, 66.666, CategoryProgress{Completed: 2, Total: 3}.Percentage(), 0.001)
	require.Equal(t, 100.0, CategoryProgress{Completed: 4, Total: 4}.Percentage())
}

func TestOverall(t *testing.T) {
	require.Equal(t, CategoryProgress{Completed: 3, Total: 5}, Overall(sample()))
}

func TestFilter(t *testing.T) {
	require.Len(t, Filter(sample(), "all"), 5)
	require.Len(t, Filter(sample(), ""), 5)
	require.Len(t, Filter(sample(), "daily"), 3)
	require.Len(t, Filter(sample(), "premium"), 0)
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(sample())

	require.Len(t, report.Categories, 4)
	require.Equal(t, models.CategoryDaily, report.Categories[0].Category)
	require.Equal(t, "Quotidien", report.Categories[0].Label)
	require.Equal(t, 2, report.Categories[0].Completed)
	require.Zero(t, report.Categories[3].Percentage)
	require.Equal(t, 3, report.Overall.Completed)
	require.Equal(t, 5, report.Overall.Total)
	require.InDelta(t, 60.0, report.Overall.Percentage, 1e-9)
}
