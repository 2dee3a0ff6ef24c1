package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func TestParseTimeRange(t *testing.T) {
	for in, want := range map[string]TimeRange{
		"":       RangeAll,
		"all":    RangeAll,
		" Month": RangeMonth,
		"WEEK":   RangeWeek,
		"today":  RangeToday,
	} {
		got, err := ParseTimeRange(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseTimeRange("year")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestFilter(t *testing.T) {
	history := []models.WorkoutHistory{
		{ID: "today", Date: now.Add(-2 * time.Hour)},
		{ID: "sunday", Date: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)},
		{ID: "saturday", Date: time.Date(2024, 5, 11, 23, 59, 0, 0, time.UTC)},
		{ID: "first", Date: time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)},
		{ID: "april", Date: time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)},
	}

	idsOf := func(hs []models.WorkoutHistory) []string {
		var out []string
		for _, h := range hs {
			out = append(out, h.ID)
		}
		return out
	}

	assert.Len(t, Filter(history, RangeAll, now), 5)
	assert.Equal(t, []string{"today", "sunday", "saturday", "first"}, idsOf(Filter(history, RangeMonth, now)))
	assert.Equal(t, []string{"today", "sunday"}, idsOf(Filter(history, RangeWeek, now)))
	assert.Equal(t, []string{"today"}, idsOf(Filter(history, RangeToday, now)))
	assert.Empty(t, Filter(nil, RangeWeek, now))
}

func TestAnalysisPrompt(t *testing.T) {
	s := &Summary{
		TotalWorkouts:   12,
		TotalVolume:     45250.5,
		AvgDuration:     47,
		CategorySets:    map[models.Category]int{models.CategoryLegs: 4, models.CategoryChest: 9},
		WeeklyFrequency: map[string]int{"2024-05-12": 3},
	}

	prompt := AnalysisPrompt(s)
	assert.Contains(t, prompt, "- Total Workouts: 12\n")
	assert.Contains(t, prompt, "- Total Volume Lifted: 45,250.5 kg\n")
	assert.Contains(t, prompt, "- Average Workout Duration: 47 minutes\n")
	assert.Contains(t, prompt, `{"Chest":9,"Legs":4}`)
	assert.Contains(t, prompt, `{"2024-05-12":3}`)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "1,234,567.25", groupThousands(1234567.25))
	assert.Equal(t, "-12,000", groupThousands(-12000))
}
