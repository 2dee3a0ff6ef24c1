package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var ErrInvalidTimeRange = errors.New("invalid time range")

type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeMonth TimeRange = "month"
	RangeWeek  TimeRange = "week"
	RangeToday TimeRange = "today"
)

var TimeRanges = []TimeRange{RangeAll, RangeMonth, RangeWeek, RangeToday}

func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RangeAll, nil
	}
	for _, r := range TimeRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want all, month, week or today)", ErrInvalidTimeRange, s)
}

// Since returns the first instant included by the range, zero for RangeAll.
func (r TimeRange) Since(now time.Time) time.Time {
	switch r {
	case RangeMonth:
		return utils.StartOfMonth(now)
	case RangeWeek:
		return utils.WeekStart(now)
	case RangeToday:
		return utils.StartOfDay(now)
	default:
		return time.Time{}
	}
}

// Filter returns the workouts of history dated inside rng. Order is kept.
func Filter(history []models.WorkoutHistory, rng TimeRange, now time.Time) []models.WorkoutHistory {
	if rng == RangeAll || rng == "" {
		return append([]models.WorkoutHistory(nil), history...)
	}

	since := rng.Since(now)
	var out []models.WorkoutHistory
	for _, w := range history {
		if !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out
}

type CategoryShare struct {
	Category models.Category
	Sets     int
	Percent  float64
}

// CategoryShares returns the category distribution as percentages of all
// working sets, largest first.
func CategoryShares(s *Summary) []CategoryShare {
	total := 0
	for _, n := range s.CategorySets {
		total += n
	}

	shares := make([]CategoryShare, 0, len(s.CategorySets))
	for _, c := range models.Categories {
		n, ok := s.CategorySets[c]
		if !ok {
			continue
		}
		share := CategoryShare{Category: c, Sets: n}
		if total > 0 {
			share.Percent = float64(n) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Sets > shares[j].Sets
	})
	return shares
}

type WeekBucket struct {
	WeekStart string
	Workouts  int
	// Percent is relative to the busiest week.
	Percent float64
}

func WeeklyBuckets(s *Summary) []WeekBucket {
	busiest := 0
	for _, n := range s.WeeklyFrequency {
		busiest = max(busiest, n)
	}

	buckets := make([]WeekBucket, 0, len(s.WeeklyFrequency))
	for week, n := range s.WeeklyFrequency {
		b := WeekBucket{WeekStart: week, Workouts: n}
		if busiest > 0 {
			b.Percent = float64(n) / float64(busiest) * 100
		}
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart < buckets[j].WeekStart
	})
	return buckets
}
