// Package analytics derives read-only statistics from workout history.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

const (
	weeklyWindow   = 28 * 24 * time.Hour
	maxRecords     = 3
	maxCardioBests = 2
)

type Input struct {
	// History is the time-filtered history the totals are computed over.
	History []models.WorkoutHistory
	// FullHistory feeds the weekly frequency, which ignores the filter.
	FullHistory []models.WorkoutHistory
	Exercises   []models.Exercise
	Now         time.Time
}

type PersonalRecord struct {
	ExerciseID string
	Name       string
	Weight     float64
	Reps       int
	OneRepMax  int
}

type CardioBest struct {
	ExerciseID  string
	Name        string
	Sessions    int
	MaxDuration int // seconds
	MaxDistance float64
}

type Summary struct {
	TotalWorkouts   int
	TotalSets       int
	TotalVolume     float64
	TotalDuration   int // seconds
	AvgDuration     int // minutes
	WorkoutDensity  int // volume per minute
	CategorySets    map[models.Category]int
	WeeklyFrequency map[string]int
	PersonalRecords []PersonalRecord
	CardioBests     []CardioBest
}

type prCandidate struct {
	PersonalRecord
	order int
}

type cardioCandidate struct {
	CardioBest
	order int
}

// Compute builds the summary for in. It never fails: entries referencing
// exercises missing from the catalog only count towards workouts and duration.
func Compute(in Input) *Summary {
	s := &Summary{
		CategorySets:    make(map[models.Category]int),
		WeeklyFrequency: make(map[string]int),
		PersonalRecords: []PersonalRecord{},
		CardioBests:     []CardioBest{},
	}

	catalog := make(map[string]models.Exercise, len(in.Exercises))
	for _, ex := range in.Exercises {
		catalog[ex.ID] = ex
	}

	prs := make(map[string]*prCandidate)
	cardio := make(map[string]*cardioCandidate)

	for _, w := range in.History {
		s.TotalWorkouts++
		s.TotalDuration += w.Duration

		for _, pe := range w.Exercises {
			ex, ok := catalog[pe.ExerciseID]
			if !ok {
				continue
			}

			switch ex.ExerciseType {
			case models.ExerciseTypeStrength:
				for _, set := range pe.WorkingSets() {
					s.TotalSets++
					s.TotalVolume += set.Weight * float64(set.Reps)
					s.CategorySets[ex.Category]++

					best, found := prs[ex.ID]
					if !found {
						best = &prCandidate{
							PersonalRecord: PersonalRecord{ExerciseID: ex.ID, Name: ex.Name},
							order:          len(prs),
						}
						prs[ex.ID] = best
						best.Weight = set.Weight
						best.Reps = set.Reps
					} else if set.Weight > best.Weight {
						best.Weight = set.Weight
						best.Reps = set.Reps
					}
				}
			case models.ExerciseTypeCardio:
				if pe.CardioPerformance == nil {
					continue
				}
				best, found := cardio[ex.ID]
				if !found {
					best = &cardioCandidate{
						CardioBest: CardioBest{ExerciseID: ex.ID, Name: ex.Name},
						order:      len(cardio),
					}
					cardio[ex.ID] = best
				}
				best.Sessions++
				best.MaxDuration = max(best.MaxDuration, pe.CardioPerformance.Duration)
				if d := pe.CardioPerformance.Distance; d != nil && *d > best.MaxDistance {
					best.MaxDistance = *d
				}
			}
		}
	}

	if s.TotalWorkouts > 0 {
		s.AvgDuration = int(math.Round(float64(s.TotalDuration) / float64(s.TotalWorkouts) / 60))
	}
	if s.TotalDuration > 0 {
		minutes := float64(s.TotalDuration) / 60
		s.WorkoutDensity = int(math.Round(s.TotalVolume / minutes))
	}

	s.WeeklyFrequency = weeklyFrequency(in.FullHistory, in.Now)
	s.PersonalRecords = rankRecords(prs)
	s.CardioBests = rankCardio(cardio)

	return s
}

func weeklyFrequency(history []models.WorkoutHistory, now time.Time) map[string]int {
	freq := make(map[string]int)
	cutoff := now.Add(-weeklyWindow)
	for _, w := range history {
		if !w.Date.After(cutoff) {
			continue
		}
		key := utils.DateKey(utils.WeekStart(w.Date.In(now.Location())))
		freq[key]++
	}
	return freq
}

func rankRecords(prs map[string]*prCandidate) []PersonalRecord {
	candidates := make([]*prCandidate, 0, len(prs))
	for _, c := range prs {
		if c.Weight <= 0 {
			continue
		}
		c.OneRepMax = utils.EstimateOneRM(c.Weight, c.Reps)
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].OneRepMax != candidates[j].OneRepMax {
			return candidates[i].OneRepMax > candidates[j].OneRepMax
		}
		return candidates[i].order < candidates[j].order
	})

	out := []PersonalRecord{}
	for i := 0; i < len(candidates) && i < maxRecords; i++ {
		out = append(out, candidates[i].PersonalRecord)
	}
	return out
}

func rankCardio(cardio map[string]*cardioCandidate) []CardioBest {
	candidates := make([]*cardioCandidate, 0, len(cardio))
	for _, c := range cardio {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Sessions != candidates[j].Sessions {
			return candidates[i].Sessions > candidates[j].Sessions
		}
		return candidates[i].order < candidates[j].order
	})

	out := []CardioBest{}
	for i := 0; i < len(candidates) && i < maxCardioBests; i++ {
		out = append(out, candidates[i].CardioBest)
	}
	return out
}
