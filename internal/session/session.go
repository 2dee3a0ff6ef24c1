// Package session runs one active workout: it walks a mutable copy of a
// plan's exercises, collects raw set/cardio input and turns it into a
// WorkoutHistory record when the workout is finished.
package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var (
	ErrSessionFinished = errors.New("session is finished")
	ErrEmptyPlan       = errors.New("plan has no exercises")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownExercise = errors.New("exercise is not part of the session")
	ErrWrongType       = errors.New("input does not match the exercise type")
)

// SetInput holds the raw, unvalidated text typed for one set.
type SetInput struct {
	Weight string `toml:"weight"`
	Reps   string `toml:"reps"`
	Warmup bool   `toml:"warmup,omitempty"`
}

// Values returns the set as it would be saved.
func (in SetInput) Values() (weight float64, reps int) {
	return parseFloat(in.Weight), parseInt(in.Reps)
}

type CardioInput struct {
	Minutes  string `toml:"minutes"`
	Seconds  string `toml:"seconds"`
	Distance string `toml:"distance"`
}

// Session is the state of one workout in progress. Inputs and notes are keyed
// by exercise id.
type Session struct {
	PlanID    string                         `toml:"plan_id"`
	PlanName  string                         `toml:"plan_name"`
	StartTime time.Time                      `toml:"start_time"`
	Cursor    int                            `toml:"cursor"`
	Finished  bool                           `toml:"finished"`
	Exercises []models.PlanExercise          `toml:"exercises"`
	Types     map[string]models.ExerciseType `toml:"types"`
	Strength  map[string][]SetInput          `toml:"strength"`
	Cardio    map[string]CardioInput         `toml:"cardio"`
	Notes     map[string]string              `toml:"notes"`
}

// Start opens a session on a copy of plan's exercises. The plan itself is
// never touched afterwards.
func Start(plan models.WorkoutPlan, catalog []models.Exercise, now time.Time) (*Session, error) {
	if len(plan.Exercises) == 0 {
		return nil, ErrEmptyPlan
	}

	s := &Session{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		StartTime: now,
		Exercises: make([]models.PlanExercise, len(plan.Exercises)),
		Types:     make(map[string]models.ExerciseType),
		Strength:  make(map[string][]SetInput),
		Cardio:    make(map[string]CardioInput),
		Notes:     make(map[string]string),
	}
	for i, pe := range plan.Exercises {
		s.Exercises[i] = clonePlanExercise(pe)
		if ex, ok := models.FindExercise(catalog, pe.ExerciseID); ok {
			s.Types[ex.ID] = ex.ExerciseType
		}
	}

	return s, nil
}

// Current returns the exercise under the cursor.
func (s *Session) Current() (models.PlanExercise, bool) {
	if s.Finished || s.Cursor < 0 || s.Cursor >= len(s.Exercises) {
		return models.PlanExercise{}, false
	}
	return s.Exercises[s.Cursor], true
}

func (s *Session) Next() error {
	return s.moveCursor(1)
}

func (s *Session) Prev() error {
	return s.moveCursor(-1)
}

func (s *Session) moveCursor(delta int) error {
	if s.Finished {
		return ErrSessionFinished
	}
	s.Cursor = clamp(s.Cursor+delta, 0, len(s.Exercises)-1)
	return nil
}

// RecordSet stores the raw weight/reps text of one set. The set list grows
// as needed so extra sets can be logged beyond the prescription.
func (s *Session) RecordSet(exerciseID string, setIndex int, weight, reps string) error {
	sets, err := s.setsFor(exerciseID, setIndex)
	if err != nil {
		return err
	}
	sets[setIndex].Weight = weight
	sets[setIndex].Reps = reps
	s.Strength[exerciseID] = sets
	return nil
}

// MarkWarmup flags a set as warmup so it is left out of working-set totals.
func (s *Session) MarkWarmup(exerciseID string, setIndex int, warmup bool) error {
	sets, err := s.setsFor(exerciseID, setIndex)
	if err != nil {
		return err
	}
	sets[setIndex].Warmup = warmup
	s.Strength[exerciseID] = sets
	return nil
}

func (s *Session) setsFor(exerciseID string, setIndex int) ([]SetInput, error) {
	if err := s.checkType(exerciseID, models.ExerciseTypeStrength); err != nil {
		return nil, err
	}
	if setIndex < 0 {
		return nil, fmt.Errorf("set %d: %w", setIndex, ErrIndexOutOfRange)
	}

	sets := s.Strength[exerciseID]
	for len(sets) <= setIndex {
		sets = append(sets, SetInput{})
	}
	return sets, nil
}

// Sets returns the set inputs of an exercise, padded to its prescription.
func (s *Session) Sets(exerciseID string) []SetInput {
	sets := append([]SetInput(nil), s.Strength[exerciseID]...)
	for _, pe := range s.Exercises {
		if pe.ExerciseID != exerciseID {
			continue
		}
		for len(sets) < pe.Sets() {
			sets = append(sets, SetInput{})
		}
		break
	}
	return sets
}

func (s *Session) RecordCardio(exerciseID, minutes, seconds, distance string) error {
	if err := s.checkType(exerciseID, models.ExerciseTypeCardio); err != nil {
		return err
	}
	s.Cardio[exerciseID] = CardioInput{
		Minutes:  minutes,
		Seconds:  seconds,
		Distance: distance,
	}
	return nil
}

func (s *Session) SetNote(exerciseID, note string) error {
	if err := s.checkExercise(exerciseID); err != nil {
		return err
	}
	s.Notes[exerciseID] = note
	return nil
}

func (s *Session) checkExercise(exerciseID string) error {
	if s.Finished {
		return ErrSessionFinished
	}
	for _, pe := range s.Exercises {
		if pe.ExerciseID == exerciseID {
			s.ensureMaps()
			return nil
		}
	}
	return fmt.Errorf("%q: %w", exerciseID, ErrUnknownExercise)
}

// checkType is checkExercise plus a match against the recorded exercise type.
// Entries of unknown type accept either kind of input.
func (s *Session) checkType(exerciseID string, want models.ExerciseType) error {
	if err := s.checkExercise(exerciseID); err != nil {
		return err
	}
	if t, ok := s.Types[exerciseID]; ok && t != want {
		return fmt.Errorf("%q is %s: %w", exerciseID, t, ErrWrongType)
	}
	return nil
}

// Reorder moves the exercise at from to to. The cursor keeps pointing at the
// exercise it was on. A destination outside the sequence is ignored.
func (s *Session) Reorder(from, to int) error {
	if s.Finished {
		return ErrSessionFinished
	}
	n := len(s.Exercises)
	if from < 0 || from >= n {
		return fmt.Errorf("move from %d: %w", from, ErrIndexOutOfRange)
	}
	if to < 0 || to >= n || to == from {
		return nil
	}

	moved := s.Exercises[from]
	list := append(s.Exercises[:from:from], s.Exercises[from+1:]...)
	list = append(list[:to], append([]models.PlanExercise{moved}, list[to:]...)...)
	s.Exercises = list

	switch {
	case s.Cursor == from:
		s.Cursor = to
	case s.Cursor > from && s.Cursor <= to:
		s.Cursor--
	case s.Cursor < from && s.Cursor >= to:
		s.Cursor++
	}
	return nil
}

// Remove drops the exercise at index from the session. Removing the last
// remaining exercise finishes the session.
func (s *Session) Remove(index int) error {
	if s.Finished {
		return ErrSessionFinished
	}
	if index < 0 || index >= len(s.Exercises) {
		return fmt.Errorf("remove %d: %w", index, ErrIndexOutOfRange)
	}

	s.Exercises = append(s.Exercises[:index:index], s.Exercises[index+1:]...)
	if s.Cursor >= index {
		s.Cursor = max(0, s.Cursor-1)
	}
	if len(s.Exercises) == 0 {
		s.Finished = true
	}
	return nil
}

// Replace swaps the exercise at index for ex. The prescription survives only
// when the exercise type stays the same; otherwise the defaults of the new
// type apply.
func (s *Session) Replace(index int, ex models.Exercise) error {
	if s.Finished {
		return ErrSessionFinished
	}
	if index < 0 || index >= len(s.Exercises) {
		return fmt.Errorf("replace %d: %w", index, ErrIndexOutOfRange)
	}
	s.ensureMaps()

	old := s.Exercises[index]
	if oldType, ok := s.Types[old.ExerciseID]; ok && oldType == ex.ExerciseType {
		replaced := clonePlanExercise(old)
		replaced.ExerciseID = ex.ID
		s.Exercises[index] = replaced
	} else {
		s.Exercises[index] = models.NewPlanExercise(ex)
	}
	s.Types[ex.ID] = ex.ExerciseType
	return nil
}

// Finalize converts the collected input into a history record and finishes
// the session. It returns a nil record when nothing was performed.
func (s *Session) Finalize(now time.Time) (*models.WorkoutHistory, error) {
	if s.Finished {
		return nil, ErrSessionFinished
	}
	s.Finished = true

	var performed []models.PerformedExercise
	for _, pe := range s.Exercises {
		notes := s.Notes[pe.ExerciseID]
		switch s.Types[pe.ExerciseID] {
		case models.ExerciseTypeStrength:
			var sets []models.PerformedSet
			for _, in := range s.Strength[pe.ExerciseID] {
				set := models.PerformedSet{
					Weight:   parseFloat(in.Weight),
					Reps:     parseInt(in.Reps),
					IsWarmup: in.Warmup,
				}
				if set.Reps > 0 {
					sets = append(sets, set)
				}
			}
			if len(sets) > 0 || notes != "" {
				performed = append(performed, models.PerformedExercise{
					ExerciseID: pe.ExerciseID,
					Notes:      notes,
					Sets:       sets,
				})
			}
		case models.ExerciseTypeCardio:
			in := s.Cardio[pe.ExerciseID]
			total := parseInt(in.Minutes)*60 + parseInt(in.Seconds)
			if total > 0 || notes != "" {
				cardio := &models.CardioPerformance{Duration: total}
				if d := parseFloat(in.Distance); d > 0 {
					cardio.Distance = &d
				}
				performed = append(performed, models.PerformedExercise{
					ExerciseID:        pe.ExerciseID,
					Notes:             notes,
					CardioPerformance: cardio,
				})
			}
		}
	}

	if len(performed) == 0 {
		return nil, nil
	}

	return &models.WorkoutHistory{
		PlanID:    s.PlanID,
		PlanName:  s.PlanName,
		Date:      now,
		Duration:  s.Elapsed(now),
		Exercises: performed,
	}, nil
}

// Elapsed returns whole seconds since the session started.
func (s *Session) Elapsed(now time.Time) int {
	d := now.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// Progress returns the cursor position as a fraction of the sequence.
func (s *Session) Progress() float64 {
	if len(s.Exercises) == 0 {
		return 1
	}
	return float64(s.Cursor+1) / float64(len(s.Exercises))
}

// ensureMaps restores nil maps, which happens when a state file with empty
// tables is decoded.
func (s *Session) ensureMaps() {
	if s.Types == nil {
		s.Types = make(map[string]models.ExerciseType)
	}
	if s.Strength == nil {
		s.Strength = make(map[string][]SetInput)
	}
	if s.Cardio == nil {
		s.Cardio = make(map[string]CardioInput)
	}
	if s.Notes == nil {
		s.Notes = make(map[string]string)
	}
}

// PreviousPerformance returns the newest performance of exerciseID found in
// history, which must be sorted newest first.
func PreviousPerformance(history []models.WorkoutHistory, exerciseID string) *models.PerformedExercise {
	for _, w := range history {
		for _, pe := range w.Exercises {
			if pe.ExerciseID == exerciseID && pe.HasPerformance() {
				found := pe
				return &found
			}
		}
	}
	return nil
}

func clonePlanExercise(pe models.PlanExercise) models.PlanExercise {
	c := pe
	if pe.NumberOfSets != nil {
		v := *pe.NumberOfSets
		c.NumberOfSets = &v
	}
	if pe.TargetWeight != nil {
		v := *pe.TargetWeight
		c.TargetWeight = &v
	}
	if pe.Duration != nil {
		v := *pe.Duration
		c.Duration = &v
	}
	return c
}

// parseFloat and parseInt read typed input leniently: blank or invalid text is 0.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// "10.5" reads as 10, like a number input would.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
