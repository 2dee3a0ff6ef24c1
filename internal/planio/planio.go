// Package planio converts workout plans to and from the shareable JSON plan
// document. Durations are minutes in the document and seconds everywhere else.
package planio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var (
	ErrInvalidDocument = errors.New("invalid plan document")
	ErrNoExercises     = errors.New("no valid exercises found in the imported file")
)

type Document struct {
	Name      string  `json:"name"`
	Exercises []Entry `json:"exercises"`
}

type Entry struct {
	Exercise    ExerciseDef `json:"exercise"`
	PlanDetails Details     `json:"planDetails"`
}

type ExerciseDef struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	ExerciseType string `json:"exerciseType"`
}

type Details struct {
	NumberOfSets *int     `json:"numberOfSets,omitempty"`
	RepRange     string   `json:"repRange,omitempty"`
	TargetWeight *float64 `json:"targetWeight,omitempty"`
	Duration     *float64 `json:"duration,omitempty"` // minutes
	Notes        string   `json:"notes,omitempty"`
}

// Target is where imported exercises and plans end up.
type Target interface {
	Exercises() []models.Exercise
	Plans() []models.WorkoutPlan
	AddExercise(ctx context.Context, ex models.Exercise) (*models.Exercise, error)
	AddPlan(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error)
}

// Export builds the document for plan. Entries whose exercise is not in the
// catalog are left out.
func Export(plan models.WorkoutPlan, catalog []models.Exercise) Document {
	doc := Document{Name: plan.Name, Exercises: []Entry{}}
	for _, pe := range plan.Exercises {
		ex, ok := models.FindExercise(catalog, pe.ExerciseID)
		if !ok {
			continue
		}

		details := Details{
			NumberOfSets: pe.NumberOfSets,
			RepRange:     pe.RepRange,
			TargetWeight: pe.TargetWeight,
			Notes:        pe.Notes,
		}
		if pe.Duration != nil && *pe.Duration != 0 {
			minutes := float64(*pe.Duration) / 60
			details.Duration = &minutes
		}

		doc.Exercises = append(doc.Exercises, Entry{
			Exercise: ExerciseDef{
				Name:         ex.Name,
				Category:     string(ex.Category),
				ExerciseType: string(ex.ExerciseType),
			},
			PlanDetails: details,
		})
	}
	return doc
}

func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

var whitespace = regexp.MustCompile(`\s+`)

// ExportFileName returns the file name a plan is exported to.
func ExportFileName(plan models.WorkoutPlan) string {
	return fmt.Sprintf("gymratting-plan-%s.json", whitespace.ReplaceAllString(plan.Name, "_"))
}

// rawDocument keeps the exercises array as raw JSON so a missing array can be
// told apart from an empty one.
type rawDocument struct {
	Name      string           `json:"name"`
	Exercises *json.RawMessage `json:"exercises"`
}

// Parse decodes and validates a plan document. Every problem found is
// reported in one error wrapping ErrInvalidDocument.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var errs error
	if strings.TrimSpace(raw.Name) == "" {
		errs = multierr.Append(errs, errors.New("missing plan name"))
	}

	doc := &Document{Name: raw.Name}
	if raw.Exercises == nil {
		errs = multierr.Append(errs, errors.New("missing exercises array"))
	} else if err := json.Unmarshal(*raw.Exercises, &doc.Exercises); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("exercises must be an array of entries: %w", err))
	}

	for i, e := range doc.Exercises {
		errs = multierr.Append(errs, validateEntry(i, e))
	}

	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, errs)
	}
	if len(doc.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	return doc, nil
}

func validateEntry(i int, e Entry) error {
	var errs error
	if strings.TrimSpace(e.Exercise.Name) == "" {
		errs = multierr.Append(errs, fmt.Errorf("entry %d: missing exercise name", i+1))
	}
	if _, err := models.ParseCategory(e.Exercise.Category); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i+1, err))
	}
	if _, err := models.ParseExerciseType(e.Exercise.ExerciseType); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i+1, err))
	}
	if d := e.PlanDetails.Duration; d != nil && *d < 0 {
		errs = multierr.Append(errs, fmt.Errorf("entry %d: negative duration", i+1))
	}
	return errs
}

// Import parses data and adds the plan it describes to target. Exercises are
// matched by name ignoring case; missing ones are created first. The plan
// name gets an " (Imported N)" suffix when it is already taken.
func Import(ctx context.Context, data []byte, target Target) (*models.WorkoutPlan, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	entries := make([]models.PlanExercise, 0, len(doc.Exercises))
	for _, e := range doc.Exercises {
		ex, ok := models.FindExerciseByName(target.Exercises(), e.Exercise.Name)
		if !ok {
			// Parse already checked both values.
			category, _ := models.ParseCategory(e.Exercise.Category)
			exType, _ := models.ParseExerciseType(e.Exercise.ExerciseType)

			created, err := target.AddExercise(ctx, models.Exercise{
				Name:         strings.TrimSpace(e.Exercise.Name),
				Category:     category,
				ExerciseType: exType,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create new exercise %q, import aborted: %w", e.Exercise.Name, err)
			}
			log.Debugf("import created exercise %q", created.Name)
			ex = *created
		}

		pe := models.PlanExercise{
			ExerciseID:   ex.ID,
			NumberOfSets: e.PlanDetails.NumberOfSets,
			RepRange:     e.PlanDetails.RepRange,
			TargetWeight: e.PlanDetails.TargetWeight,
			Notes:        e.PlanDetails.Notes,
		}
		if d := e.PlanDetails.Duration; d != nil && *d != 0 {
			seconds := int(math.Round(*d * 60))
			pe.Duration = &seconds
		}
		entries = append(entries, pe)
	}

	plan, err := target.AddPlan(ctx, models.WorkoutPlan{
		Name:      UniquePlanName(doc.Name, target.Plans()),
		Exercises: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("save imported plan: %w", err)
	}
	return plan, nil
}

// UniquePlanName returns name, or name with the first free
// " (Imported N)" suffix when a plan already uses it.
func UniquePlanName(name string, plans []models.WorkoutPlan) string {
	taken := make(map[string]bool, len(plans))
	for _, p := range plans {
		taken[p.Name] = true
	}

	candidate := name
	for n := 1; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s (Imported %d)", name, n)
	}
	return candidate
}
