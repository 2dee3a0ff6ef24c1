package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory     = errors.New("invalid exercise category")
	ErrInvalidExerciseType = errors.New("invalid exercise type")
)

type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryBiceps    Category = "Biceps"
	CategoryTriceps   Category = "Triceps"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryCardio    Category = "Cardio"
	CategoryCore      Category = "Core"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryChest,
	CategoryBack,
	CategoryBiceps,
	CategoryTriceps,
	CategoryLegs,
	CategoryShoulders,
	CategoryCore,
	CategoryCardio,
}

type ExerciseType string

const (
	ExerciseTypeStrength ExerciseType = "Strength"
	ExerciseTypeCardio   ExerciseType = "Cardio"
)

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ParseExerciseType matches s against Strength/Cardio, ignoring case.
func ParseExerciseType(s string) (ExerciseType, error) {
	for _, t := range []ExerciseType{ExerciseTypeStrength, ExerciseTypeCardio} {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidExerciseType, s)
}

type Exercise struct {
	ID           string       `json:"id" toml:"id"`
	UserID       string       `json:"user_id" toml:"user_id"`
	Name         string       `json:"name" toml:"name"`
	Category     Category     `json:"category" toml:"category"`
	ExerciseType ExerciseType `json:"exerciseType" toml:"exercise_type"`
}

func (e Exercise) IsStrength() bool { return e.ExerciseType == ExerciseTypeStrength }

func (e Exercise) IsCardio() bool { return e.ExerciseType == ExerciseTypeCardio }

// FindExercise returns the catalog entry with the given id.
func FindExercise(catalog []Exercise, id string) (Exercise, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// FindExerciseByName looks an exercise up by name, case insensitive.
func FindExerciseByName(catalog []Exercise, name string) (Exercise, bool) {
	for _, ex := range catalog {
		if strings.EqualFold(ex.Name, strings.TrimSpace(name)) {
			return ex, true
		}
	}
	return Exercise{}, false
}

type Profile struct {
	ID     string `json:"id" toml:"id"`
	Name   string `json:"name" toml:"name"`
	Avatar string `json:"avatar" toml:"avatar"`
}

var Avatars = []string{"🏋️", "💪", "🤸", "🧘", "🏃", "🚴", "🥊", "🏆"}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name         string `toml:"name"`
	Category     string `toml:"category"`
	ExerciseType string `toml:"type"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
