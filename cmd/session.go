package cmd

import (
	"fmt"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
)

// sessionExercise returns the session entry a command works on: the one at
// the 1-based position exNum, or the current one when exNum is 0.
func sessionExercise(s *session.Session, exNum int) (int, models.PlanExercise, error) {
	if s.Finished {
		return 0, models.PlanExercise{}, session.ErrSessionFinished
	}
	if exNum == 0 {
		pe, ok := s.Current()
		if !ok {
			return 0, models.PlanExercise{}, fmt.Errorf("No current exercise")
		}
		return s.Cursor, pe, nil
	}

	idx, err := parseIndex(fmt.Sprint(exNum), len(s.Exercises))
	if err != nil {
		return 0, models.PlanExercise{}, err
	}
	return idx, s.Exercises[idx], nil
}

func exerciseLabel(ex models.Exercise, fallbackID string) string {
	if ex.Name == "" {
		return fallbackID
	}
	return ex.Name
}
