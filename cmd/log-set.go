package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
)

var (
	setWeight    string
	setReps      string
	setExercise  int
	warmupOff    bool
	cardioMin    string
	cardioSec    string
	cardioDist   string
	noteExercise int
)

// setPosition reads the optional 1-based set number. Without one the set
// after the last logged one is used.
func setPosition(args []string, s *session.Session, exerciseID string) (int, error) {
	if len(args) == 0 {
		for i, in := range s.Strength[exerciseID] {
			if in.Reps == "" {
				return i, nil
			}
		}
		return len(s.Strength[exerciseID]), nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Invalid set number. Must be a positive integer")
	}
	return n - 1, nil
}

// warmupPosition reads the optional 1-based set number. Without one the last
// logged set is used.
func warmupPosition(args []string, s *session.Session, exerciseID string) (int, error) {
	if len(args) > 0 {
		return setPosition(args, s, exerciseID)
	}
	sets := s.Strength[exerciseID]
	for i := len(sets) - 1; i >= 0; i-- {
		if sets[i].Reps != "" {
			return i, nil
		}
	}
	return 0, fmt.Errorf("No logged set to mark, pass a set number")
}

var logSetCmd = &cobra.Command{
	Use:   "log-set [set-number]",
	Short: "Log weight and reps for a set of the current exercise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		_, pe, err := sessionExercise(s, setExercise)
		if err != nil {
			return err
		}
		if s.Types[pe.ExerciseID] == models.ExerciseTypeCardio {
			return fmt.Errorf("This is a cardio exercise, use `gymrat log-cardio`")
		}

		setIdx, err := setPosition(args, s, pe.ExerciseID)
		if err != nil {
			return err
		}
		if err := s.RecordSet(pe.ExerciseID, setIdx, setWeight, setReps); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Set %d: %skg × %s\n", setIdx+1, orZero(setWeight), setReps)
		return nil
	},
}

var warmupCmd = &cobra.Command{
	Use:   "warmup [set-number]",
	Short: "Mark a set as warmup so it does not count towards totals",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		_, pe, err := sessionExercise(s, setExercise)
		if err != nil {
			return err
		}
		setIdx, err := warmupPosition(args, s, pe.ExerciseID)
		if err != nil {
			return err
		}
		if err := s.MarkWarmup(pe.ExerciseID, setIdx, !warmupOff); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		if warmupOff {
			fmt.Printf("✅ Set %d is a working set again\n", setIdx+1)
		} else {
			fmt.Printf("✅ Set %d marked as warmup\n", setIdx+1)
		}
		return nil
	},
}

var logCardioCmd = &cobra.Command{
	Use:   "log-cardio",
	Short: "Log time and distance for the current cardio exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		_, pe, err := sessionExercise(s, setExercise)
		if err != nil {
			return err
		}
		if s.Types[pe.ExerciseID] != models.ExerciseTypeCardio {
			return fmt.Errorf("This is a strength exercise, use `gymrat log-set`")
		}

		if err := s.RecordCardio(pe.ExerciseID, cardioMin, cardioSec, cardioDist); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Logged %sm %ss\n", orZero(cardioMin), orZero(cardioSec))
		return nil
	},
}

var setNoteCmd = &cobra.Command{
	Use:   "set-note [note]",
	Short: "Attach a note to an exercise of the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		_, pe, err := sessionExercise(s, noteExercise)
		if err != nil {
			return err
		}
		if err := s.SetNote(pe.ExerciseID, args[0]); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Println("✅ Note saved")
		return nil
	},
}

func init() {
	logSetCmd.Flags().StringVarP(&setWeight, "weight", "w", "", "Weight used for the set")
	logSetCmd.Flags().StringVarP(&setReps, "reps", "r", "", "Number of reps performed")
	logSetCmd.Flags().IntVarP(&setExercise, "ex", "e", 0, "Exercise position in the session (default: current)")
	logSetCmd.MarkFlagRequired("reps")

	warmupCmd.Flags().IntVarP(&setExercise, "ex", "e", 0, "Exercise position in the session (default: current)")
	warmupCmd.Flags().BoolVar(&warmupOff, "off", false, "Turn the warmup flag off again")

	logCardioCmd.Flags().StringVarP(&cardioMin, "minutes", "m", "", "Minutes")
	logCardioCmd.Flags().StringVarP(&cardioSec, "seconds", "s", "", "Seconds")
	logCardioCmd.Flags().StringVarP(&cardioDist, "distance", "d", "", "Distance in km")
	logCardioCmd.Flags().IntVarP(&setExercise, "ex", "e", 0, "Exercise position in the session (default: current)")

	setNoteCmd.Flags().IntVarP(&noteExercise, "ex", "e", 0, "Exercise position in the session (default: current)")

	rootCmd.AddCommand(logSetCmd)
	rootCmd.AddCommand(warmupCmd)
	rootCmd.AddCommand(logCardioCmd)
	rootCmd.AddCommand(setNoteCmd)
}
