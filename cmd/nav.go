package cmd

import (
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
)

func moveCursor(step func(*session.Session) error) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if err := step(s); err != nil {
		return err
	}
	if err := saveSession(s); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	app, _, closeDB, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	pe, _ := s.Current()
	ex, _ := models.FindExercise(app.Exercises(), pe.ExerciseID)
	printSessionExercise(s, s.Cursor, ex, pe, app.History())
	return nil
}

var nextExCmd = &cobra.Command{
	Use:   "next-ex",
	Short: "Move to the next exercise of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveCursor((*session.Session).Next)
	},
}

var prevExCmd = &cobra.Command{
	Use:   "prev-ex",
	Short: "Move back to the previous exercise of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return moveCursor((*session.Session).Prev)
	},
}

func init() {
	rootCmd.AddCommand(nextExCmd)
	rootCmd.AddCommand(prevExCmd)
}
