package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var planRef string

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new workout session from a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() {
			return fmt.Errorf("A session is already active. Finish it with `gymrat end-session` or drop it with `gymrat cancel-session`")
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		plan, ok := app.FindPlan(planRef)
		if !ok {
			return fmt.Errorf("Plan %q not found", planRef)
		}

		s, err := session.Start(plan, app.Exercises(), time.Now())
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Started %s (%d exercises)\n", plan.Name, len(s.Exercises))
		if pe, ok := s.Current(); ok {
			ex, _ := models.FindExercise(app.Exercises(), pe.ExerciseID)
			fmt.Printf("First up: %s\n", exerciseLabel(ex, pe.ExerciseID))
		}
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&planRef, "plan", "p", "", "Plan name/ID")
	startCmd.MarkFlagRequired("plan")
}
