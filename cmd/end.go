package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/analytics"
	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Finish the current workout and save it to your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		if s.Finished {
			if err := utils.ClearSessionState(); err != nil {
				return fmt.Errorf("Failed to clear session: %w", err)
			}
			fmt.Println("Session had no exercises left, nothing saved")
			return nil
		}

		now := time.Now()
		record, err := s.Finalize(now)
		if err != nil {
			return fmt.Errorf("Failed to finish session: %w", err)
		}
		if record == nil {
			if err := utils.ClearSessionState(); err != nil {
				return fmt.Errorf("Failed to clear session: %w", err)
			}
			fmt.Println("Nothing was logged, session discarded")
			return nil
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		// The state file stays in place on failure so the workout can be saved later.
		saved, err := app.AddWorkout(ctx, *record)
		if err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		sum := analytics.Compute(analytics.Input{
			History:     []models.WorkoutHistory{*saved},
			FullHistory: app.History(),
			Exercises:   app.Exercises(),
			Now:         now,
		})
		fmt.Println("✅ Session saved successfully")
		printMetric("Duration", utils.FormatDuration(saved.Duration))
		printMetric("Exercises", len(saved.Exercises))
		printMetric("Sets", sum.TotalSets)
		printMetric("Volume", fmt.Sprintf("%.1f kg", sum.TotalVolume))
		return nil
	},
}

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current training session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session to cancel")
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
	rootCmd.AddCommand(cancelSessionCmd)
}
