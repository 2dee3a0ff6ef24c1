package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var lookWorkoutCmd = &cobra.Command{
	Use:   "look-workout [id-or-position]",
	Short: "Display a finished workout by its ID or its position in `gymrat history`",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		w, ok := app.FindWorkout(args[0])
		if !ok {
			return fmt.Errorf("Workout %q not found", args[0])
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		fmt.Printf("%s %s\n", boldGreen("Workout"), w.PlanName)
		fmt.Printf("   %s: %s\n", cyan("Date"), w.Date.Local().Format(time.RFC1123))
		fmt.Printf("   %s: %s\n", red("Duration"), utils.FormatDuration(w.Duration))
		fmt.Println(strings.Repeat("─", 50))

		for j, pe := range w.Exercises {
			ex, _ := models.FindExercise(app.Exercises(), pe.ExerciseID)
			fmt.Printf("%s %d. %s\n", boldGreen("Exercise"), j+1, exerciseLabel(ex, pe.ExerciseID))
			if pe.Notes != "" {
				fmt.Printf("   %s: %s\n", magenta("Notes"), pe.Notes)
			}

			if c := pe.CardioPerformance; c != nil {
				line := utils.FormatDuration(c.Duration)
				if c.Distance != nil {
					line += fmt.Sprintf(", %.2f km", *c.Distance)
				}
				fmt.Printf("   %s: %s\n", yellow("Cardio"), line)
				continue
			}

			if len(pe.Sets) == 0 {
				fmt.Println("   " + magenta("No set data available."))
				continue
			}
			fmt.Printf("      %-4s | %-12s | %-5s\n", "Set", "Weight (kg)", "Reps")
			fmt.Println("      " + strings.Repeat("─", 30))
			for k, set := range pe.Sets {
				warm := ""
				if set.IsWarmup {
					warm = " (W)"
				}
				fmt.Printf("      %-4d | %-12.1f | %-5d%s\n", k+1, set.Weight, set.Reps, warm)
			}
		}
		return nil
	},
}

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [id-or-position]",
	Short: "Delete a workout from your history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		w, ok := app.FindWorkout(args[0])
		if !ok {
			return fmt.Errorf("Workout %q not found", args[0])
		}

		app.DeleteWorkout(ctx, w.ID)
		fmt.Printf("✅ Deleted %s from %s\n", w.PlanName, w.Date.Local().Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookWorkoutCmd)
	rootCmd.AddCommand(deleteWorkoutCmd)
}
