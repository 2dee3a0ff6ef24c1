package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var showPlanCmd = &cobra.Command{
	Use:   "show-plan [name-or-id]",
	Short: "Display the exercises and prescriptions of a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		plan, ok := app.FindPlan(args[0])
		if !ok {
			return fmt.Errorf("Plan %q not found", args[0])
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(plan.Name)))
		fmt.Println(strings.Repeat("=", 60))

		for i, pe := range plan.Exercises {
			ex, ok := models.FindExercise(app.Exercises(), pe.ExerciseID)
			if !ok {
				ex = models.Exercise{Name: pe.ExerciseID}
			}

			fmt.Printf("%d. %s\n", i+1, ex.Name)
			fmt.Printf("   %s: %s\n", cyan("Target"), describePrescription(ex, pe))
			if pe.Notes != "" {
				fmt.Printf("   %s: %s\n", cyan("Notes"), pe.Notes)
			}
		}
		fmt.Println()
		return nil
	},
}

func describePrescription(ex models.Exercise, pe models.PlanExercise) string {
	if ex.IsCardio() {
		return utils.FormatDuration(pe.DurationSeconds())
	}
	target := fmt.Sprintf("%d × %s", pe.Sets(), pe.RepRange)
	if pe.TargetWeight != nil {
		target += fmt.Sprintf(" @ %.1fkg", *pe.TargetWeight)
	}
	return target
}

func init() {
	rootCmd.AddCommand(showPlanCmd)
}
