package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var renamePlan string

var updatePlanCmd = &cobra.Command{
	Use:   "update-plan [file]",
	Short: "Replace the exercises of an existing plan based on a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt, err := utils.ParsePlanFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read file: %w", err)
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		existing, ok := app.FindPlan(pt.Name)
		if !ok {
			return fmt.Errorf("Plan %q not found", pt.Name)
		}

		plan, err := planFromTOML(pt, app.Exercises())
		if err != nil {
			return err
		}
		plan.ID = existing.ID
		if name := strings.TrimSpace(renamePlan); name != "" {
			plan.Name = name
		}

		// History keeps its own copy of the plan name, so past workouts are untouched.
		app.UpdatePlan(ctx, plan)
		fmt.Printf("✅ Plan %q updated\n", plan.Name)
		return nil
	},
}

func init() {
	updatePlanCmd.Flags().StringVar(&renamePlan, "rename", "", "Give the plan a new name")
	rootCmd.AddCommand(updatePlanCmd)
}
