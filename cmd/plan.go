package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

// planFromTOML resolves the exercise names of a TOML plan against the
// catalog. Entries without a prescription get the defaults of their type.
func planFromTOML(pt *models.PlanTOML, catalog []models.Exercise) (models.WorkoutPlan, error) {
	name := strings.TrimSpace(pt.Name)
	if name == "" {
		return models.WorkoutPlan{}, fmt.Errorf("Plan name not specified in TOML file")
	}
	if len(pt.Exercises) == 0 {
		return models.WorkoutPlan{}, fmt.Errorf("Plan %q has no exercises", name)
	}

	plan := models.WorkoutPlan{Name: name}
	for i, et := range pt.Exercises {
		ex, ok := models.FindExerciseByName(catalog, et.Name)
		if !ok {
			return models.WorkoutPlan{}, fmt.Errorf("exercise %d: %q not found, add it with `gymrat add-exercise`", i+1, et.Name)
		}

		pe := models.NewPlanExercise(ex)
		pe.Notes = et.Notes
		if ex.IsStrength() {
			if et.Sets != nil && *et.Sets > 0 {
				sets := *et.Sets
				pe.NumberOfSets = &sets
			}
			if et.Reps != "" {
				pe.RepRange = et.Reps
			}
			if et.TargetWeight != nil {
				w := *et.TargetWeight
				pe.TargetWeight = &w
			}
		} else if et.Minutes != nil && *et.Minutes > 0 {
			secs := int(math.Round(*et.Minutes * 60))
			pe.Duration = &secs
		}
		plan.Exercises = append(plan.Exercises, pe)
	}
	return plan, nil
}

var createPlanCmd = &cobra.Command{
	Use:   "create-plan [file]",
	Short: "Create a new workout plan from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pt, err := utils.ParsePlanFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read plan: %w", err)
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		plan, err := planFromTOML(pt, app.Exercises())
		if err != nil {
			return err
		}
		if _, ok := app.FindPlan(plan.Name); ok {
			return fmt.Errorf("Plan %q already exists, use `gymrat update-plan` instead", plan.Name)
		}

		created, err := app.AddPlan(ctx, plan)
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		fmt.Printf("✅ Plan %q created with %d exercises\n", created.Name, len(created.Exercises))
		return nil
	},
}

var listPlansCmd = &cobra.Command{
	Use:   "list-plans",
	Short: "List all workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		plans := app.Plans()
		if len(plans) == 0 {
			fmt.Println("No plans yet. Create one with `gymrat create-plan`.")
			return nil
		}
		for _, p := range plans {
			fmt.Printf("%s - %s (%d exercises)\n", p.ID, p.Name, len(p.Exercises))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createPlanCmd)
	rootCmd.AddCommand(listPlansCmd)
}
