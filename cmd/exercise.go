package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

var (
	exerciseName     string
	exerciseCategory string
	exerciseType     string
	exerciseFilter   string
)

// newExercise validates the raw fields of a catalog entry.
func newExercise(name, category, exType string) (models.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Exercise{}, errors.New("exercise name is required")
	}
	c, err := models.ParseCategory(category)
	if err != nil {
		return models.Exercise{}, err
	}
	t, err := models.ParseExerciseType(exType)
	if err != nil {
		return models.Exercise{}, err
	}
	return models.Exercise{Name: name, Category: c, ExerciseType: t}, nil
}

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Create a new exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := newExercise(exerciseName, exerciseCategory, exerciseType)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		if _, ok := models.FindExerciseByName(app.Exercises(), ex.Name); ok {
			return fmt.Errorf("Exercise %q already exists", ex.Name)
		}

		created, err := app.AddExercise(ctx, ex)
		if err != nil {
			return fmt.Errorf("Failed to create exercise: %w", err)
		}

		fmt.Printf("✅ Created exercise: %s (%s, %s)\n", created.Name, created.Category, created.ExerciseType)
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercises from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		var importData models.ExerciseImport
		if err := toml.Unmarshal(data, &importData); err != nil {
			return fmt.Errorf("invalid TOML format: %w", err)
		}

		exercises := make([]models.Exercise, 0, len(importData.Exercises))
		for i, def := range importData.Exercises {
			ex, err := newExercise(def.Name, def.Category, def.ExerciseType)
			if err != nil {
				return fmt.Errorf("exercise %d: %w", i+1, err)
			}
			exercises = append(exercises, ex)
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		imported, skipped := 0, 0
		for _, ex := range exercises {
			if _, ok := models.FindExerciseByName(app.Exercises(), ex.Name); ok {
				skipped++
				continue
			}
			if _, err := app.AddExercise(ctx, ex); err != nil {
				return fmt.Errorf("failed to create exercise %s: %w", ex.Name, err)
			}
			imported++
		}

		fmt.Printf("✅ Imported %d exercises", imported)
		if skipped > 0 {
			fmt.Printf(" (%d already existed)", skipped)
		}
		fmt.Println()
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "list-exercises",
	Short: "List your exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var category models.Category
		if exerciseFilter != "" {
			c, err := models.ParseCategory(exerciseFilter)
			if err != nil {
				return err
			}
			category = c
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		printExercises(app.Exercises(), category)
		return nil
	},
}

func printExercises(catalog []models.Exercise, only models.Category) {
	if len(catalog) == 0 {
		fmt.Println("No exercises yet. Add one with `gymrat add-exercise`.")
		return
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, c := range models.Categories {
		if only != "" && c != only {
			continue
		}
		var names []string
		for _, ex := range catalog {
			if ex.Category == c {
				names = append(names, ex.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		header.Printf("%s\n", c)
		for _, n := range names {
			fmt.Printf("  • %s\n", n)
		}
	}
}

var updateExerciseCmd = &cobra.Command{
	Use:   "update-exercise [name-or-id]",
	Short: "Rename an exercise or change its category/type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		ex, ok := app.FindExercise(args[0])
		if !ok {
			return fmt.Errorf("Exercise %q not found", args[0])
		}

		name, category, exType := ex.Name, string(ex.Category), string(ex.ExerciseType)
		if cmd.Flags().Changed("name") {
			name = exerciseName
		}
		if cmd.Flags().Changed("category") {
			category = exerciseCategory
		}
		if cmd.Flags().Changed("type") {
			exType = exerciseType
		}

		updated, err := newExercise(name, category, exType)
		if err != nil {
			return err
		}
		if other, ok := models.FindExerciseByName(app.Exercises(), updated.Name); ok && other.ID != ex.ID {
			return fmt.Errorf("Exercise %q already exists", updated.Name)
		}
		updated.ID = ex.ID

		app.UpdateExercise(ctx, updated)
		fmt.Printf("✅ Updated exercise: %s\n", updated.Name)
		return nil
	},
}

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete-exercise [name-or-id]",
	Short: "Delete an exercise from your catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		ex, ok := app.FindExercise(args[0])
		if !ok {
			return fmt.Errorf("Exercise %q not found", args[0])
		}

		if plans := plansUsing(app, ex.ID); len(plans) > 0 {
			color.Yellow("⚠️  %s is still used by: %s", ex.Name, strings.Join(plans, ", "))
		}

		app.DeleteExercise(ctx, ex.ID)
		fmt.Printf("✅ Deleted exercise: %s\n", ex.Name)
		return nil
	},
}

func plansUsing(app *state.App, exerciseID string) []string {
	var names []string
	for _, p := range app.Plans() {
		for _, pe := range p.Exercises {
			if pe.ExerciseID == exerciseID {
				names = append(names, p.Name)
				break
			}
		}
	}
	return names
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "Category (Chest, Back, Biceps, Triceps, Legs, Shoulders, Core, Cardio)")
	addExerciseCmd.Flags().StringVarP(&exerciseType, "type", "t", string(models.ExerciseTypeStrength), "Exercise type (Strength or Cardio)")
	addExerciseCmd.MarkFlagRequired("name")
	addExerciseCmd.MarkFlagRequired("category")

	listExercisesCmd.Flags().StringVarP(&exerciseFilter, "category", "c", "", "Only list this category")

	updateExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "New name")
	updateExerciseCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "New category")
	updateExerciseCmd.Flags().StringVarP(&exerciseType, "type", "t", "", "New type")

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(listExercisesCmd)
	rootCmd.AddCommand(updateExerciseCmd)
	rootCmd.AddCommand(deleteExerciseCmd)
}
