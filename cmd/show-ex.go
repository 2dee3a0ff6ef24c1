package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var (
	limitWorkouts int
	historyOnly   bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display detailed information and training history for a particular exercise",
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

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		if !historyOnly {
			fmt.Println(boldGreen("Exercise Information:"))
			fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
			fmt.Printf("  %s: %s\n", boldCyan("Category"), ex.Category)
			fmt.Printf("  %s: %s\n", boldCyan("Type"), ex.ExerciseType)
			if best := bestOneRM(app.History(), ex.ID); best > 0 {
				fmt.Printf("  %s: %dkg\n", boldCyan("Best estimated 1RM"), best)
			}
			if plans := plansUsing(app, ex.ID); len(plans) > 0 {
				fmt.Printf("  %s: %s\n", boldCyan("Used in"), strings.Join(plans, ", "))
			}
			fmt.Println()
		}

		fmt.Printf("%s %s:\n", boldGreen("History for"), ex.Name)
		shown := 0
		for _, w := range app.History() {
			if limitWorkouts > 0 && shown >= limitWorkouts {
				break
			}
			for _, pe := range w.Exercises {
				if pe.ExerciseID != ex.ID || !pe.HasPerformance() {
					continue
				}
				shown++
				fmt.Printf("\n%s %s (%s)\n", boldGreen("Workout"), w.Date.Local().Format("2006-01-02"), w.PlanName)
				if pe.Notes != "" {
					fmt.Printf("   %s: %s\n", magenta("Notes"), pe.Notes)
				}
				if c := pe.CardioPerformance; c != nil {
					fmt.Printf("   %s\n", utils.FormatDuration(c.Duration))
					continue
				}
				for j, set := range pe.Sets {
					warm := ""
					if set.IsWarmup {
						warm = " (W)"
					}
					fmt.Printf("      %-4d | %-8.1fkg | %-3d | 1RM %dkg%s\n", j+1, set.Weight, set.Reps, utils.EstimateOneRM(set.Weight, set.Reps), warm)
				}
			}
		}
		if shown == 0 {
			fmt.Println(magenta("  No workouts found."))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitWorkouts, "limit", "l", 5, "Number of workouts to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only history without exercise details")
}
