package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
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

		fmt.Printf("%s\n", green(s.PlanName))
		fmt.Printf("%s %s\n", red("Duration:"), utils.FormatClock(s.Elapsed(time.Now())))
		fmt.Printf("%s %d/%d (%.0f%%)\n\n", cyan("Progress:"), min(s.Cursor+1, len(s.Exercises)), len(s.Exercises), s.Progress()*100)

		for i, pe := range s.Exercises {
			ex, _ := models.FindExercise(app.Exercises(), pe.ExerciseID)
			printSessionExercise(s, i, ex, pe, app.History())
		}
		return nil
	},
}

func printSessionExercise(s *session.Session, idx int, ex models.Exercise, pe models.PlanExercise, history []models.WorkoutHistory) {
	marker := "  "
	if idx == s.Cursor {
		marker = yellow("▶ ")
	}
	fmt.Printf("%s%d - %s\n", marker, idx+1, cyan(exerciseLabel(ex, pe.ExerciseID)))

	if pe.Notes != "" {
		fmt.Printf("   %s %s\n", cyan("Plan Notes:"), pe.Notes)
	}
	if note := s.Notes[pe.ExerciseID]; note != "" {
		fmt.Printf("   %s %s\n", green("Session Notes:"), note)
	}

	prev := session.PreviousPerformance(history, pe.ExerciseID)
	if s.Types[pe.ExerciseID] == models.ExerciseTypeCardio {
		printCardioRow(s.Cardio[pe.ExerciseID], pe, prev)
		return
	}
	printSetTable(s.Sets(pe.ExerciseID), pe, prev, bestOneRM(history, pe.ExerciseID))
}

func printSetTable(sets []session.SetInput, pe models.PlanExercise, prev *models.PerformedExercise, best1RM int) {
	tableIndent := "   "
	setColWidth, targetColWidth, currentColWidth, prevColWidth := 6, 14, 20, 15

	border := func(l, m, r string) string {
		return tableIndent + l +
			strings.Repeat("─", setColWidth) + m +
			strings.Repeat("─", targetColWidth) + m +
			strings.Repeat("─", currentColWidth) + m +
			strings.Repeat("─", prevColWidth) + r
	}

	fmt.Println(border("┌", "┬", "┐"))
	fmt.Printf(tableIndent+"│%-*s│%-*s│%-*s│%-*s│\n",
		setColWidth, "Set",
		targetColWidth, "Target",
		currentColWidth, "Current",
		prevColWidth, "Prev Session",
	)
	fmt.Println(border("├", "┼", "┤"))

	target := pe.RepRange
	if pe.TargetWeight != nil {
		target = fmt.Sprintf("%s @%.1f", pe.RepRange, *pe.TargetWeight)
	}

	for i, in := range sets {
		prevSet := "N/A"
		if prev != nil && i < len(prev.Sets) {
			prevSet = fmt.Sprintf("%.1fkg × %d", prev.Sets[i].Weight, prev.Sets[i].Reps)
		}

		current := "Not completed"
		if strings.TrimSpace(in.Reps) != "" {
			current = fmt.Sprintf("%skg × %s", orZero(in.Weight), in.Reps)
			if in.Warmup {
				current += " (W)"
			} else if w, r := in.Values(); r > 0 && utils.EstimateOneRM(w, r) > best1RM && best1RM > 0 {
				current += " ★"
			}
		}

		fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│%-*s│\n",
			setColWidth, i+1,
			targetColWidth, target,
			currentColWidth, current,
			prevColWidth, prevSet,
		)
	}
	fmt.Println(border("└", "┴", "┘"))
	fmt.Println()
}

func printCardioRow(in session.CardioInput, pe models.PlanExercise, prev *models.PerformedExercise) {
	fmt.Printf("   %s %s\n", cyan("Target:"), utils.FormatDuration(pe.DurationSeconds()))

	current := "Not completed"
	if in.Minutes != "" || in.Seconds != "" {
		current = fmt.Sprintf("%sm %ss", orZero(in.Minutes), orZero(in.Seconds))
		if in.Distance != "" {
			current += fmt.Sprintf(", %s km", in.Distance)
		}
	}
	fmt.Printf("   %s %s\n", cyan("Current:"), current)

	if prev != nil && prev.CardioPerformance != nil {
		p := utils.FormatDuration(prev.CardioPerformance.Duration)
		if d := prev.CardioPerformance.Distance; d != nil {
			p += fmt.Sprintf(", %.2f km", *d)
		}
		fmt.Printf("   %s %s\n", cyan("Prev Session:"), p)
	}
	fmt.Println()
}

// bestOneRM returns the best estimated 1RM logged for an exercise.
func bestOneRM(history []models.WorkoutHistory, exerciseID string) int {
	best := 0
	for _, w := range history {
		for _, pe := range w.Exercises {
			if pe.ExerciseID != exerciseID {
				continue
			}
			for _, set := range pe.WorkingSets() {
				best = max(best, utils.EstimateOneRM(set.Weight, set.Reps))
			}
		}
	}
	return best
}

func orZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
