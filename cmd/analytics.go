package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/analytics"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var (
	statsRange string
	statsAI    bool
)

var statsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"stats", "status"},
	Short:   "Show workout analytics: totals, muscle balance, weekly frequency and personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := analytics.ParseTimeRange(statsRange)
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

		now := time.Now()
		sum := analytics.Compute(analytics.Input{
			History:     analytics.Filter(app.History(), rng, now),
			FullHistory: app.History(),
			Exercises:   app.Exercises(),
			Now:         now,
		})

		printBoxedHeader(fmt.Sprintf("STATS (%s)", strings.ToUpper(string(rng))))
		printMetric("Workouts", sum.TotalWorkouts)
		printMetric("Working sets", sum.TotalSets)
		printMetric("Total volume", fmt.Sprintf("%.1f kg", sum.TotalVolume))
		printMetric("Time trained", utils.FormatDuration(sum.TotalDuration))
		printMetric("Avg duration", fmt.Sprintf("%d min", sum.AvgDuration))
		printMetric("Density", fmt.Sprintf("%d kg/min", sum.WorkoutDensity))
		fmt.Println()

		sectionHeader := color.New(color.FgGreen, color.Bold)

		if shares := analytics.CategoryShares(sum); len(shares) > 0 {
			sectionHeader.Println("Muscle group focus:")
			for _, sh := range shares {
				fmt.Printf("  %-10s %s %3d sets (%.0f%%)\n", sh.Category, bar(sh.Percent, 20), sh.Sets, sh.Percent)
			}
			fmt.Println()
		}

		sectionHeader.Println("Weekly frequency (last 4 weeks):")
		if buckets := analytics.WeeklyBuckets(sum); len(buckets) > 0 {
			for _, b := range buckets {
				fmt.Printf("  %s %s %d\n", b.WeekStart, bar(b.Percent, 20), b.Workouts)
			}
		} else {
			fmt.Println("  No workouts in the last 4 weeks.")
		}
		fmt.Println()

		if len(sum.PersonalRecords) > 0 {
			sectionHeader.Println("Personal records:")
			for _, pr := range sum.PersonalRecords {
				fmt.Printf("  %s %.1fkg × %d (%s: %dkg)\n", cyan(pr.Name), pr.Weight, pr.Reps, yellow("est. 1RM"), pr.OneRepMax)
			}
			fmt.Println()
		}

		if len(sum.CardioBests) > 0 {
			sectionHeader.Println("Cardio:")
			for _, cb := range sum.CardioBests {
				line := fmt.Sprintf("%d sessions, longest %s", cb.Sessions, utils.FormatDuration(cb.MaxDuration))
				if cb.MaxDistance > 0 {
					line += fmt.Sprintf(", farthest %.2f km", cb.MaxDistance)
				}
				fmt.Printf("  %s %s\n", cyan(cb.Name), line)
			}
			fmt.Println()
		}

		if !statsAI {
			return nil
		}

		aiCtx, aiCancel := aiContext()
		defer aiCancel()

		c := newCoach(aiCtx)
		if !c.Configured() {
			fmt.Println(c.Respond(aiCtx, app.State(), ""))
			return nil
		}

		ch, answer, err := c.StartChat(aiCtx, app.State(), analytics.AnalysisPrompt(sum))
		defer ch.Close()
		if err != nil {
			return fmt.Errorf("AI analysis failed: %w", err)
		}
		sectionHeader.Println("Coach analysis:")
		fmt.Println(answer.Content)
		return nil
	},
}

func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	return green(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// printBoxedHeader prints a title inside a box.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerPad(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	statsCmd.Flags().StringVarP(&statsRange, "range", "r", "all", "Time range: all, month, week or today")
	statsCmd.Flags().BoolVar(&statsAI, "ai", false, "Ask the coach for a written analysis of the numbers")
	rootCmd.AddCommand(statsCmd)
}
