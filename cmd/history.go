package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/analytics"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var (
	historyRange string
	filterPlan   string
)

// historyCmd lists finished workouts, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display your workout history, optionally filtered by time range and/or plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := analytics.ParseTimeRange(historyRange)
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

		history := analytics.Filter(app.History(), rng, time.Now())
		if len(history) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		// Positions refer to the unfiltered history so they work with look-workout.
		position := make(map[string]int, len(app.History()))
		for i, w := range app.History() {
			position[w.ID] = i + 1
		}

		for _, w := range history {
			if filterPlan != "" && !strings.EqualFold(w.PlanName, filterPlan) {
				continue
			}
			fmt.Printf("%3d. %s | %s | %s | %d exercises\n",
				position[w.ID],
				w.Date.Local().Format("2006-01-02 15:04"),
				green(w.PlanName),
				utils.FormatDuration(w.Duration),
				len(w.Exercises),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyRange, "range", "r", "all", "Time range: all, month, week or today")
	historyCmd.Flags().StringVarP(&filterPlan, "plan", "p", "", "Filter by plan name (case insensitive)")
}
