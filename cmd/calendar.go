package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the month grid. Days with workouts are colored by plan
// name and a legend is printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with a legend mapping colors to plans",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		byDay := make(map[int][]models.WorkoutHistory)
		var plans []string
		seen := make(map[string]bool)
		for _, w := range app.History() {
			d := w.Date.In(time.Local)
			if d.Year() != year || d.Month() != month {
				continue
			}
			byDay[d.Day()] = append(byDay[d.Day()], w)

			name := strings.TrimSpace(w.PlanName)
			if name == "" {
				name = "Default"
			}
			if !seen[name] {
				seen[name] = true
				plans = append(plans, name)
			}
		}
		sort.Strings(plans)

		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		planColors := make(map[string]func(a ...interface{}) string, len(plans))
		for i, p := range plans {
			planColors[p] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if ws, ok := byDay[day]; ok {
				name := strings.TrimSpace(ws[0].PlanName)
				if name == "" {
					name = "Default"
				}
				dayStr = planColors[name](dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(plans) > 0 {
			fmt.Println("Legend:")
			for _, p := range plans {
				fmt.Printf("  %s: %s\n", planColors[p]("██"), p)
			}
		}

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range byDay[day] {
					end := w.Date.In(time.Local)
					start := end.Add(-time.Duration(w.Duration) * time.Second)
					fmt.Printf("  %s at %s - %s\n", w.PlanName, start.Format("15:04"), end.Format("15:04"))
				}
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
