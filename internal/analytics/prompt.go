package analytics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnalysisPrompt renders s into the request sent to the coach for a written
// analysis of the numbers.
func AnalysisPrompt(s *Summary) string {
	var b strings.Builder
	b.WriteString("Please provide a detailed analysis of my workout data. ")
	b.WriteString("Give me insights on my consistency, volume, muscle group balance, and suggest areas for improvement. ")
	b.WriteString("Be encouraging but also direct about where I can do better.\n\n")
	b.WriteString("My Analytics Data:\n")
	fmt.Fprintf(&b, "- Total Workouts: %d\n", s.TotalWorkouts)
	fmt.Fprintf(&b, "- Total Volume Lifted: %s kg\n", groupThousands(s.TotalVolume))
	fmt.Fprintf(&b, "- Average Workout Duration: %d minutes\n", s.AvgDuration)
	fmt.Fprintf(&b, "- Muscle Group Focus (by working sets logged): %s\n", mustJSON(s.CategorySets))
	fmt.Fprintf(&b, "- Recent Weekly Workouts (last 4 weeks): %s\n", mustJSON(s.WeeklyFrequency))
	return b.String()
}

// mustJSON encodes maps with sorted keys; it cannot fail for them.
func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// groupThousands formats 12345.5 as "12,345.5".
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var out []byte
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}

	res := string(out)
	if neg {
		res = "-" + res
	}
	if frac != "" {
		res += "." + frac
	}
	return res
}
