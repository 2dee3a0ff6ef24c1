package utils

import "math"

func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps == 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}

// EstimateOneRM rounds the Epley estimate to whole units. Sets without
// weight or reps estimate to 0.
func EstimateOneRM(weight float64, reps int) int {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return int(math.Round(CalculateEpley1RM(weight, reps)))
}
