package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func ParsePlanFromTOML(path string) (*models.PlanTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan models.PlanTOML
	if err := toml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// FormatDuration renders seconds as "12m 05s".
func FormatDuration(totalSeconds int) string {
	if totalSeconds <= 0 {
		return "0m 00s"
	}
	return fmt.Sprintf("%dm %02ds", totalSeconds/60, totalSeconds%60)
}

// FormatClock renders seconds as a HH:MM:SS timer.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
}
