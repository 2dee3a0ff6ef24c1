package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-name]",
	Short: "Swap an exercise in the current session with another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		idx, err := parseIndex(args[0], len(s.Exercises))
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

		newExercise, ok := app.FindExercise(args[1])
		if !ok {
			return fmt.Errorf("Failed to find exercise %s", args[1])
		}

		if err := s.Replace(idx, newExercise); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Exercise %d is now %s\n", idx+1, newExercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
