package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var moveExCmd = &cobra.Command{
	Use:   "move-ex [from] [to]",
	Short: "Move an exercise to another position in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		from, err := parseIndex(args[0], len(s.Exercises))
		if err != nil {
			return err
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("Invalid position %q", args[1])
		}

		if err := s.Reorder(from, to-1); err != nil {
			return err
		}
		if err := saveSession(s); err != nil {
			return err
		}

		fmt.Println("✅ Exercise order updated")
		return nil
	},
}

var removeExCmd = &cobra.Command{
	Use:   "remove-ex [exercise-index]",
	Short: "Remove an exercise from the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		idx, err := parseIndex(args[0], len(s.Exercises))
		if err != nil {
			return err
		}
		if err := s.Remove(idx); err != nil {
			return err
		}

		if s.Finished {
			if err := utils.ClearSessionState(); err != nil {
				return fmt.Errorf("Failed to clear session: %w", err)
			}
			fmt.Println("✅ Last exercise removed, session ended without saving")
			return nil
		}

		if err := saveSession(s); err != nil {
			return err
		}
		fmt.Printf("✅ Removed exercise %d\n", idx+1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveExCmd)
	rootCmd.AddCommand(removeExCmd)
}
