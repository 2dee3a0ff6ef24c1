package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deletePlanCmd = &cobra.Command{
	Use:   "delete-plan [name-or-id]",
	Short: "Delete a workout plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		plan, ok := app.FindPlan(args[0])
		if !ok {
			return fmt.Errorf("Plan %q not found", args[0])
		}

		app.DeletePlan(ctx, plan.ID)
		fmt.Printf("✅ Plan '%s' deleted successfully\n", plan.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deletePlanCmd)
}
