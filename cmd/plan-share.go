package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/planio"
)

var exportPlanOut string

var exportPlanCmd = &cobra.Command{
	Use:   "export-plan [name-or-id]",
	Short: "Write a plan as a shareable JSON document",
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

		data, err := planio.Marshal(planio.Export(plan, app.Exercises()))
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}

		out := exportPlanOut
		if out == "" {
			out = planio.ExportFileName(plan)
		}
		if out == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		fmt.Printf("✅ Plan %q exported to %s\n", plan.Name, out)
		return nil
	},
}

var importPlanCmd = &cobra.Command{
	Use:   "import-plan [file]",
	Short: "Import a plan from a JSON document, creating missing exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
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

		plan, err := planio.Import(ctx, data, app)
		if err != nil {
			return fmt.Errorf("Import failed: %w", err)
		}

		fmt.Printf("✅ Imported plan %q with %d exercises\n", plan.Name, len(plan.Exercises))
		return nil
	},
}

func init() {
	exportPlanCmd.Flags().StringVarP(&exportPlanOut, "output", "o", "", "Output file (default gymratting-plan-<name>.json, - for stdout)")
	rootCmd.AddCommand(exportPlanCmd)
	rootCmd.AddCommand(importPlanCmd)
}
