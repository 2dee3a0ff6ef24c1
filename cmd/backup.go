package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/storage"
)

var exportDataCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all your data to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := storage.GetBackupPath()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			outputFile = args[0]
		}

		ctx, cancel := commandContext()
		defer cancel()

		_, st, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		b, err := st.ExportUserData(ctx, cfg.User.ID, outputFile)
		if err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Printf("✅ Exported %d exercises, %d plans and %d workouts to %s\n",
			len(b.Exercises), len(b.Plans), len(b.History), outputFile)
		return nil
	},
}

var restoreDataCmd = &cobra.Command{
	Use:   "restore [dump-file]",
	Short: "Replace all your data with the contents of a TOML dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := storage.ReadBackup(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read dump: %w", err)
		}

		ctx, cancel := commandContext()
		defer cancel()

		_, st, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := st.ImportUserData(ctx, cfg.User.ID, b); err != nil {
			return fmt.Errorf("Failed to restore data: %w", err)
		}
		fmt.Println("✅ Data restored successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportDataCmd)
	rootCmd.AddCommand(restoreDataCmd)
}
