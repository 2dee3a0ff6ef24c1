package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/config"
)

var (
	initName  string
	initDBURL string
	initToken string
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the config file, create the database tables and your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		changed := false
		if cfg.User.ID == "" {
			cfg.User.ID = uuid.New().String()
			changed = true
		}
		if initName != "" {
			cfg.User.Name = initName
			changed = true
		}
		if initDBURL != "" {
			cfg.DB.ConnectionString = initDBURL
			changed = true
		}
		if initToken != "" {
			cfg.DB.AuthToken = initToken
			changed = true
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			changed = true
		}

		if changed {
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Printf("✅ Config written to %s\n", path)
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer closeDB()

		p := app.Profile()
		fmt.Printf("✅ Database ready. Welcome, %s %s\n", p.Avatar, color.New(color.FgGreen).Sprint(p.Name))
		return nil
	},
}

func init() {
	initSetupCmd.Flags().StringVarP(&initName, "name", "n", "", "Your display name")
	initSetupCmd.Flags().StringVar(&initDBURL, "db", "", "libSQL database URL (libsql://... or http://...)")
	initSetupCmd.Flags().StringVar(&initToken, "token", "", "Database auth token")
	rootCmd.AddCommand(initSetupCmd)
}
