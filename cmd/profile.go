package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

var (
	profileName   string
	profileAvatar int
	confirmDelete bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and a summary of your data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		p := app.Profile()
		fmt.Printf("%s %s\n", p.Avatar, color.New(color.FgGreen, color.Bold).Sprint(p.Name))
		fmt.Printf("%s %s\n", color.CyanString("User ID:"), p.ID)
		fmt.Printf("%s %d\n", color.CyanString("Exercises:"), len(app.Exercises()))
		fmt.Printf("%s %d\n", color.CyanString("Plans:"), len(app.Plans()))
		fmt.Printf("%s %d\n", color.CyanString("Workouts:"), len(app.History()))
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set-profile",
	Short: "Change your display name or avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileName == "" && profileAvatar == 0 {
			fmt.Println("Avatars:")
			for i, a := range models.Avatars {
				fmt.Printf("  %d. %s\n", i+1, a)
			}
			return fmt.Errorf("Nothing to change. Use --name and/or --avatar")
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		p := *app.Profile()
		if profileName != "" {
			p.Name = strings.TrimSpace(profileName)
		}
		if profileAvatar != 0 {
			idx, err := parseIndex(fmt.Sprint(profileAvatar), len(models.Avatars))
			if err != nil {
				return err
			}
			p.Avatar = models.Avatars[idx]
		}

		app.UpdateProfile(ctx, p.Name, p.Avatar)
		fmt.Printf("✅ Profile updated: %s %s\n", p.Avatar, p.Name)
		return nil
	},
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Permanently delete all your exercises, plans, workouts and your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmDelete {
			fmt.Print("This deletes ALL your data and cannot be undone. Type 'delete' to confirm: ")
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(answer) != "delete" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ctx, cancel := commandContext()
		defer cancel()

		app, _, closeDB, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := app.DeleteAccount(ctx); err != nil {
			return fmt.Errorf("Failed to delete account: %w", err)
		}
		if utils.SessionExists() {
			_ = utils.ClearSessionState()
		}

		fmt.Println("✅ Account deleted")
		return nil
	},
}

func init() {
	setProfileCmd.Flags().StringVarP(&profileName, "name", "n", "", "New display name")
	setProfileCmd.Flags().IntVarP(&profileAvatar, "avatar", "a", 0, "Avatar number (run without flags to list them)")
	deleteAccountCmd.Flags().BoolVarP(&confirmDelete, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(setProfileCmd)
	rootCmd.AddCommand(deleteAccountCmd)
}
