package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umer279/gymratting-fitness-tracker/internal/coach"
)

const aiTimeout = 2 * time.Minute

func aiContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), aiTimeout)
}

var coachCmd = &cobra.Command{
	Use:   "coach [question]",
	Short: "Ask the AI coach a question, or start a chat when no question is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		app, _, closeDB, err := openApp(ctx)
		cancel()
		if err != nil {
			return err
		}
		// The user data is loaded once; the chat does not need the database.
		closeDB()

		setupCtx, setupCancel := aiContext()
		c := newCoach(setupCtx)
		setupCancel()

		if len(args) == 1 {
			aiCtx, aiCancel := aiContext()
			defer aiCancel()
			fmt.Println(c.Respond(aiCtx, app.State(), args[0]))
			return nil
		}

		return runChat(c.NewChat(app.State()))
	},
}

func runChat(ch *coach.Chat) error {
	defer ch.Close()

	coachName := color.New(color.FgGreen, color.Bold).SprintFunc()
	you := color.New(color.FgCyan, color.Bold).SprintFunc()

	for _, m := range ch.Messages() {
		fmt.Printf("%s %s\n\n", coachName("Coach:"), m.Content)
	}
	fmt.Println(color.HiBlackString("Type your question, or 'exit' to leave."))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s ", you("You:"))
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "exit" || line == "quit" {
			return nil
		}

		ctx, cancel := aiContext()
		answer, err := ch.Send(ctx, line)
		cancel()
		if errors.Is(err, coach.ErrEmptyInput) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Printf("\n%s %s\n\n", coachName("Coach:"), answer.Content)
	}
}

func init() {
	rootCmd.AddCommand(coachCmd)
}
