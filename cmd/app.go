package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/umer279/gymratting-fitness-tracker/internal/coach"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
	"github.com/umer279/gymratting-fitness-tracker/internal/state"
	"github.com/umer279/gymratting-fitness-tracker/internal/storage"
	"github.com/umer279/gymratting-fitness-tracker/internal/utils"
)

const dbTimeout = 30 * time.Second

var errNoUser = errors.New("no user configured, run `gymrat init` first")

// openApp connects to the database and loads the configured user's data.
// The returned func closes the database.
func openApp(ctx context.Context) (*state.App, *storage.Storage, func(), error) {
	if cfg.User.ID == "" {
		return nil, nil, nil, errNoUser
	}

	st, err := storage.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(); err != nil {
			log.Warnf("close database: %s", err)
		}
	}

	app := state.NewApp(st, cfg.User.ID, cfg.User.Name)
	if err := app.Load(ctx); err != nil {
		closeFn()
		return nil, nil, nil, fmt.Errorf("failed to load user data: %w", err)
	}
	return app, st, closeFn, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// loadSession returns the active session saved between commands.
func loadSession() (*session.Session, error) {
	if !utils.SessionExists() {
		return nil, fmt.Errorf("No active session")
	}

	s, err := utils.LoadSessionState()
	if err != nil {
		return nil, fmt.Errorf("Failed to load session state: %w", err)
	}
	return s, nil
}

func saveSession(s *session.Session) error {
	if err := utils.SaveSessionState(s); err != nil {
		return fmt.Errorf("Failed to save session state: %w", err)
	}
	return nil
}

// newCoach returns a coach for the configured API key. Without a key, or
// when the client cannot be built, the coach answers with its fixed
// not-configured message.
func newCoach(ctx context.Context) *coach.Coach {
	if cfg.AI.APIKey == "" {
		return coach.New(nil)
	}
	gen, err := coach.NewGemini(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		log.Errorf("gemini client: %s", err)
		return coach.New(nil)
	}
	return coach.New(gen)
}

// parseIndex reads a 1-based position from the command line.
func parseIndex(arg string, n int) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return 0, fmt.Errorf("Invalid index %q. Must be a positive integer", arg)
	}
	if idx > n {
		return 0, fmt.Errorf("Index %d out of range (1-%d)", idx, n)
	}
	return idx - 1, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
