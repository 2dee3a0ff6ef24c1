package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

// Backup is everything one user owns, as written to a TOML dump.
type Backup struct {
	UserID     string                  `toml:"user_id"`
	ExportedAt time.Time               `toml:"exported_at"`
	Profile    *models.Profile         `toml:"profile,omitempty"`
	Exercises  []models.Exercise       `toml:"exercise"`
	Plans      []models.WorkoutPlan    `toml:"plan"`
	History    []models.WorkoutHistory `toml:"workout"`
}

// ExportUserData dumps every record of userID into a TOML file at outputPath.
func (s *Storage) ExportUserData(ctx context.Context, userID, outputPath string) (*Backup, error) {
	b := &Backup{UserID: userID, ExportedAt: time.Now().UTC().Truncate(time.Second)}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	b.Profile = profile

	if b.Exercises, err = s.ListExercises(ctx, userID); err != nil {
		return nil, err
	}
	if b.Plans, err = s.ListPlans(ctx, userID); err != nil {
		return nil, err
	}
	if b.History, err = s.ListHistory(ctx, userID); err != nil {
		return nil, err
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(b); err != nil {
		return nil, fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing export file: %w", err)
	}

	return b, nil
}

// GetBackupPath returns ~/.config/gymrat/backup.toml, the default dump location.
func GetBackupPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "gymrat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "backup.toml"), nil
}

// ReadBackup decodes a dump written by ExportUserData.
func ReadBackup(filePath string) (*Backup, error) {
	var b Backup
	if _, err := toml.DecodeFile(filePath, &b); err != nil {
		return nil, fmt.Errorf("decoding TOML %s: %w", filePath, err)
	}
	return &b, nil
}

// ImportUserData replaces everything userID owns with the records of b, in
// one transaction. Record ids are kept so plans and history stay linked.
func (s *Storage) ImportUserData(ctx context.Context, userID string, b *Backup) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM history WHERE user_id = ?`,
		`DELETE FROM plans WHERE user_id = ?`,
		`DELETE FROM exercises WHERE user_id = ?`,
		`DELETE FROM profiles WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, userID); err != nil {
			return fmt.Errorf("clearing user data: %w", err)
		}
	}

	created := now()
	if b.Profile != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (id, name, avatar, created_at) VALUES (?, ?, ?, ?)`,
			userID, b.Profile.Name, b.Profile.Avatar, created,
		); err != nil {
			return fmt.Errorf("inserting profile: %w", err)
		}
	}

	for _, ex := range b.Exercises {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO exercises (id, user_id, name, category, exercise_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			ex.ID, userID, ex.Name, string(ex.Category), string(ex.ExerciseType), created,
		); err != nil {
			return fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
		}
	}

	for _, p := range b.Plans {
		data, err := encodeJSON(p.Exercises)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO plans (id, user_id, name, exercises, created_at) VALUES (?, ?, ?, ?, ?)`,
			p.ID, userID, p.Name, data, created,
		); err != nil {
			return fmt.Errorf("inserting plan %q: %w", p.Name, err)
		}
	}

	for _, w := range b.History {
		data, err := encodeJSON(w.Exercises)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO history (id, user_id, plan_id, plan_name, date, duration, exercises)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			w.ID, userID, w.PlanID, w.PlanName, w.Date.UTC().Format(time.RFC3339), w.Duration, data,
		); err != nil {
			return fmt.Errorf("inserting workout %s: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
