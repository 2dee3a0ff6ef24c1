package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func (s *Storage) CreateWorkout(ctx context.Context, w models.WorkoutHistory) (*models.WorkoutHistory, error) {
	exercisesJSON, err := encodeJSON(w.Exercises)
	if err != nil {
		return nil, err
	}

	w.ID = newID()
	w.Date = w.Date.UTC().Truncate(time.Second)
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO history
		(id, user_id, plan_id, plan_name, date, duration, exercises)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.UserID,
		w.PlanID,
		w.PlanName,
		w.Date.Format(time.RFC3339),
		w.Duration,
		exercisesJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return &w, nil
}

// ListHistory returns the user's workouts, newest first.
func (s *Storage) ListHistory(ctx context.Context, userID string) ([]models.WorkoutHistory, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_id, plan_id, plan_name, date, duration, exercises
		FROM history WHERE user_id = ?
		ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []models.WorkoutHistory
	for rows.Next() {
		var w models.WorkoutHistory
		var date, exercisesJSON string
		if err := rows.Scan(&w.ID, &w.UserID, &w.PlanID, &w.PlanName, &date, &w.Duration, &exercisesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		w.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date of workout %s: %w", w.ID, err)
		}
		if err := json.Unmarshal([]byte(exercisesJSON), &w.Exercises); err != nil {
			return nil, fmt.Errorf("failed to decode exercises of workout %s: %w", w.ID, err)
		}
		history = append(history, w)
	}
	return history, rows.Err()
}

func (s *Storage) DeleteWorkout(ctx context.Context, userID, id string) error {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM history WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return checkAffected(res)
}

// DeleteUserData removes every record owned by userID, profile included.
func (s *Storage) DeleteUserData(ctx context.Context, userID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM history WHERE user_id = ?`,
		`DELETE FROM plans WHERE user_id = ?`,
		`DELETE FROM exercises WHERE user_id = ?`,
		`DELETE FROM profiles WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
