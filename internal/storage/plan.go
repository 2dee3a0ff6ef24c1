package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func (s *Storage) CreatePlan(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error) {
	exercisesJSON, err := encodeJSON(plan.Exercises)
	if err != nil {
		return nil, err
	}

	plan.ID = newID()
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO plans (id, user_id, name, exercises, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		plan.ID,
		plan.UserID,
		plan.Name,
		exercisesJSON,
		now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return &plan, nil
}

func (s *Storage) ListPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_id, name, exercises
		FROM plans WHERE user_id = ?
		ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var plans []models.WorkoutPlan
	for rows.Next() {
		var p models.WorkoutPlan
		var exercisesJSON string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &exercisesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		if err := json.Unmarshal([]byte(exercisesJSON), &p.Exercises); err != nil {
			return nil, fmt.Errorf("failed to decode exercises of plan %s: %w", p.ID, err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Storage) UpdatePlan(ctx context.Context, plan models.WorkoutPlan) error {
	exercisesJSON, err := encodeJSON(plan.Exercises)
	if err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE plans SET name = ?, exercises = ? WHERE id = ? AND user_id = ?`,
		plan.Name,
		exercisesJSON,
		plan.ID,
		plan.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return checkAffected(res)
}

func (s *Storage) DeletePlan(ctx context.Context, userID, id string) error {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM plans WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return checkAffected(res)
}
