package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func (s *Storage) CreateExercise(ctx context.Context, ex models.Exercise) (*models.Exercise, error) {
	exists, err := s.ExerciseExists(ctx, ex.UserID, ex.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%q: %w", ex.Name, ErrDuplicateEx)
	}

	ex.ID = newID()
	ex.Name = strings.TrimSpace(ex.Name)
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO exercises
			(id, user_id, name, category, exercise_type, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
		ex.ID,
		ex.UserID,
		ex.Name,
		string(ex.Category),
		string(ex.ExerciseType),
		now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}
	return &ex, nil
}

func (s *Storage) ListExercises(ctx context.Context, userID string) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_id, name, category, exercise_type
		FROM exercises WHERE user_id = ?
		ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var category, exType string
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Name, &category, &exType); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		ex.Category = models.Category(category)
		ex.ExerciseType = models.ExerciseType(exType)
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

func (s *Storage) UpdateExercise(ctx context.Context, ex models.Exercise) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE exercises SET name = ?, category = ?, exercise_type = ?
		WHERE id = ? AND user_id = ?`,
		strings.TrimSpace(ex.Name),
		string(ex.Category),
		string(ex.ExerciseType),
		ex.ID,
		ex.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exercise: %w", err)
	}
	return checkAffected(res)
}

func (s *Storage) DeleteExercise(ctx context.Context, userID, id string) error {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM exercises WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	return checkAffected(res)
}
