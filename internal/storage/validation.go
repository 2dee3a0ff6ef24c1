package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ExerciseExists reports whether userID already has an exercise called name,
// ignoring case.
func (s *Storage) ExerciseExists(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM exercises WHERE user_id = ? AND name = ? COLLATE NOCASE)",
		userID, strings.TrimSpace(name),
	).Scan(&exists)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check exercise existence: %w", err)
	}

	return exists, nil
}
