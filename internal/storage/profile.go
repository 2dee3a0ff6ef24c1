package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func (s *Storage) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, avatar FROM profiles WHERE id = ?`,
		userID,
	).Scan(&p.ID, &p.Name, &p.Avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (s *Storage) CreateProfile(ctx context.Context, p models.Profile) (*models.Profile, error) {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO profiles (id, name, avatar, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Avatar, now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, p models.Profile) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE profiles SET name = ?, avatar = ? WHERE id = ?`,
		p.Name, p.Avatar, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return checkAffected(res)
}
