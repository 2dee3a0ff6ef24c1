package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/umer279/gymratting-fitness-tracker/internal/config"
	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

var (
	ErrNotFound    = state.ErrNotFound
	ErrNoDatabase  = errors.New("no database configured, set TURSO_DATABASE_URL or database.connection_string")
	ErrDuplicateEx = errors.New("an exercise with this name already exists")
)

// Storage keeps every user's records in a libSQL database. It implements
// state.Store.
type Storage struct {
	DB *sql.DB
}

var _ state.Store = (*Storage)(nil)

func New(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrNoDatabase
	}

	db, err := sql.Open("libsql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		avatar TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL COLLATE NOCASE,
		category TEXT NOT NULL,
		exercise_type TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		exercises TEXT NOT NULL, -- JSON array of plan exercises
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		plan_id TEXT NOT NULL,
		plan_name TEXT NOT NULL,
		date TEXT NOT NULL,
		duration INTEGER NOT NULL,
		exercises TEXT NOT NULL -- JSON array of performed exercises
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_user ON plans (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user_date ON history (user_id, date)`,
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	log.Debug("database schema ready")
	return nil
}

func newID() string {
	return uuid.New().String()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// encodeJSON renders v for a JSON text column; nil slices become [].
func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode json column: %w", err)
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

// checkAffected turns an update or delete that matched no row into ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
