package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// LocalDevURL is where `turso dev` serves a local database.
const LocalDevURL = "http://127.0.0.1:8080"

type Config struct {
	DB   DBConfig   `toml:"database"`
	User UserConfig `toml:"user"`
	AI   AIConfig   `toml:"ai"`
	Log  LogConfig  `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // libsql:// or http(s):// URL of the database.
	AuthToken        string `toml:"auth_token"`
}

type UserConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type AIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DSN returns the connection string with the auth token attached.
func (c DBConfig) DSN() string {
	if c.AuthToken == "" || strings.Contains(c.ConnectionString, "authToken=") {
		return c.ConnectionString
	}
	sep := "?"
	if strings.Contains(c.ConnectionString, "?") {
		sep = "&"
	}
	return c.ConnectionString + sep + "authToken=" + c.AuthToken
}

// Returns the directory holding the config and the session state file.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gymrat"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, a .env file in the working
// directory and the environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	return Load(path)
}

// Load reads the config file at path, which may be missing, and applies the
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Config{
		AI:  AIConfig{Model: "gemini-3-flash-preview"},
		Log: LogConfig{Level: "warning"},
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	override(&cfg.DB.ConnectionString, "TURSO_DATABASE_URL")
	override(&cfg.DB.AuthToken, "TURSO_AUTH_TOKEN")
	override(&cfg.User.ID, "GYMRAT_USER_ID")
	override(&cfg.User.Name, "GYMRAT_USER_NAME")
	override(&cfg.AI.APIKey, "GEMINI_API_KEY")
	override(&cfg.AI.Model, "GEMINI_MODEL")
	override(&cfg.Log.Level, "GYMRAT_LOG_LEVEL")
	override(&cfg.Log.File, "GYMRAT_LOG_FILE")

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = LocalDevURL
		cfg.DB.AuthToken = ""
	}

	return &cfg, nil
}

func override(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
