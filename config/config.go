// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend names accepted in DATA_BACKEND.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// HTTP server
	Port string

	// Storage backend selection
	DataBackend string
	DataFile    string
	SQLitePath  string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataBackend: getEnv("DATA_BACKEND", BackendJSON),
		DataFile:    getEnv("DATA_FILE", "./data/expenses.json"),
		SQLitePath:  getEnv("SQLITE_DB_PATH", "./data/expenses.db"),
	}
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend %q: must be one of json, sqlite, memory", c.DataBackend))
	}

	if c.DataBackend == BackendJSON && c.DataFile == "" {
		problems = append(problems, "data file path is required for the json backend")
	}
	if c.DataBackend == BackendSQLite && c.SQLitePath == "" {
		problems = append(problems, "sqlite path is required for the sqlite backend")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
