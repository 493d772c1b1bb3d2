// Package config resolves process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the resolved process configuration.
type Config struct {
	// DBPath is the SQLite database location (STUDYFLOW_DB).
	DBPath string
	// NoColor disables styled output (STUDYFLOW_NO_COLOR).
	NoColor bool
	// LogUseCases enables service telemetry on stderr (STUDYFLOW_LOG).
	LogUseCases bool
}

// Load reads configuration from the environment, defaulting the database to
// ~/.studyflow/studyflow.db.
func Load() (Config, error) {
	cfg := Config{
		DBPath:      os.Getenv("STUDYFLOW_DB"),
		NoColor:     os.Getenv("STUDYFLOW_NO_COLOR") != "",
		LogUseCases: os.Getenv("STUDYFLOW_LOG") != "",
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".studyflow", "studyflow.db")
	}

	return cfg, nil
}
