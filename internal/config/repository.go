package config

import (
	"fmt"
	"os"

	"tasklist/internal/repository/sqlite"
)

// CreateRepository creates the data directory if needed and opens the task
// store inside it.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	perm := os.FileMode(config.Database.DirPermissions)
	if err := os.MkdirAll(config.Database.Dir, perm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", config.Database.Dir, err)
	}

	repo, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
