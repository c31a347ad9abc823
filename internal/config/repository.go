package config

import (
	"context"
	"fmt"
	"os"

	"ticket-slash/internal/repository"
	"ticket-slash/internal/repository/memory"
	"ticket-slash/internal/repository/sqlite"
)

// Environment names accepted in SLASH_ENV.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// GetEnvironment returns SLASH_ENV, defaulting to development.
func GetEnvironment() string {
	switch env := os.Getenv("SLASH_ENV"); env {
	case EnvTesting, EnvProduction:
		return env
	default:
		return EnvDevelopment
	}
}

// CreateRepository creates the task repository selected by the storage configuration.
func CreateRepository(ctx context.Context, config *Config) (repository.TaskRepository, error) {
	switch config.Storage.Backend {
	case BackendSQLite:
		if !IsInMemoryDSN(config.Storage.DSN) {
			return nil, &ConfigError{Field: "storage.dsn", Message: "sqlite storage must use an in-memory DSN"}
		}
		repo, err := sqlite.New(ctx, config.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	case BackendMemory, "":
		return memory.New(), nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}

// CreateTestRepository creates the plain in-memory repository used by tests.
func CreateTestRepository() repository.TaskRepository {
	return memory.New()
}
