package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/repository/memory"
	"ticket-slash/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		dsn     string
		check   func(t *testing.T, v interface{})
		wantErr bool
	}{
		{
			name:    "memory backend",
			backend: BackendMemory,
			check: func(t *testing.T, v interface{}) {
				_, ok := v.(*memory.Repository)
				assert.True(t, ok)
			},
		},
		{
			name:    "sqlite backend",
			backend: BackendSQLite,
			dsn:     ":memory:",
			check: func(t *testing.T, v interface{}) {
				_, ok := v.(*sqlite.SQLiteRepository)
				assert.True(t, ok)
			},
		},
		{
			name:    "sqlite file rejected",
			backend: BackendSQLite,
			dsn:     "tasks.db",
			wantErr: true,
		},
		{
			name:    "unknown backend",
			backend: "redis",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Backend = tt.backend
			cfg.Storage.DSN = tt.dsn

			repo, err := CreateRepository(context.Background(), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repo.Close()
			tt.check(t, repo)

			ctx := context.Background()
			require.NoError(t, repo.Append(ctx, domain.NewTask("1", "Test Task", time.Now())))
			tasks, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, tasks, 1)
		})
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo := CreateTestRepository()
	defer repo.Close()

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"", EnvDevelopment},
		{"testing", EnvTesting},
		{"production", EnvProduction},
		{"staging", EnvDevelopment},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SLASH_ENV", tt.value)
			assert.Equal(t, tt.expected, GetEnvironment())
		})
	}
}
