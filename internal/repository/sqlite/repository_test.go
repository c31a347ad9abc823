package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/repository"
	"ticket-slash/internal/repository/repositorytest"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(context.Background(), DefaultDSN)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepositoryContract(t *testing.T) {
	repositorytest.Run(t, func(t *testing.T) repository.TaskRepository {
		return setupTestDB(t)
	})
}

func TestNew_DefaultsToMemory(t *testing.T) {
	repo, err := New(context.Background(), "")
	require.NoError(t, err)
	defer repo.Close()

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeparateDatabases(t *testing.T) {
	a := setupTestDB(t)
	b := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, a.Append(ctx, domain.NewTask("1", "only in a", time.Now())))

	n, err := b.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTimezoneOffsetPreserved(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	loc := time.FixedZone("WAT", 3600)
	created := time.Date(2025, 3, 5, 23, 30, 0, 0, loc)

	require.NoError(t, repo.Append(ctx, domain.NewTask("tz", "late task", created)))

	got, err := repo.Get(ctx, "tz")
	require.NoError(t, err)
	assert.True(t, created.Equal(got.CreatedAt))
	_, offset := got.CreatedAt.Zone()
	assert.Equal(t, 3600, offset)
	assert.Equal(t, 5, got.CreatedAt.Day())
}

func TestCancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.Error(t, err)
}
