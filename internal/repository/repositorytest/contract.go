// Package repositorytest holds behaviour checks shared by every TaskRepository.
package repositorytest

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/repository"
)

// Factory returns a fresh, empty repository.
type Factory func(t *testing.T) repository.TaskRepository

// Run exercises the ordering and lookup guarantees of a TaskRepository.
func Run(t *testing.T, newRepo Factory) {
	created := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("append keeps insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i, id := range []string{"c", "a", "b"} {
			require.NoError(t, repo.Append(ctx, domain.NewTask(id, "task "+id, created.Add(time.Duration(i)*time.Hour))))
		}

		tasks, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "c", tasks[0].ID)
		assert.Equal(t, "a", tasks[1].ID)
		assert.Equal(t, "b", tasks[2].ID)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("get round trips fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		task := domain.NewTask("x1", "Buy Suya", created)
		require.NoError(t, repo.Append(ctx, task))

		got, err := repo.Get(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, "Buy Suya", got.Text)
		assert.False(t, got.Completed)
		assert.Nil(t, got.CompletedAt)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("get unknown id", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Get(context.Background(), "missing")
		assert.True(t, stderrors.Is(err, errors.ErrTaskNotFound))
	})

	t.Run("replace keeps position", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, repo.Append(ctx, domain.NewTask(id, "t"+id, created)))
		}

		middle, err := repo.Get(ctx, "2")
		require.NoError(t, err)
		done := created.AddDate(0, 0, 1)
		require.NoError(t, repo.Replace(ctx, middle.Complete(done)))

		tasks, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "2", tasks[1].ID)
		assert.True(t, tasks[1].Completed)
		require.NotNil(t, tasks[1].CompletedAt)
		assert.True(t, done.Equal(*tasks[1].CompletedAt))

		require.NoError(t, repo.Replace(ctx, tasks[1].Reopen()))
		got, err := repo.Get(ctx, "2")
		require.NoError(t, err)
		assert.False(t, got.Completed)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("replace unknown id", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Replace(context.Background(), domain.NewTask("ghost", "x", created))
		assert.True(t, stderrors.Is(err, errors.ErrTaskNotFound))
	})

	t.Run("delete removes exactly one", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, repo.Append(ctx, domain.NewTask(id, "t"+id, created)))
		}

		require.NoError(t, repo.Delete(ctx, "2"))
		err := repo.Delete(ctx, "2")
		assert.True(t, stderrors.Is(err, errors.ErrTaskNotFound))

		tasks, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "1", tasks[0].ID)
		assert.Equal(t, "3", tasks[1].ID)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Append(ctx, domain.NewTask("dup", "a", created)))
		assert.Error(t, repo.Append(ctx, domain.NewTask("dup", "b", created)))

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("zero created at survives", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		require.NoError(t, repo.Append(ctx, domain.Task{ID: "z", Text: "undated"}))

		got, err := repo.Get(ctx, "z")
		require.NoError(t, err)
		assert.True(t, got.CreatedAt.IsZero())
	})

	t.Run("list of empty repository", func(t *testing.T) {
		repo := newRepo(t)
		tasks, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}
