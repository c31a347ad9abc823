package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-slash/internal/errors"
)

func TestCommandRegistry_Names(t *testing.T) {
	app, _ := setupTestApp(t, "")

	assert.Equal(t, []string{
		"add", "clear-dates", "delete", "help", "list", "output", "quit", "search", "tab", "toggle", "version",
	}, app.registry.Names())
}

func TestCommandRegistry_Execute(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		args     []string
		contains string
		wantErr  error
	}{
		{name: "version", command: "version", contains: "Version 1.0.0 beta"},
		{name: "help", command: "help", contains: "search [status] [--from DATE] [--to DATE]"},
		{name: "alias ls", command: "ls", args: []string{"completed"}, contains: "Start developing this app"},
		{name: "alias done", command: "done", args: []string{"task-2"}, contains: "Completed: Buy Suya"},
		{name: "quit", command: "quit", wantErr: errQuit},
		{name: "alias exit", command: "exit", wantErr: errQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := setupTestApp(t, "")

			err := app.registry.Execute(context.Background(), tt.command, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestCommandRegistry_UnknownCommand(t *testing.T) {
	app, _ := setupTestApp(t, "")

	err := app.registry.Execute(context.Background(), "archive", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	value, _ := appErr.GetContext("value")
	assert.Equal(t, "archive", value)
}

func TestCommandRegistry_RegisterOverrides(t *testing.T) {
	app, _ := setupTestApp(t, "")
	called := false

	app.registry.Register("version", CommandFunc(func(ctx context.Context, args []string) error {
		called = true
		return nil
	}))

	require.NoError(t, app.registry.Execute(context.Background(), "version", nil))
	assert.True(t, called)
}

func TestToggleAndTabCommands(t *testing.T) {
	app, out := setupTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"toggle", "2"}))
	assert.Contains(t, out.String(), "Completed: Goto market")

	require.NoError(t, app.Run(ctx, []string{"tab", "completed"}))
	assert.Equal(t, "completed", string(app.Session().Tab))

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"toggle", "1"}))
	assert.Contains(t, out.String(), "Reopened: Start developing this app")

	task, err := app.businessAPI.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	assert.Error(t, app.Run(ctx, []string{"toggle"}))
	assert.Error(t, app.Run(ctx, []string{"tab", "archived"}))
}
