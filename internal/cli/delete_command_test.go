package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_Execute(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		input         string
		expectedCount int
		contains      string
		wantErr       bool
	}{
		{name: "confirmed by position", args: []string{"1"}, input: "y\n", expectedCount: 2, contains: "Deleted: Buy Suya"},
		{name: "confirmed by id", args: []string{"task-3"}, input: "yes\n", expectedCount: 2, contains: "Deleted: Goto market"},
		{name: "french yes", args: []string{"1"}, input: "oui\n", expectedCount: 2, contains: "Deleted: Buy Suya"},
		{name: "declined", args: []string{"1"}, input: "n\n", expectedCount: 3, contains: "Cancel"},
		{name: "empty answer declines", args: []string{"1"}, input: "\n", expectedCount: 3, contains: "Cancel"},
		{name: "no input declines", args: []string{"1"}, input: "", expectedCount: 3, contains: "Cancel"},
		{name: "missing argument", args: nil, expectedCount: 3, wantErr: true},
		{name: "unknown id", args: []string{"nope"}, input: "y\n", expectedCount: 3, wantErr: true},
		{name: "position out of range", args: []string{"9"}, input: "y\n", expectedCount: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := setupTestApp(t, tt.input)
			ctx := context.Background()

			err := NewDeleteCommand(app).Execute(ctx, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), "Are you sure you want to delete this todo? [y/N]")
				assert.Contains(t, out.String(), tt.contains)
			}

			tasks, err := app.businessAPI.ListTasks(ctx)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.expectedCount)
		})
	}
}
