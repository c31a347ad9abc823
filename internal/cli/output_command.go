package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ticket-slash/internal/api"
	"ticket-slash/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, businessAPI: app.businessAPI}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "output", "usage: output format=csv")
	}

	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		return c.outputCSV(ctx)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// outputCSV writes every todo in collection order
func (c *OutputCommand) outputCSV(ctx context.Context) error {
	tasks, err := c.businessAPI.ListTasks(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Text", "Completed", "Created At", "Completed At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		var createdAt, completedAt string
		if task.HasCreatedAt() {
			createdAt = task.CreatedAt.Format(time.RFC3339)
		}
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(time.RFC3339)
		}

		row := []string{
			task.ID,
			task.Text,
			strconv.FormatBool(task.Completed),
			createdAt,
			completedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
