package cli

import (
	"context"
	"strings"

	"ticket-slash/internal/api"
	"ticket-slash/internal/translator"
)

// AddCommand handles the add command
type AddCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, businessAPI: app.businessAPI}
}

// Execute adds the joined arguments as a new todo
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.businessAPI.AddTask(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	c.app.renderer.Line(c.app.tf(translator.MsgTaskAdded, map[string]interface{}{"Text": task.Text}))
	return nil
}
