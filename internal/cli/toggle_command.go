package cli

import (
	"context"

	"ticket-slash/internal/api"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app, businessAPI: app.businessAPI}
}

// Execute flips completion of the referenced todo
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: toggle <n|id>")
	}

	target, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return err
	}

	task, err := c.businessAPI.ToggleTask(ctx, target.ID)
	if err != nil {
		return err
	}

	msg := translator.MsgTaskReopened
	if task.Completed {
		msg = translator.MsgTaskCompleted
	}
	c.app.renderer.Line(c.app.tf(msg, map[string]interface{}{"Text": task.Text}))
	return nil
}
