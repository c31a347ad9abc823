package cli

import (
	"context"

	"ticket-slash/internal/api"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, businessAPI: app.businessAPI}
}

// Execute asks for confirmation, then removes the referenced todo.
// Declining leaves the collection untouched.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: delete <n|id>")
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return err
	}

	c.app.renderer.Header(c.app.t(translator.MsgConfirmDeleteTitle))
	c.app.renderer.Dim(task.Text)
	if !c.app.confirm(c.app.t(translator.MsgConfirmDeletePrompt)) {
		c.app.renderer.Line(c.app.t(translator.MsgDeleteCancelled))
		return nil
	}

	if err := c.businessAPI.DeleteTask(ctx, task.ID); err != nil {
		return err
	}

	c.app.renderer.Line(c.app.tf(translator.MsgTaskDeleted, map[string]interface{}{"Text": task.Text}))
	return nil
}
