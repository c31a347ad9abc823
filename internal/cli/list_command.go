package cli

import (
	"context"

	"ticket-slash/internal/api"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// ListCommand handles the list command
type ListCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, businessAPI: app.businessAPI}
}

// Execute prints the current tab, or the tab named in args without switching to it
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tab := c.app.session.Tab
	if len(args) > 0 {
		parsed, err := domain.ParseTab(args[0])
		if err != nil {
			return errors.NewInvalidInputError("tab", args[0], "expected todos or completed")
		}
		tab = parsed
	}
	return c.printTab(ctx, tab)
}

func (c *ListCommand) printTab(ctx context.Context, tab domain.Tab) error {
	tasks, err := c.businessAPI.ListTab(ctx, tab)
	if err != nil {
		return err
	}

	c.app.renderer.Header(c.app.tabLabel(tab))
	c.app.renderer.Tasks(tasks, c.app.t(translator.MsgNoResults))
	return nil
}

// TabCommand switches the current tab and prints it
type TabCommand struct {
	list *ListCommand
}

// NewTabCommand creates a new tab command handler
func NewTabCommand(app *App) *TabCommand {
	return &TabCommand{list: NewListCommand(app)}
}

// Execute switches to the named tab
func (c *TabCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "tab", "usage: tab todos|completed")
	}
	tab, err := domain.ParseTab(args[0])
	if err != nil {
		return errors.NewInvalidInputError("tab", args[0], "expected todos or completed")
	}

	c.list.app.session.Tab = tab
	return c.list.printTab(ctx, tab)
}
