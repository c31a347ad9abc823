package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/pflag"

	"ticket-slash/internal/api"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// SearchCommand handles the search and clear-dates commands.
// Criteria are kept in the session, so a later search reuses them.
type SearchCommand struct {
	app         *App
	businessAPI api.BusinessAPI
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App) *SearchCommand {
	return &SearchCommand{app: app, businessAPI: app.businessAPI}
}

// Execute updates the session criteria from args and runs the search.
//
//	search [status] [from] [to]
//	search --status pending --from 2025-03-01 --to 2025-03-28
func (c *SearchCommand) Execute(ctx context.Context, args []string) error {
	if err := c.applyArgs(args); err != nil {
		return err
	}

	result, err := c.businessAPI.Search(ctx, c.app.session.Options())
	if err != nil {
		return err
	}

	r := c.app.renderer
	r.Header(c.app.t(translator.MsgSearchResults))
	r.Dim(c.app.t(translator.MsgFilteredBy) + result.Description)
	r.Tasks(result.Items, c.app.t(translator.MsgNoResults))
	r.Dim(c.app.tf(translator.MsgAdjustFilters, map[string]interface{}{"Count": result.Count()}))
	return nil
}

// ClearDates resets both date bounds of the session.
func (c *SearchCommand) ClearDates(ctx context.Context, args []string) error {
	c.app.session.ClearDates()
	return nil
}

func (c *SearchCommand) applyArgs(args []string) error {
	fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	status := fs.StringP("status", "s", "", "all, pending or completed")
	from := fs.StringP("from", "f", "", "start date")
	to := fs.StringP("to", "t", "", "end date")
	clearDates := fs.Bool("clear-dates", false, "reset both dates before applying the others")

	if err := fs.Parse(args); err != nil {
		return errors.NewInvalidInputError("search", args, err.Error())
	}

	positional := fs.Args()
	if len(positional) > 3 {
		return errors.NewInvalidInputError("command", "search", "usage: search [status] [from] [to]")
	}
	if len(positional) > 0 && !fs.Changed("status") {
		*status = positional[0]
	}
	if len(positional) > 1 && !fs.Changed("from") {
		*from = positional[1]
	}
	if len(positional) > 2 && !fs.Changed("to") {
		*to = positional[2]
	}

	session := c.app.session
	if *clearDates {
		session.ClearDates()
	}

	if *status != "" {
		filter, err := domain.ParseStatusFilter(*status)
		if err != nil {
			return errors.NewInvalidInputError("status", *status, "expected all, pending or completed")
		}
		session.Status = filter
	}

	if *from != "" {
		start, err := c.app.validator.ParseDate("from", *from, time.Local)
		if err != nil {
			return err
		}
		session.StartDate = start
	}
	if *to != "" {
		end, err := c.app.validator.ParseDate("to", *to, time.Local)
		if err != nil {
			return err
		}
		session.EndDate = end
	}

	return nil
}
