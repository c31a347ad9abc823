package cli

import (
	"context"
	"sort"
	"strings"

	"ticket-slash/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandFunc adapts a plain function to Command.
type CommandFunc func(ctx context.Context, args []string) error

func (f CommandFunc) Execute(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
	aliases  map[string]string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}

	search := NewSearchCommand(app)

	registry.Register("add", NewAddCommand(app))
	registry.Register("toggle", NewToggleCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("tab", NewTabCommand(app))
	registry.Register("search", search)
	registry.Register("clear-dates", CommandFunc(search.ClearDates))
	registry.Register("output", NewOutputCommand(app))
	registry.Register("version", CommandFunc(func(ctx context.Context, args []string) error {
		app.renderer.Line(VersionLabel())
		return nil
	}))
	registry.Register("help", CommandFunc(func(ctx context.Context, args []string) error {
		app.renderer.Line(registry.GetUsage())
		return nil
	}))
	registry.Register("quit", CommandFunc(func(ctx context.Context, args []string) error {
		return errQuit
	}))

	registry.Alias("rm", "delete")
	registry.Alias("done", "toggle")
	registry.Alias("ls", "list")
	registry.Alias("exit", "quit")

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Alias makes alias run the command registered as name.
func (r *CommandRegistry) Alias(alias, name string) {
	r.aliases[alias] = name
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	if target, ok := r.aliases[commandName]; ok {
		commandName = target
	}
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in sorted order.
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the shell
func (r *CommandRegistry) GetUsage() string {
	lines := []string{
		"commands:",
		"  add <text>                                  add a todo",
		"  toggle <n|id>                               mark done / not done",
		"  delete <n|id>                               delete after confirmation",
		"  list [todos|completed]                      show a tab",
		"  tab todos|completed                         switch tab",
		"  search [status] [--from DATE] [--to DATE]   filter todos",
		"  clear-dates                                 reset search dates",
		"  output format=csv                           export all todos",
		"  version | help | quit",
	}
	return strings.Join(lines, "\n")
}
