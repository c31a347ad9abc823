package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"ticket-slash/internal/api"
	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
	"ticket-slash/internal/validation"
)

// errQuit ends the shell loop.
var errQuit = stderrors.New("quit")

// Session is the screen state kept between shell commands.
type Session struct {
	Tab       domain.Tab
	Status    domain.StatusFilter
	StartDate *time.Time
	EndDate   *time.Time
}

// ClearDates resets both date bounds.
func (s *Session) ClearDates() {
	s.StartDate = nil
	s.EndDate = nil
}

// Options returns the current search criteria.
func (s *Session) Options() domain.SearchOptions {
	return domain.SearchOptions{Status: s.Status, StartDate: s.StartDate, EndDate: s.EndDate}
}

// App represents the interactive CLI application
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	translator   *translator.Translator
	lang         string
	in           *bufio.Reader
	out          io.Writer
	session      *Session
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	renderer     *Renderer
	validator    *validation.SearchValidator
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, in io.Reader, out io.Writer) *App {
	return NewAppWithConfig(businessAPI, config.NewConfig(), translator.Default(), in, out)
}

// NewAppWithConfig creates a new CLI application with explicit configuration
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config, tr *translator.Translator, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if tr == nil {
		tr = translator.Default()
	}

	app := &App{
		businessAPI: businessAPI,
		config:      cfg,
		translator:  tr,
		lang:        cfg.Application.Language,
		in:          bufio.NewReader(in),
		out:         out,
		session:     &Session{Tab: domain.TabTodos, Status: domain.StatusAll},
		validator:   validation.NewSearchValidatorWithConfig(cfg),
	}
	app.errorHandler = NewErrorHandler(tr, app.lang)
	app.renderer = NewRenderer(out, businessAPI.Time())
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes a single command line.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, strings.ToLower(args[0]), args[1:])
}

// RunShell reads commands until quit or end of input. Command errors are
// printed and the loop continues.
func (a *App) RunShell(ctx context.Context) error {
	a.printf("Ticket Slash %s. Type 'help' for commands.\n", Version)
	if err := a.registry.Execute(ctx, "list", nil); err != nil {
		a.printError(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		a.printf("%s> ", a.tabLabel(a.session.Tab))
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				a.printf("\n")
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if err := a.Run(ctx, args); err != nil {
			if stderrors.Is(err, errQuit) {
				return nil
			}
			a.printError(err)
		}
	}
}

// Session exposes the screen state.
func (a *App) Session() *Session {
	return a.session
}

// confirm prints prompt and reads a yes/no answer. Anything but yes is a no.
func (a *App) confirm(prompt string) bool {
	a.printf("%s ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "o", "oui":
		return true
	default:
		return false
	}
}

// resolveTask finds a task by 1-based position in the current tab or by id.
func (a *App) resolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		tasks, err := a.businessAPI.ListTab(ctx, a.session.Tab)
		if err != nil {
			return nil, err
		}
		if n < 1 || n > len(tasks) {
			return nil, errors.NewInvalidInputError("position", ref, fmt.Sprintf("expected 1-%d", len(tasks)))
		}
		task := tasks[n-1]
		return &task, nil
	}
	return a.businessAPI.GetTask(ctx, ref)
}

func (a *App) tabLabel(tab domain.Tab) string {
	if tab == domain.TabCompleted {
		return a.t(translator.MsgCompletedTab)
	}
	return a.t(translator.MsgTodosTab)
}

func (a *App) t(id string) string {
	return a.translator.Localize(a.lang, id, nil)
}

func (a *App) tf(id string, data map[string]interface{}) string {
	return a.translator.Localize(a.lang, id, data)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printError(err error) {
	a.renderer.Error(a.errorHandler.Title(err), a.errorHandler.HandleSimple(err).Error())
}
