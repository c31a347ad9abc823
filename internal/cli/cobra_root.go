package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ticket-slash/internal/api"
	"ticket-slash/internal/config"
	"ticket-slash/internal/logging"
	slashmcp "ticket-slash/internal/mcp"
	"ticket-slash/internal/server"
	"ticket-slash/internal/translator"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	loader     *config.Loader
	config     *config.Config
	logger     *zap.Logger
	translator *translator.Translator

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader, in io.Reader, out, errOut io.Writer) *RootCommand {
	if loader == nil {
		loader = config.NewLoader()
	}

	root := &RootCommand{
		loader: loader,
		in:     in,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "slash",
		Short: "An in-memory to-do list with search",
		Long: `Ticket Slash (slash) keeps a to-do list for the lifetime of one session.

FEATURES:
  • Add, complete, reopen and delete todos
  • Browse the Todos and Completed tabs
  • Search by status and inclusive date range
  • Serve the same list over HTTP or as MCP tools

EXAMPLES:
  slash                                    # Start an interactive session
  slash shell --seed=false                 # Start with an empty list
  slash serve --addr :9090                 # Serve the JSON API
  slash mcp                                # Serve MCP tools over stdio
  slash version                            # Show the version

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env file > defaults

  Storage Configuration:
    SLASH_STORAGE_BACKEND                  memory or sqlite (default: memory)
    SLASH_STORAGE_DSN                      In-memory sqlite DSN (default: :memory:)

  Time Configuration:
    SLASH_TIME_DATE_LAYOUT                 Dates in search descriptions (default: 1/2/2006)
    SLASH_TIME_INPUT_LAYOUT                Dates typed by users (default: 2006-01-02)

  Task Configuration:
    SLASH_COMPLETION_POLICY                next-day or now (default: next-day)
    SLASH_SEED                             Seed example todos (default: true)
    SLASH_VALIDATION_TEXT_MAX              Max todo length (default: 255)

  Application Configuration:
    SLASH_APP_TIMEOUT                      Store start-up timeout (default: 30s)
    SLASH_APP_LANGUAGE                     en or fr (default: en)
    SLASH_LOG_LEVEL / SLASH_LOG_FORMAT     Logging (default: info / console)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if root.logger != nil {
				_ = root.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runShell(cmd.Context())
		},
	}

	root.cmd.SetIn(in)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved by the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("storage", "", "Storage backend: memory or sqlite (overrides SLASH_STORAGE_BACKEND)")
	flags.String("dsn", "", "In-memory sqlite DSN (overrides SLASH_STORAGE_DSN)")

	// Time configuration
	flags.String("date-layout", "", "Date layout in search descriptions (overrides SLASH_TIME_DATE_LAYOUT)")
	flags.String("input-layout", "", "Date layout for typed dates (overrides SLASH_TIME_INPUT_LAYOUT)")

	// Task configuration
	flags.Int("text-max-length", 0, "Maximum todo length (overrides SLASH_VALIDATION_TEXT_MAX)")
	flags.String("completion-policy", "", "next-day or now (overrides SLASH_COMPLETION_POLICY)")
	flags.Bool("seed", true, "Seed example todos (overrides SLASH_SEED)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Store start-up timeout (overrides SLASH_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging (overrides SLASH_APP_VERBOSE)")
	flags.String("lang", "", "Message language: en or fr (overrides SLASH_APP_LANGUAGE)")
	flags.String("log-level", "", "debug, info, warn or error (overrides SLASH_LOG_LEVEL)")
	flags.String("log-format", "", "console or json (overrides SLASH_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Start an interactive session holding one to-do list until you quit.

Type 'help' inside the session for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runShell(cmd.Context())
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Long: `Serve the to-do list over HTTP until interrupted.

Endpoints live under /api: /health, /tasks, /tasks/:id, /tasks/:id/toggle and /search.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				r.config.Server.Addr = addr
			}
			return r.runServer(cmd.Context())
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides SLASH_SERVER_ADDR)")

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runMCP(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), VersionLabel())
			return nil
		},
	}

	r.cmd.AddCommand(
		shellCmd,
		serveCmd,
		mcpCmd,
		versionCmd,
	)
}

func (r *RootCommand) newBusinessAPI(ctx context.Context) (api.BusinessAPI, error) {
	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()
	return api.New(ctx, r.config, api.Options{Logger: r.logger})
}

func (r *RootCommand) runShell(ctx context.Context) error {
	businessAPI, err := r.newBusinessAPI(ctx)
	if err != nil {
		return err
	}
	defer businessAPI.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewAppWithConfig(businessAPI, r.config, r.translator, r.in, r.out)
	return app.RunShell(ctx)
}

func (r *RootCommand) runServer(ctx context.Context) error {
	businessAPI, err := r.newBusinessAPI(ctx)
	if err != nil {
		return err
	}

	srv := server.New(businessAPI, r.config, r.translator, r.logger)
	return srv.Run(ctx)
}

func (r *RootCommand) runMCP(ctx context.Context) error {
	businessAPI, err := r.newBusinessAPI(ctx)
	if err != nil {
		return err
	}
	defer businessAPI.Close()

	return slashmcp.ServeStdio(slashmcp.NewServer(businessAPI, r.config, r.translator))
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// getConfigFromFlags loads configuration, applies changed flags and builds the
// logger and translator every subcommand shares
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("storage") {
		v, _ := flags.GetString("storage")
		overrides.StorageBackend = &v
	}
	if flags.Changed("dsn") {
		v, _ := flags.GetString("dsn")
		overrides.StorageDSN = &v
	}
	if flags.Changed("date-layout") {
		v, _ := flags.GetString("date-layout")
		overrides.DateLayout = &v
	}
	if flags.Changed("input-layout") {
		v, _ := flags.GetString("input-layout")
		overrides.InputLayout = &v
	}
	if flags.Changed("text-max-length") {
		v, _ := flags.GetInt("text-max-length")
		overrides.TaskTextMaxLength = &v
	}
	if flags.Changed("completion-policy") {
		v, _ := flags.GetString("completion-policy")
		overrides.CompletionPolicy = &v
	}
	if flags.Changed("seed") {
		v, _ := flags.GetBool("seed")
		overrides.Seed = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("lang") {
		v, _ := flags.GetString("lang")
		overrides.Language = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		overrides.LogFormat = &v
	}

	cfg, err := r.loader.LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	r.config = cfg

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	r.logger = logger
	zap.ReplaceGlobals(logger)

	tr, err := translator.New(translator.Config{DefaultLanguage: cfg.Application.Language})
	if err != nil {
		return err
	}
	r.translator = tr

	return nil
}
