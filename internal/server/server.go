package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ticket-slash/internal/api"
	"ticket-slash/internal/config"
	"ticket-slash/internal/logging"
	"ticket-slash/internal/server/handlers"
	"ticket-slash/internal/server/middleware"
	"ticket-slash/internal/translator"
	"ticket-slash/internal/validation"
)

const (
	AppName    = "ticket-slash"
	AppVersion = "1.0.0-beta"
)

// Server exposes the business API over HTTP.
type Server struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	logger      *zap.Logger
	engine      *gin.Engine
}

// New builds the gin engine and registers every route.
func New(businessAPI api.BusinessAPI, cfg *config.Config, tr *translator.Translator, logger *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if tr == nil {
		tr = translator.Default()
	}
	logger = logging.OrNop(logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(logger))

	healthHandler := handlers.NewHealthHandler(businessAPI, AppName, AppVersion)
	taskHandler := handlers.NewTaskHandler(businessAPI, tr, validation.NewSearchValidatorWithConfig(cfg))
	RegisterRoutes(r, cfg.Application.Language, healthHandler, taskHandler)

	return &Server{
		businessAPI: businessAPI,
		config:      cfg,
		logger:      logger,
		engine:      r,
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until SIGINT or SIGTERM, then shuts the listener and the store down.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	wait := gfshutdown.GracefulShutdown(
		ctx,
		s.config.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				s.logger.Info("shutting down server")
				return srv.Shutdown(ctx)
			},
			"task-store": func(ctx context.Context) error {
				return s.businessAPI.Close()
			},
		},
	)

	if err, ok := <-serveErr; ok && err != nil {
		_ = s.businessAPI.Close()
		return fmt.Errorf("could not start server: %w", err)
	}

	if code := <-wait; code != 0 {
		return fmt.Errorf("shutdown finished with exit code %d", code)
	}
	return nil
}
