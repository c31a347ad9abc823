package api

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/logging"
	"ticket-slash/internal/repository"
	"ticket-slash/internal/services"
)

// BusinessAPI is the single entry point used by every presentation surface.
// Calls are serialised: each one runs to completion before the next starts.
type BusinessAPI interface {
	// ========== Task Store ==========

	// AddTask appends a new pending task after trimming rawText
	AddTask(ctx context.Context, rawText string) (*domain.Task, error)

	// ToggleTask flips completion of the task with the given id
	ToggleTask(ctx context.Context, id string) (*domain.Task, error)

	// DeleteTask removes a task. Surfaces must obtain confirmation before calling it.
	DeleteTask(ctx context.Context, id string) error

	// ========== Queries ==========

	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListTab(ctx context.Context, tab domain.Tab) ([]domain.Task, error)

	// Search runs the query engine against a snapshot of the collection
	Search(ctx context.Context, opts domain.SearchOptions) (*services.SearchResult, error)

	// ========== Lifecycle ==========

	// Seed inserts startup tasks
	Seed(ctx context.Context, seeds []services.SeedTask) ([]domain.Task, error)

	// Time exposes date formatting for renderers
	Time() services.TimeService

	Close() error
}

// Options tunes dependencies that tests replace.
type Options struct {
	Clock       domain.Clock
	IDGenerator domain.IDGenerator
	Logger      *zap.Logger
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	mu       sync.Mutex
	repo     repository.TaskRepository
	services *services.ServiceContainer
	logger   *zap.Logger
}

// NewBusinessAPI wires services over repo.
func NewBusinessAPI(repo repository.TaskRepository, cfg *config.Config, opts Options) BusinessAPI {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	logger := logging.OrNop(opts.Logger)

	return &businessAPIImpl{
		repo: repo,
		services: &services.ServiceContainer{
			TimeService:   services.NewTimeService(cfg, opts.Clock),
			TaskService:   services.NewTaskService(repo, cfg, opts.Clock, opts.IDGenerator, logger),
			SearchService: services.NewSearchService(repo, cfg, logger),
		},
		logger: logger,
	}
}

// New creates the configured repository, wires the services and seeds the
// example tasks when cfg.Tasks.Seed is set.
func New(ctx context.Context, cfg *config.Config, opts Options) (BusinessAPI, error) {
	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	b := NewBusinessAPI(repo, cfg, opts)
	if cfg.Tasks.Seed {
		clock := opts.Clock
		if clock == nil {
			clock = domain.SystemClock{}
		}
		if _, err := b.Seed(ctx, services.DefaultSeeds(clock.Now())); err != nil {
			repo.Close()
			return nil, err
		}
	}

	return b, nil
}

func (b *businessAPIImpl) AddTask(ctx context.Context, rawText string) (*domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.AddTask(ctx, rawText)
}

func (b *businessAPIImpl) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.ToggleComplete(ctx, id)
}

func (b *businessAPIImpl) DeleteTask(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.RemoveTask(ctx, id)
}

func (b *businessAPIImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.GetTask(ctx, id)
}

func (b *businessAPIImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.ListTasks(ctx)
}

func (b *businessAPIImpl) ListTab(ctx context.Context, tab domain.Tab) ([]domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.ListByTab(ctx, tab)
}

func (b *businessAPIImpl) Search(ctx context.Context, opts domain.SearchOptions) (*services.SearchResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.SearchService.SearchTasks(ctx, opts)
}

func (b *businessAPIImpl) Seed(ctx context.Context, seeds []services.SeedTask) ([]domain.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.services.TaskService.Seed(ctx, seeds)
}

func (b *businessAPIImpl) Time() services.TimeService {
	return b.services.TimeService
}

func (b *businessAPIImpl) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger.Debug("closing task store")
	return b.repo.Close()
}
