package services

import (
	"context"

	"go.uber.org/zap"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/logging"
	"ticket-slash/internal/repository"
	"ticket-slash/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.TaskRepository
	clock         domain.Clock
	newID         domain.IDGenerator
	policy        domain.CompletionPolicy
	taskValidator *validation.TaskValidator
	logger        *zap.Logger
}

// NewTaskService creates a new TaskService instance.
// A nil clock, id generator or logger falls back to the system clock, UUIDs and a no-op logger.
func NewTaskService(repo repository.TaskRepository, cfg *config.Config, clock domain.Clock, newID domain.IDGenerator, logger *zap.Logger) TaskService {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if newID == nil {
		newID = domain.NewUUID
	}
	return &taskServiceImpl{
		repo:          repo,
		clock:         clock,
		newID:         newID,
		policy:        cfg.GetCompletionPolicy(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		logger:        logging.OrNop(logger),
	}
}

// AddTask appends a new pending task built from rawText
func (t *taskServiceImpl) AddTask(ctx context.Context, rawText string) (*domain.Task, error) {
	text, err := t.taskValidator.ValidateText(rawText)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(t.newID(), text, t.clock.Now())
	if err := t.repo.Append(ctx, task); err != nil {
		return nil, err
	}

	t.logger.Debug("task added", zap.String("id", task.ID), zap.Int("length", len(task.Text)))
	return &task, nil
}

// ToggleComplete flips the completion state of the task with the given id
func (t *taskServiceImpl) ToggleComplete(ctx context.Context, id string) (*domain.Task, error) {
	current, err := t.lookup(ctx, "toggle", id)
	if err != nil {
		return nil, err
	}

	var next domain.Task
	if current.Completed {
		next = current.Reopen()
	} else {
		next = current.Complete(t.policy.CompletedAt(current, t.clock.Now()))
	}

	if err := t.repo.Replace(ctx, next); err != nil {
		return nil, err
	}

	t.logger.Debug("task toggled", zap.String("id", id), zap.Bool("completed", next.Completed))
	return &next, nil
}

// RemoveTask deletes the task with the given id. Callers confirm with the user first.
func (t *taskServiceImpl) RemoveTask(ctx context.Context, id string) error {
	if err := t.repo.Delete(ctx, id); err != nil {
		t.logNotFound("remove", id, err)
		return err
	}
	t.logger.Debug("task removed", zap.String("id", id))
	return nil
}

// GetTask returns the task with the given id
func (t *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := t.lookup(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns every task in insertion order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return t.repo.List(ctx)
}

// ListByTab returns the tasks shown on a tab, in insertion order
func (t *taskServiceImpl) ListByTab(ctx context.Context, tab domain.Tab) ([]domain.Task, error) {
	tasks, err := t.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := tab.Filter()
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task) {
			out = append(out, task)
		}
	}
	return out, nil
}

// Seed appends the given tasks with fresh ids, bypassing the clock.
func (t *taskServiceImpl) Seed(ctx context.Context, seeds []SeedTask) ([]domain.Task, error) {
	added := make([]domain.Task, 0, len(seeds))
	for _, s := range seeds {
		text, err := t.taskValidator.ValidateText(s.Text)
		if err != nil {
			return added, err
		}

		task := domain.NewTask(t.newID(), text, s.CreatedAt)
		if s.Completed {
			at := t.policy.CompletedAt(task, t.clock.Now())
			if s.CompletedAt != nil {
				at = *s.CompletedAt
			}
			task = task.Complete(at)
		}

		if err := t.repo.Append(ctx, task); err != nil {
			return added, err
		}
		added = append(added, task)
	}

	t.logger.Debug("tasks seeded", zap.Int("count", len(added)))
	return added, nil
}

func (t *taskServiceImpl) lookup(ctx context.Context, op, id string) (domain.Task, error) {
	task, err := t.repo.Get(ctx, id)
	if err != nil {
		t.logNotFound(op, id, err)
		return domain.Task{}, err
	}
	return task, nil
}

func (t *taskServiceImpl) logNotFound(op, id string, err error) {
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		t.logger.Warn("task not found", zap.String("operation", op), zap.String("id", id))
	}
}
