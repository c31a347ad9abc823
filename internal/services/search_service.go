package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/logging"
	"ticket-slash/internal/repository"
	"ticket-slash/internal/validation"
)

// DefaultDateLayout renders dates the way a US short date looks, e.g. 3/6/2025.
const DefaultDateLayout = "1/2/2006"

// ShowingAllDescription describes an unrestricted search. Validation rejects
// such searches, so Search only returns it if that rule is ever relaxed.
const ShowingAllDescription = "Showing all todos"

// DescriptionPrefix is prepended by surfaces when displaying a description.
const DescriptionPrefix = "Filtered by: "

var searchValidator = validation.NewSearchValidator()

// Search filters tasks by opts and describes the criteria applied.
// It is pure: tasks is never modified and the result preserves input order.
func Search(tasks []domain.Task, opts domain.SearchOptions, dateLayout string) (*SearchResult, error) {
	if opts.Status == "" {
		opts.Status = domain.StatusAll
	}
	if err := searchValidator.Validate(opts); err != nil {
		return nil, err
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	clauses := []string{fmt.Sprintf("Status (%s)", opts.Status.Label())}
	restricted := opts.Status != domain.StatusAll

	keep := func(domain.Task) bool { return true }

	if opts.StartDate != nil {
		start := domain.StartOfDay(*opts.StartDate)
		prev := keep
		keep = func(t domain.Task) bool {
			return prev(t) && t.HasCreatedAt() && !t.CreatedAt.Before(start)
		}
		clauses = append(clauses, fmt.Sprintf("Start Date (%s)", opts.StartDate.Format(dateLayout)))
		restricted = true
	}

	if opts.EndDate != nil {
		end := domain.EndOfDay(*opts.EndDate)
		prev := keep
		keep = func(t domain.Task) bool {
			return prev(t) && t.HasCreatedAt() && !t.CreatedAt.After(end)
		}
		clauses = append(clauses, fmt.Sprintf("End Date (%s)", opts.EndDate.Format(dateLayout)))
		restricted = true
	}

	items := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if opts.Status.Matches(t) && keep(t) {
			items = append(items, t)
		}
	}

	description := strings.Join(clauses, ", ")
	if !restricted {
		description = ShowingAllDescription
	}

	return &SearchResult{
		Items:       items,
		Description: description,
		Options:     opts,
	}, nil
}

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	repo       repository.TaskRepository
	dateLayout string
	logger     *zap.Logger
}

// NewSearchService creates a new SearchService instance
func NewSearchService(repo repository.TaskRepository, cfg *config.Config, logger *zap.Logger) SearchService {
	layout := DefaultDateLayout
	if cfg != nil && cfg.Time.DateLayout != "" {
		layout = cfg.Time.DateLayout
	}
	return &searchServiceImpl{
		repo:       repo,
		dateLayout: layout,
		logger:     logging.OrNop(logger),
	}
}

// SearchTasks snapshots the collection and runs Search over it
func (s *searchServiceImpl) SearchTasks(ctx context.Context, opts domain.SearchOptions) (*SearchResult, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result, err := Search(tasks, opts, s.dateLayout)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("search completed",
		zap.String("description", result.Description),
		zap.Int("matches", result.Count()),
		zap.Int("total", len(tasks)),
	)
	return result, nil
}
