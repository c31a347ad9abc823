package mapper

import (
	"time"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/server/dto"
	"ticket-slash/internal/services"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
	}

	if task.HasCreatedAt() {
		value := task.CreatedAt.Format(time.RFC3339)
		item.CreatedAt = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}

// ToSearchResponse maps a search result. prefix is the localized "Filtered by: " label.
func ToSearchResponse(result *services.SearchResult, prefix string) dto.SearchResponse {
	return dto.SearchResponse{
		Items:       ToTaskItems(result.Items),
		Description: result.Description,
		FilteredBy:  prefix + result.Description,
		Count:       result.Count(),
	}
}
