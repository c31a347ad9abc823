package sqlite

import (
	"database/sql"

	"ticket-slash/internal/domain"
)

// taskRow mirrors the tasks table. seq carries insertion order.
type taskRow struct {
	Seq         int64          `db:"seq"`
	ID          string         `db:"id"`
	Text        string         `db:"text"`
	Completed   bool           `db:"completed"`
	CreatedAt   sql.NullString `db:"created_at"`
	CompletedAt sql.NullString `db:"completed_at"`
}

func toDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
	}

	if row.CreatedAt.Valid {
		t, err := ParseTimeFromDB(row.CreatedAt.String)
		if err != nil {
			return domain.Task{}, err
		}
		task.CreatedAt = t
	}

	if row.CompletedAt.Valid {
		t, err := ParseTimeFromDB(row.CompletedAt.String)
		if err != nil {
			return domain.Task{}, err
		}
		task.CompletedAt = &t
	}

	return task, nil
}

func toDomainTasks(rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := toDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
