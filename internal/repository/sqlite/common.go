package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"

	"ticket-slash/internal/errors"
)

// HandleDatabaseError converts driver errors to structured app errors.
// Context cancellation surfaces as a timeout.
func HandleDatabaseError(operation string, err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, err)
	}
	return errors.NewDatabaseError(operation, err)
}

// ValidateRowsAffected maps a zero-row write to a not found error for id.
func ValidateRowsAffected(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return errors.NewTaskNotFoundError(id)
	}
	return nil
}

// ExecuteWithRowsAffected executes a write that must touch the row identified by id.
func ExecuteWithRowsAffected(ctx context.Context, db *sqlx.DB, operation, query, id string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleDatabaseError(operation, err)
	}
	return ValidateRowsAffected(result, id)
}

// QuerySingle loads one row into T, mapping sql.ErrNoRows to not found.
func QuerySingle[T any](ctx context.Context, db *sqlx.DB, query, id string, args ...interface{}) (T, error) {
	var row T
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return row, errors.NewTaskNotFoundError(id)
		}
		return row, HandleDatabaseError("get task", err)
	}
	return row, nil
}

// QueryMultiple loads every row of query into a slice of T.
func QueryMultiple[T any](ctx context.Context, db *sqlx.DB, query string, args ...interface{}) ([]T, error) {
	var rows []T
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, HandleDatabaseError("list tasks", err)
	}
	return rows, nil
}
