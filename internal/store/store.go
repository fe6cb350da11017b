package store

import (
	"context"

	"github.com/taskcal/taskcal/internal/model"
)

// Store defines the persistence interface for tasks. It is the sole
// writer of persisted state; one concrete implementation backs it.
type Store interface {
	// CreateTask inserts a new task with a freshly assigned id and
	// created_at/updated_at set to now. Unset optional fields take
	// their defaults. Returns a ValidationError when the title is
	// missing or blank, or an enum value is unknown.
	CreateTask(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error)

	// ListTasks returns all tasks ordered by id ascending. An empty
	// store yields an empty slice, not nil.
	ListTasks(ctx context.Context) ([]model.Task, error)

	// GetTask returns a single task. Returns a NotFoundError when the
	// id does not exist.
	GetTask(ctx context.Context, id int64) (*model.Task, error)

	// UpdateTask applies only the fields present in the patch and
	// refreshes updated_at. A date field present with an empty value
	// clears the column. Returns the updated task, a NotFoundError for
	// an unknown id, or a ValidationError for a blank title or bad
	// enum value.
	UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error)

	// DeleteTask removes a task permanently. Returns a NotFoundError
	// when the id does not exist, including on a repeated delete.
	DeleteTask(ctx context.Context, id int64) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}
