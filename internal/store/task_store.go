package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/taskcal/taskcal/internal/model"
)

const taskColumns = "id, title, description, due_date, assigned_date, priority, status, notes, created_at, updated_at"

// CreateTask inserts a new task and returns it with its assigned id.
func (s *SQLStore) CreateTask(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, validationErrorf("title must not be empty")
	}

	task := model.Task{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate.Value,
		AssignedDate: req.AssignedDate.Value,
		Priority:     req.Priority,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	} else if !model.ValidPriority(task.Priority) {
		return nil, validationErrorf("unknown priority %q", task.Priority)
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	} else if !model.ValidStatus(task.Status) {
		return nil, validationErrorf("unknown status %q", task.Status)
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	err := s.db.QueryRowxContext(ctx, s.q(`
		INSERT INTO tasks
			(title, description, due_date, assigned_date, priority, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		task.Title, task.Description, task.DueDate, task.AssignedDate,
		task.Priority, task.Status, task.Notes,
		task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return nil, unavailable("creating task", err)
	}

	return &task, nil
}

// ListTasks retrieves all tasks ordered by id ascending.
func (s *SQLStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := s.db.SelectContext(ctx, &tasks,
		"SELECT "+taskColumns+" FROM tasks ORDER BY id")
	if err != nil {
		return nil, unavailable("querying tasks", err)
	}
	return tasks, nil
}

// GetTask retrieves a single task by id.
func (s *SQLStore) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := s.db.GetContext(ctx, &task,
		s.q("SELECT "+taskColumns+" FROM tasks WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, unavailable("getting task", err)
	}
	return &task, nil
}

// UpdateTask applies the patch to an existing task and returns the
// updated row. Only fields present in the patch change; updated_at is
// refreshed on any write. An empty patch writes nothing and returns
// the task as is.
func (s *SQLStore) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsZero() {
		return task, nil
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, validationErrorf("title must not be empty")
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	if patch.Priority != nil {
		if !model.ValidPriority(*patch.Priority) {
			return nil, validationErrorf("unknown priority %q", *patch.Priority)
		}
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		if !model.ValidStatus(*patch.Status) {
			return nil, validationErrorf("unknown status %q", *patch.Status)
		}
		task.Status = *patch.Status
	}
	if patch.DueDate.Set {
		task.DueDate = patch.DueDate.Value
	}
	if patch.AssignedDate.Set {
		task.AssignedDate = patch.AssignedDate.Value
	}
	task.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, s.q(`
		UPDATE tasks SET
			title = ?, description = ?, due_date = ?, assigned_date = ?,
			priority = ?, status = ?, notes = ?, updated_at = ?
		WHERE id = ?`),
		task.Title, task.Description, task.DueDate, task.AssignedDate,
		task.Priority, task.Status, task.Notes, task.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, unavailable("updating task", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, &NotFoundError{ID: id}
	}

	return task, nil
}

// DeleteTask removes a task by id. Deleting an id that does not exist,
// including an id already deleted, reports a NotFoundError.
func (s *SQLStore) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, s.q("DELETE FROM tasks WHERE id = ?"), id)
	if err != nil {
		return unavailable("deleting task", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}
