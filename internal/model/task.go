package model

import "time"

// Task status constants.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a single to-do item with scheduling and status metadata.
// Date fields serialize as YYYY-MM-DD strings and are null when unset.
type Task struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	DueDate      *Date     `json:"due_date" db:"due_date"`
	AssignedDate *Date     `json:"assigned_date" db:"assigned_date"`
	Priority     string    `json:"priority" db:"priority"`
	Status       string    `json:"status" db:"status"`
	Notes        string    `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTaskRequest carries the fields accepted when creating a task.
// Unset optional fields take their defaults (empty text, medium
// priority, todo status, no dates). Date fields decode like patch
// fields: an empty string or null means no date, same as omitting the
// key.
type CreateTaskRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      DatePatch `json:"due_date"`
	AssignedDate DatePatch `json:"assigned_date"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
}

// TaskPatch is an explicit partial update: only fields present in the
// request body are applied. Text and enum fields use pointers where nil
// (absent or JSON null) means leave unchanged. Date fields use
// DatePatch so that an explicit empty string or null clears the date,
// while an absent key leaves it unchanged.
type TaskPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	DueDate      DatePatch `json:"due_date"`
	AssignedDate DatePatch `json:"assigned_date"`
	Priority     *string   `json:"priority"`
	Status       *string   `json:"status"`
	Notes        *string   `json:"notes"`
}

// IsZero reports whether the patch carries no fields at all.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil &&
		!p.DueDate.Set && !p.AssignedDate.Set &&
		p.Priority == nil && p.Status == nil && p.Notes == nil
}
