// Package view derives the board, matrix, and calendar groupings the
// UI renders from a flat task list. All functions are pure.
package view

import "github.com/taskcal/taskcal/internal/model"

// Board groups tasks into the three kanban columns by status.
type Board struct {
	Todo       []model.Task `json:"todo"`
	InProgress []model.Task `json:"in_progress"`
	Done       []model.Task `json:"done"`
}

// Matrix groups tasks into the four Eisenhower quadrants. The axes are
// derived from the single priority value: urgent and high count as
// urgent, urgent and medium count as important.
type Matrix struct {
	UrgentImportant       []model.Task `json:"urgent_important"`
	UrgentNotImportant    []model.Task `json:"urgent_not_important"`
	NotUrgentImportant    []model.Task `json:"not_urgent_important"`
	NotUrgentNotImportant []model.Task `json:"not_urgent_not_important"`
}

// Calendar buckets tasks by assigned date. Days is keyed by the
// YYYY-MM-DD form of assigned_date; tasks without one land in
// Unassigned.
type Calendar struct {
	Days       map[string][]model.Task `json:"days"`
	Unassigned []model.Task            `json:"unassigned"`
}

// BoardOf partitions tasks into kanban columns. Tasks with an
// unexpected status are dropped rather than misfiled.
func BoardOf(tasks []model.Task) Board {
	b := Board{
		Todo:       []model.Task{},
		InProgress: []model.Task{},
		Done:       []model.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusTodo:
			b.Todo = append(b.Todo, t)
		case model.StatusInProgress:
			b.InProgress = append(b.InProgress, t)
		case model.StatusDone:
			b.Done = append(b.Done, t)
		}
	}
	return b
}

// Urgent reports whether a priority counts as urgent on the matrix.
func Urgent(priority string) bool {
	return priority == model.PriorityUrgent || priority == model.PriorityHigh
}

// Important reports whether a priority counts as important on the matrix.
func Important(priority string) bool {
	return priority == model.PriorityUrgent || priority == model.PriorityMedium
}

// MatrixOf partitions tasks into Eisenhower quadrants.
func MatrixOf(tasks []model.Task) Matrix {
	m := Matrix{
		UrgentImportant:       []model.Task{},
		UrgentNotImportant:    []model.Task{},
		NotUrgentImportant:    []model.Task{},
		NotUrgentNotImportant: []model.Task{},
	}
	for _, t := range tasks {
		urgent, important := Urgent(t.Priority), Important(t.Priority)
		switch {
		case urgent && important:
			m.UrgentImportant = append(m.UrgentImportant, t)
		case urgent:
			m.UrgentNotImportant = append(m.UrgentNotImportant, t)
		case important:
			m.NotUrgentImportant = append(m.NotUrgentImportant, t)
		default:
			m.NotUrgentNotImportant = append(m.NotUrgentNotImportant, t)
		}
	}
	return m
}

// CalendarOf buckets tasks by their assigned date.
func CalendarOf(tasks []model.Task) Calendar {
	c := Calendar{
		Days:       map[string][]model.Task{},
		Unassigned: []model.Task{},
	}
	for _, t := range tasks {
		if t.AssignedDate == nil {
			c.Unassigned = append(c.Unassigned, t)
			continue
		}
		day := t.AssignedDate.String()
		c.Days[day] = append(c.Days[day], t)
	}
	return c
}
