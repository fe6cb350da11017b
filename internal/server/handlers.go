package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskcal/taskcal/internal/model"
	"github.com/taskcal/taskcal/internal/view"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	task, err := s.store.CreateTask(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Failed to add task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	task, err := s.store.GetTask(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	var patch model.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	task, err := s.store.UpdateTask(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, r, err, "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteTask(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "Failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBoardView(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, view.BoardOf(tasks))
}

func (s *Server) handleMatrixView(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, view.MatrixOf(tasks))
}

func (s *Server) handleCalendarView(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListTasks(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "Failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, view.CalendarOf(tasks))
}

// taskID extracts and parses the {id} route parameter. A non-numeric
// id answers 404, same as an unknown task.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return 0, false
	}
	return id, true
}
