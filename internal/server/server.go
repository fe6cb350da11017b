package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/taskcal/taskcal/internal/store"
	"github.com/taskcal/taskcal/static"
)

// Server serves the JSON API under /api and the embedded single-page
// UI at /. It owns no state beyond the injected store handle.
type Server struct {
	store  store.Store
	addr   string
	server *http.Server
}

// New constructs a Server around an already-open store. The underlying
// http.Server is built here so Shutdown can be called from another
// goroutine without racing ListenAndServe.
func New(st store.Store, addr string) *Server {
	s := &Server{store: st, addr: addr}
	s.server = &http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

// Handler builds the full route tree. Exposed separately so tests can
// drive it through httptest without binding a socket.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Use(requestLogger)

		r.Get("/health", s.handleHealth)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Post("/", s.handleCreateTask)
			r.Get("/{id}", s.handleGetTask)
			r.Put("/{id}", s.handleUpdateTask)
			r.Delete("/{id}", s.handleDeleteTask)
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/board", s.handleBoardView)
			r.Get("/matrix", s.handleMatrixView)
			r.Get("/calendar", s.handleCalendarView)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
	})

	r.Handle("/*", http.FileServerFS(static.FS()))

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(r)
}

// ListenAndServe starts the HTTP server. The provided context is used
// as the base context for all incoming requests, so cancelling it
// (e.g. on a shutdown signal) also cancels in-flight store calls.
func (s *Server) ListenAndServe(ctx context.Context) error {
	slog.Info("starting server", "addr", s.addr)
	s.server.BaseContext = func(_ net.Listener) context.Context { return ctx }
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
