package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/daymark/internal/calendar"
	"github.com/claude/daymark/internal/fatigue"
	"github.com/claude/daymark/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	engine *fatigue.Engine
	cal    *calendar.Client
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. cal may be nil when
// the calendar provider is disabled; study endpoints then serve from the
// local mirror only.
func New(db *storage.DB, engine *fatigue.Engine, cal *calendar.Client, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		engine: engine,
		cal:    cal,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		// Workout planning
		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Put("/templates/{id}", s.handleUpdateTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)

		r.Get("/logs", s.handleListLogs)
		r.Post("/logs", s.handleCreateLog)
		r.Delete("/logs/{id}", s.handleDeleteLog)

		// Fatigue evaluation
		r.Get("/fatigue", s.handleFatigue)

		// Habit tracking
		r.Get("/habits", s.handleListHabits)
		r.Post("/habits", s.handleCreateHabit)
		r.Post("/habits/{id}/checkin", s.handleHabitCheckin)
		r.Post("/habits/{id}/archive", s.handleHabitArchive)
		r.Get("/habits/{id}/checkins", s.handleHabitCheckins)
		r.Get("/habits/streaks", s.handleHabitStreaks)

		// Study tracking
		r.Get("/study/today", s.handleStudyToday)
		r.Get("/study/history", s.handleStudyHistory)
		r.Get("/study/sessions", s.handleStudySessions)
		r.Delete("/study/today/plan", s.handleDeleteStudyPlan)

		// Sync store
		r.Get("/sync", s.handleListSyncKeys)
		r.Get("/sync/{key}", s.handleGetSyncEntry)
		r.Put("/sync/{key}", s.handlePutSyncEntry)
		r.Delete("/sync/{key}", s.handleDeleteSyncEntry)
	})
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
