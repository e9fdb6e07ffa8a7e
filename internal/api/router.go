package api

import (
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/teamcal/teamcal/internal/api/handler"
	"github.com/teamcal/teamcal/internal/api/middleware"
	"github.com/teamcal/teamcal/internal/group"
	"github.com/teamcal/teamcal/internal/meeting"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Meetings    meeting.Repository
	Groups      group.Repository
	DBPinger    handler.DBPinger
	Version     string
	CORSOrigins string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(deps.CORSOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	meetingHandler := handler.NewMeetingHandler(deps.Meetings)
	groupHandler := handler.NewGroupHandler(deps.Groups)

	r.Route("/api", func(r chi.Router) {
		r.Route("/meetings", func(r chi.Router) {
			r.Get("/{teamId}", meetingHandler.List)
			r.Post("/", meetingHandler.Create)
			r.Put("/{id}", meetingHandler.Update)
			r.Delete("/{id}", meetingHandler.Delete)
		})
		r.Route("/development-groups", func(r chi.Router) {
			r.Get("/", groupHandler.List)
			r.Post("/", groupHandler.Create)
		})
	})

	return r
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return []string{"*"}
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
