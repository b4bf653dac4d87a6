package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/forum-api/backend/internal/setup"
	"github.com/itchan-dev/forum-api/shared/api"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// New creates and configures a new chi router with all the routes.
// IMPORTANT! a limiter set with .Use counts requests of every route in that group together
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config.Public
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.RequestLogger)
	r.Use(mw.SecurityHeaders(cfg.SecureHeaders))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, api.Response{Status: api.StatusFail, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, api.Response{Status: api.StatusFail, Message: "method not allowed"})
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// Probes and metrics stay outside the request timeout
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout))

		// Registration and login, limited by IP
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(deps.AuthLimiter, mw.GetIP))
			r.Post("/users", h.RegisterUser)
			r.Post("/authentications", h.Login)
		})

		r.Get("/threads/{threadId}", h.GetThread)

		// Logged-in user routes
		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			createLimit := mw.RateLimit(deps.CreateLimiter, mw.GetUserIdentity)

			r.With(createLimit).Post("/threads", h.AddThread)
			r.With(createLimit).Post("/threads/{threadId}/comments", h.AddComment)
			r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		})
	})

	return r
}
