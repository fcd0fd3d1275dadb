package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/auth"
	"github.com/careercompass/backend/internal/chat"
	"github.com/careercompass/backend/internal/colleges"
	"github.com/careercompass/backend/internal/httpx"
	"github.com/careercompass/backend/internal/jobs"
	"github.com/careercompass/backend/internal/logging"
	"github.com/careercompass/backend/internal/middleware"
)

type handlers struct {
	auth     *auth.Handler
	chat     *chat.Handler
	jobs     *jobs.Handler
	colleges *colleges.Handler
	authn    middleware.Authenticator
}

func newRouter(log *zap.Logger, origins []string, h handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	rest := func(fn httpx.Handler) http.HandlerFunc {
		return httpx.RestHandler(log, fn)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", rest(h.auth.Register))
		r.Post("/login", rest(h.auth.Login))
		r.Post("/refresh", rest(h.auth.Refresh))
		r.Post("/logout", rest(h.auth.Logout))
		r.Post("/jobs/search", rest(h.jobs.Search))
		r.Post("/colleges/search", rest(h.colleges.Search))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.authn, log))
			r.Get("/home", rest(h.auth.Home))
			r.Post("/chat", rest(h.chat.Send))
			r.Get("/chat/history", rest(h.chat.History))
		})
	})

	return r
}
