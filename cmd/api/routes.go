package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hobbiesapi/internal/auth"
	"hobbiesapi/internal/book"
	"hobbiesapi/internal/config"
	"hobbiesapi/internal/httpx"
	"hobbiesapi/internal/media"
	"hobbiesapi/internal/metrics"
	"hobbiesapi/internal/rating"
	"hobbiesapi/internal/user"
)

type handlers struct {
	users   *user.HTTPHandler
	auth    *auth.HTTPHandler
	media   *media.HTTPHandler
	books   *book.HTTPHandler
	ratings *rating.HTTPHandler
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(cfg config.ServerConfig, jwtSecret string, revocations httpx.RevocationChecker, db pinger, h handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	// preflight must be answered before rate limiting and auth
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         86400,
	}))
	r.Use(httpx.SecurityHeadersMiddleware(false))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	r.Handle("/metrics", metrics.Handler())

	requireAuth := httpx.AuthMiddleware(jwtSecret, revocations)

	r.Group(func(r chi.Router) {
		r.Use(httpx.RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
		r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

		r.Get("/anime/{id}", h.media.Anime)
		r.Get("/manga/{id}", h.media.Manga)
		r.Get("/movie/{id}", h.media.Movie)
		r.Get("/book/{id}", h.books.Get)

		r.Route("/search", func(r chi.Router) {
			r.Get("/anime/{title}", h.media.SearchAnime)
			r.Get("/manga/{title}", h.media.SearchManga)
			r.Get("/movie/{title}", h.media.SearchMovie)
			r.Get("/book/{title}", h.books.Search)
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.users.Register)
			r.Post("/authenticate", h.auth.Authenticate)
			r.With(requireAuth).Post("/logout", h.auth.Logout)
			r.Get("/{uid}", h.users.Get)
		})

		r.Route("/ratings/{media}", func(r chi.Router) {
			r.Get("/user/{uid}", h.ratings.ListByUser)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", h.ratings.Create)
				r.Get("/{mediaID}", h.ratings.Get)
				r.Put("/{mediaID}", h.ratings.Update)
				r.Delete("/{mediaID}", h.ratings.Delete)
			})
		})
	})

	return r
}
