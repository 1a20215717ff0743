package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hobbiesapi/internal/auth"
	"hobbiesapi/internal/book"
	"hobbiesapi/internal/config"
	"hobbiesapi/internal/docstore"
	"hobbiesapi/internal/logging"
	"hobbiesapi/internal/media"
	"hobbiesapi/internal/platform/goodreads"
	"hobbiesapi/internal/platform/jikan"
	"hobbiesapi/internal/platform/tmdb"
	"hobbiesapi/internal/platform/upstream"
	"hobbiesapi/internal/rating"
	"hobbiesapi/internal/user"
)

const revocationSweepInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool := mustOpenDB(ctx, cfg.Database.DSN)
	defer dbPool.Close()
	store := docstore.New(dbPool, cfg.Database.QueryTimeout)

	userService := user.NewService(user.NewDocstoreRepo(store))
	authService := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, userService, auth.NewDocstoreRevocations(store))
	ratingService := rating.NewService(rating.NewDocstoreRepo(store))

	jikanClient := jikan.NewClient(upstream.NewClient(upstreamConfig(cfg.Upstream, "jikan")), cfg.Jikan.BaseURL)
	tmdbClient := tmdb.NewClient(upstream.NewClient(upstreamConfig(cfg.Upstream, "tmdb")), cfg.TMDB.BaseURL, cfg.TMDB.APIKey)
	goodreadsClient := goodreads.NewClient(upstream.NewClient(upstreamConfig(cfg.Upstream, "goodreads")), cfg.Goodreads.BaseURL, cfg.Goodreads.APIKey)

	if cfg.TMDB.APIKey == "" {
		logging.Warn().Msg("TMDB_API_KEY is not set, movie routes will fail upstream")
	}
	if cfg.Goodreads.APIKey == "" {
		logging.Warn().Msg("GOODREADS_API_KEY is not set, book routes will fail upstream")
	}

	router := newRouter(cfg.Server, cfg.Auth.JWTSecret, authService, store, handlers{
		users:   user.NewHTTPHandler(userService),
		auth:    auth.NewHTTPHandler(authService),
		media:   media.NewHTTPHandler(media.NewService(jikanClient, tmdbClient)),
		books:   book.NewHTTPHandler(book.NewService(goodreadsClient)),
		ratings: rating.NewHTTPHandler(ratingService),
	})

	go authService.RunRevocationJanitor(ctx, revocationSweepInterval)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logging.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func upstreamConfig(cfg config.UpstreamConfig, provider string) upstream.Config {
	return upstream.Config{
		Provider:          provider,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		MaxRetries:        cfg.MaxRetries,
		BreakerFailures:   cfg.BreakerFailures,
		BreakerTimeout:    cfg.BreakerTimeout,
		UserAgent:         cfg.UserAgent,
	}
}

func mustOpenDB(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logging.Fatal().Err(err).Str("dsn", redactDSN(dsn)).Msg("cannot create db pool")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logging.Fatal().Err(err).Str("dsn", redactDSN(dsn)).Msg("cannot ping database")
	}
	logging.Info().Str("dsn", redactDSN(dsn)).Msg("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
