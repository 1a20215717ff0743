package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"hobbiesapi/internal/logging"
)

// gooseLogger routes goose output through zerolog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logging.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logging.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func main() {
	var (
		command   = flag.String("command", "up", "Migration command: up, down, status, create")
		name      = flag.String("name", "", "Name for 'create' command")
		logFormat = flag.String("log-format", "console", "Log format: console or json")
	)
	flag.Parse()

	logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: *logFormat})
	loadEnvFiles()

	dir := migrationsDir()
	goose.SetLogger(gooseLogger{})
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		logging.Fatal().Err(err).Msg("set goose dialect")
	}

	if *command == "create" {
		if *name == "" {
			logging.Fatal().Msg("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logging.Fatal().Err(err).Str("name", *name).Msg("create migration")
		}
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseDSN())
	if err != nil {
		logging.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	log := logging.Info().Str("dir", dir).Str("command", *command)
	switch *command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			logging.Fatal().Err(err).Msg("apply migrations")
		}
		log.Msg("migrations applied")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			logging.Fatal().Err(err).Msg("roll back migration")
		}
		log.Msg("migration rolled back")
	case "status":
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			logging.Fatal().Err(err).Msg("migration status")
		}
	default:
		logging.Fatal().Str("command", *command).Msg("unknown command, use: up, down, status, create")
	}
}
