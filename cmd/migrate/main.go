// Command migrate applies or reverts the database schema.
//
//	migrate -direction up
//	migrate -direction down
//
// The connection string is read from DATABASE_URL, then from database.url in
// the config file at CONFIG_PATH. With LOCAL=true a .env file is loaded first.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/shandysiswandi/smartlocker/internal/pkg/config"
	"github.com/shandysiswandi/smartlocker/internal/pkg/dbmigrate"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if os.Getenv("LOCAL") == "true" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to load .env file", "error", err)
			os.Exit(1)
		}
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = dsnFromConfig()
	}

	err := dbmigrate.Run(dsn, dbmigrate.Direction(*direction))
	switch {
	case errors.Is(err, dbmigrate.ErrNoChange):
		slog.Info("no migration to apply", "direction", *direction)
	case err != nil:
		slog.Error("failed to migrate", "direction", *direction, "error", err)
		os.Exit(1)
	default:
		slog.Info("migration applied", "direction", *direction)
	}
}

func dsnFromConfig() string {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to read config", "path", path, "error", err)
		os.Exit(1)
	}
	defer func() { _ = cfg.Close() }()

	return cfg.GetString("database.url")
}
