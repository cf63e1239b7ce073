// Package main implements the entry point for the launchkit API
// server: a layered REST backend with JWT authentication, request
// validation, and a uniform JSON response envelope.
package main

import (
	"flag"
	"log"

	"github.com/jwhitmore/launchkit/internal/config"
	"github.com/jwhitmore/launchkit/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	// Configuration is loaded and validated before anything else; a
	// missing required value means the process never serves a request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to set up database", "error", err)
		log.Fatalf("failed to set up database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd, appLogger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.serve(app.setupRouter()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
