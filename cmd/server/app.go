package main

import (
	"database/sql"
	"log/slog"

	"github.com/jwhitmore/launchkit/internal/config"
	"github.com/jwhitmore/launchkit/internal/platform/postgres"
	"github.com/jwhitmore/launchkit/internal/service"
	"github.com/jwhitmore/launchkit/internal/service/auth"
	"github.com/jwhitmore/launchkit/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup happen in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	noteStore store.NoteStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	noteService      service.NoteService
}

// newApplication wires all dependencies from the already-initialized
// config, logger, and database connection.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, logger)
	noteStore := postgres.NewNoteStore(db, logger)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		noteStore:        noteStore,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
		noteService:      service.NewNoteService(noteStore, logger),
	}, nil
}
