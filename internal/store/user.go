package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jwhitmore/launchkit/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already
	// be populated. Returns ErrEmailExists if the email is taken and
	// domain validation errors if the data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
