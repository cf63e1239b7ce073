package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The plaintext Password field is
// only populated transiently during registration or password changes
// and must be hashed before the user is stored.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with a fresh ID and timestamps.
// The caller is responsible for hashing the password before storage.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the user's fields, returning the first violated
// domain invariant.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.Password != "" {
		// bcrypt truncates past 72 bytes, so longer passwords are rejected
		// rather than silently weakened.
		if len(u.Password) < 12 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
		return nil
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}

// validEmailFormat performs a structural check: one @, a non-empty
// local part, and a domain with an interior dot. Full RFC 5322
// validation is left to the request validation layer.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
