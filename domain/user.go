package domain

import (
	"context"
	"time"
)

// User represents a registered account.
// A user can open threads, comment, reply and like comments.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	Fullname  string    // Display name
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login and username-availability checks.
	// Returns ErrNotFound if the username is not registered.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByIDs retrieves users for the given IDs in one query.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user registration.
type UserUsecase interface {
	// Register creates a new user account with a hashed password.
	// Returns ErrConflict if the username is already taken.
	// The plain password in u is replaced by its hash on success.
	Register(ctx context.Context, u *User) error
}
