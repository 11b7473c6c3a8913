package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID, or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByName finds a user by unique name, or shared.ErrNotFound
	FindByName(ctx context.Context, name string) (*User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// ExistsByName checks whether a user name is taken
	ExistsByName(ctx context.Context, name string) (bool, error)
}
