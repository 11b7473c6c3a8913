package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// FindByID finds an account by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// FindAll finds all accounts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Account, error)

	// FindByType finds accounts of the given type
	FindByType(ctx context.Context, accountType AccountType, filter shared.Filter) ([]Account, error)

	// Save creates or updates an account
	Save(ctx context.Context, account *Account) error

	// Delete deletes an account
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts accounts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Exists checks whether an account with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
