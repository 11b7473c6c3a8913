package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// EntryFilter represents filter options for querying ledger entries.
// DateFrom is inclusive, DateTo is an exclusive upper bound.
type EntryFilter struct {
	AccountID *uuid.UUID
	Type      *EntryType
	ReceiptID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// EntryRepository defines the persistence interface for ledger entries.
// All reads that feed a recompute return entries in Seq order.
type EntryRepository interface {
	// Create persists a new entry; the database assigns Seq
	Create(ctx context.Context, entry *Entry) error
	// FindByID returns an entry or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	// Update persists the mutable fields and TotalBalance of an entry
	Update(ctx context.Context, entry *Entry) error
	// Delete removes an entry or returns shared.ErrNotFound
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByAccountID removes the whole chain of an account. Deleting
	// an account that has no entries is not an error.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// FindByAccountID returns all entries of an account in Seq order
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*Entry, error)
	// GetLatestByAccountID returns the entry with the highest Seq, or
	// nil without error when the account has no entries
	GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*Entry, error)
	// UpdateBalances persists recomputed TotalBalance values in bulk
	UpdateBalances(ctx context.Context, entries []*Entry) error

	// List returns a filtered page of entries in Seq order
	List(ctx context.Context, filter EntryFilter) (shared.Paginated[*Entry], error)
}
