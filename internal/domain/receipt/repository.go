package receipt

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// ReceiptFilter represents filter options for querying receipts.
// DateFrom is inclusive, DateTo is an exclusive upper bound.
type ReceiptFilter struct {
	CustomerName *string
	Phone        *string
	Number       *string
	Kind         *Kind
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         int
	PageSize     int
}

// ReceiptRepository defines the interface for receipt persistence.
// Save persists the receipt header together with its items in one
// transaction; items absent from the aggregate are removed.
type ReceiptRepository interface {
	// FindByID finds a receipt with its items, or shared.ErrNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*Receipt, error)

	// FindByNumber finds a receipt by its unique number
	FindByNumber(ctx context.Context, number string) (*Receipt, error)

	// List returns a filtered page of receipts with items
	List(ctx context.Context, filter ReceiptFilter) (shared.Paginated[*Receipt], error)

	// Save creates or updates a receipt and its items atomically
	Save(ctx context.Context, receipt *Receipt) error

	// Delete removes a receipt and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByNumber checks whether a receipt number is taken
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
