package receipt

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeReceipt = "Receipt"

// Event type constants
const (
	EventTypeReceiptCreated = "ReceiptCreated"
	EventTypeReceiptUpdated = "ReceiptUpdated"
	EventTypeReceiptDeleted = "ReceiptDeleted"
)

// ReceiptCreatedEvent is published when a new receipt is created
type ReceiptCreatedEvent struct {
	shared.BaseDomainEvent
	ReceiptID  uuid.UUID       `json:"receipt_id"`
	Number     string          `json:"number"`
	Kind       Kind            `json:"kind"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewReceiptCreatedEvent creates a new ReceiptCreatedEvent
func NewReceiptCreatedEvent(r *Receipt) *ReceiptCreatedEvent {
	return &ReceiptCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReceiptCreated, AggregateTypeReceipt, r.ID),
		ReceiptID:       r.ID,
		Number:          r.Number,
		Kind:            r.Kind,
		TotalPrice:      r.TotalPrice,
	}
}

// ReceiptUpdatedEvent is published when a receipt is updated
type ReceiptUpdatedEvent struct {
	shared.BaseDomainEvent
	ReceiptID  uuid.UUID       `json:"receipt_id"`
	Number     string          `json:"number"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewReceiptUpdatedEvent creates a new ReceiptUpdatedEvent
func NewReceiptUpdatedEvent(r *Receipt) *ReceiptUpdatedEvent {
	return &ReceiptUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReceiptUpdated, AggregateTypeReceipt, r.ID),
		ReceiptID:       r.ID,
		Number:          r.Number,
		TotalPrice:      r.TotalPrice,
	}
}

// ReceiptDeletedEvent is published when a receipt is deleted
type ReceiptDeletedEvent struct {
	shared.BaseDomainEvent
	ReceiptID uuid.UUID `json:"receipt_id"`
	Number    string    `json:"number"`
}

// NewReceiptDeletedEvent creates a new ReceiptDeletedEvent
func NewReceiptDeletedEvent(r *Receipt) *ReceiptDeletedEvent {
	return &ReceiptDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReceiptDeleted, AggregateTypeReceipt, r.ID),
		ReceiptID:       r.ID,
		Number:          r.Number,
	}
}
