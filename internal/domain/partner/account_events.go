package partner

import (
	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeAccount = "Account"

// Event type constants
const (
	EventTypeAccountCreated = "AccountCreated"
	EventTypeAccountUpdated = "AccountUpdated"
	EventTypeAccountDeleted = "AccountDeleted"
)

// AccountCreatedEvent is published when a new account is created
type AccountCreatedEvent struct {
	shared.BaseDomainEvent
	AccountID uuid.UUID   `json:"account_id"`
	Type      AccountType `json:"type"`
	Name      string      `json:"name"`
}

// NewAccountCreatedEvent creates a new AccountCreatedEvent
func NewAccountCreatedEvent(account *Account) *AccountCreatedEvent {
	return &AccountCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountCreated, AggregateTypeAccount, account.ID),
		AccountID:       account.ID,
		Type:            account.Type,
		Name:            account.Name,
	}
}

// AccountUpdatedEvent is published when an account is updated
type AccountUpdatedEvent struct {
	shared.BaseDomainEvent
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
}

// NewAccountUpdatedEvent creates a new AccountUpdatedEvent
func NewAccountUpdatedEvent(account *Account) *AccountUpdatedEvent {
	return &AccountUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountUpdated, AggregateTypeAccount, account.ID),
		AccountID:       account.ID,
		Name:            account.Name,
		Phone:           account.Phone,
	}
}

// AccountDeletedEvent is published when an account is deleted
type AccountDeletedEvent struct {
	shared.BaseDomainEvent
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
}

// NewAccountDeletedEvent creates a new AccountDeletedEvent
func NewAccountDeletedEvent(account *Account) *AccountDeletedEvent {
	return &AccountDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountDeleted, AggregateTypeAccount, account.ID),
		AccountID:       account.ID,
		Name:            account.Name,
	}
}
