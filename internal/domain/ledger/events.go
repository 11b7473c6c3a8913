package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeEntry   = "LedgerEntry"
	AggregateTypeAccount = "Account"
)

// Event type constants
const (
	EventTypeEntryRecorded     = "LedgerEntryRecorded"
	EventTypeEntryRevised      = "LedgerEntryRevised"
	EventTypeEntryRemoved      = "LedgerEntryRemoved"
	EventTypeBalanceRecomputed = "LedgerBalanceRecomputed"
)

// EntryRecordedEvent is published after a new entry is committed
type EntryRecordedEvent struct {
	shared.BaseDomainEvent
	AccountID    uuid.UUID       `json:"account_id"`
	EntryType    EntryType       `json:"entry_type"`
	Amount       decimal.Decimal `json:"amount"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// NewEntryRecordedEvent creates a new EntryRecordedEvent
func NewEntryRecordedEvent(entry *Entry) *EntryRecordedEvent {
	return &EntryRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryRecorded, AggregateTypeEntry, entry.ID),
		AccountID:       entry.AccountID,
		EntryType:       entry.Type,
		Amount:          entry.Amount,
		TotalBalance:    entry.TotalBalance,
	}
}

// BalanceRecomputedEvent is published after an account chain has been
// rewritten following an entry revision or removal
type BalanceRecomputedEvent struct {
	shared.BaseDomainEvent
	AccountID  uuid.UUID       `json:"account_id"`
	EntryCount int             `json:"entry_count"`
	Balance    decimal.Decimal `json:"balance"`
}

// NewBalanceRecomputedEvent creates a new BalanceRecomputedEvent
func NewBalanceRecomputedEvent(accountID uuid.UUID, entryCount int, balance decimal.Decimal) *BalanceRecomputedEvent {
	return &BalanceRecomputedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBalanceRecomputed, AggregateTypeAccount, accountID),
		AccountID:       accountID,
		EntryCount:      entryCount,
		Balance:         balance,
	}
}
