package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// EntryType represents the direction of a ledger entry
type EntryType string

const (
	// EntryTypeCredit represents money received from the account holder (balance increase)
	EntryTypeCredit EntryType = "CREDIT"
	// EntryTypeDebit represents money paid out or owed (balance decrease)
	EntryTypeDebit EntryType = "DEBIT"
)

// String returns the string representation of EntryType
func (t EntryType) String() string {
	return string(t)
}

// IsValid returns true if the entry type is valid
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeCredit, EntryTypeDebit:
		return true
	}
	return false
}

// Entry represents one row of an account's running-balance ledger.
// Seq is assigned by the database on insert and is the authoritative
// ordering of the chain; EntryDate is user-supplied display data and
// plays no part in balance computation.
type Entry struct {
	shared.BaseEntity
	Seq          int64
	AccountID    uuid.UUID
	Type         EntryType
	Amount       decimal.Decimal // Always positive, direction determined by type
	TotalBalance decimal.Decimal // Running balance after this entry
	EntryDate    time.Time
	Details      string
	ReceiptID    *uuid.UUID
}

// NewEntry creates a new ledger entry. The running balance is left at
// zero until the entry is placed in its account chain.
func NewEntry(accountID uuid.UUID, entryType EntryType, amount decimal.Decimal) (*Entry, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Account ID cannot be empty")
	}
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_TYPE", "Entry must be a credit or a debit")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		AccountID:  accountID,
		Type:       entryType,
		Amount:     amount,
		EntryDate:  time.Now(),
	}, nil
}

// WithEntryDate sets the user-supplied entry date
func (e *Entry) WithEntryDate(date time.Time) *Entry {
	e.EntryDate = date
	return e
}

// WithDetails sets the free-text details
func (e *Entry) WithDetails(details string) *Entry {
	e.Details = details
	return e
}

// WithReceiptID links the entry to a sales receipt
func (e *Entry) WithReceiptID(receiptID uuid.UUID) *Entry {
	e.ReceiptID = &receiptID
	return e
}

// SignedAmount returns the amount with sign based on entry type:
// positive for credits, negative for debits.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Type == EntryTypeDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// IsCredit returns true for credit entries
func (e *Entry) IsCredit() bool {
	return e.Type == EntryTypeCredit
}

// IsDebit returns true for debit entries
func (e *Entry) IsDebit() bool {
	return e.Type == EntryTypeDebit
}

// Revise replaces the mutable fields of the entry. The account chain
// must be recomputed afterwards; the stored TotalBalance is stale once
// this returns.
func (e *Entry) Revise(entryType EntryType, amount decimal.Decimal) error {
	if !entryType.IsValid() {
		return shared.NewDomainError("INVALID_ENTRY_TYPE", "Entry must be a credit or a debit")
	}
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	e.Type = entryType
	e.Amount = amount
	e.Touch()
	return nil
}
