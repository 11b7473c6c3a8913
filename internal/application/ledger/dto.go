package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// CreateEntryRequest represents the request to record a ledger entry.
// Exactly one of Credit or Debit must be set.
type CreateEntryRequest struct {
	AccountID uuid.UUID        `json:"account_id" binding:"required"`
	Credit    *decimal.Decimal `json:"credit"`
	Debit     *decimal.Decimal `json:"debit"`
	EntryDate string           `json:"entry_date"` // YYYY-MM-DD, defaults to today
	Details   string           `json:"details" binding:"max=500"`
	ReceiptID *uuid.UUID       `json:"receipt_id"`
}

// UpdateEntryRequest represents the request to revise a ledger entry.
// Leaving both Credit and Debit unset keeps the recorded amount.
type UpdateEntryRequest struct {
	Credit    *decimal.Decimal `json:"credit"`
	Debit     *decimal.Decimal `json:"debit"`
	EntryDate string           `json:"entry_date"`
	Details   *string          `json:"details" binding:"omitempty,max=500"`
	ReceiptID *uuid.UUID       `json:"receipt_id"`
}

// EntryListFilter represents filter options for entry lists
type EntryListFilter struct {
	Type      string `form:"type" binding:"omitempty,oneof=CREDIT DEBIT"`
	ReceiptID string `form:"receipt_id" binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID           uuid.UUID        `json:"id"`
	Seq          int64            `json:"seq"`
	AccountID    uuid.UUID        `json:"account_id"`
	Type         string           `json:"type"`
	Credit       *decimal.Decimal `json:"credit,omitempty"`
	Debit        *decimal.Decimal `json:"debit,omitempty"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
	EntryDate    time.Time        `json:"entry_date"`
	Details      string           `json:"details,omitempty"`
	ReceiptID    *uuid.UUID       `json:"receipt_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BalanceResponse represents an account's current ledger balance
type BalanceResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToEntryResponse converts a domain Entry to EntryResponse
func ToEntryResponse(e *ledger.Entry) EntryResponse {
	resp := EntryResponse{
		ID:           e.ID,
		Seq:          e.Seq,
		AccountID:    e.AccountID,
		Type:         e.Type.String(),
		TotalBalance: e.TotalBalance,
		EntryDate:    e.EntryDate,
		Details:      e.Details,
		ReceiptID:    e.ReceiptID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	amount := e.Amount
	if e.IsCredit() {
		resp.Credit = &amount
	} else {
		resp.Debit = &amount
	}
	return resp
}

// ToEntryResponses converts a slice of domain Entries to EntryResponses
func ToEntryResponses(entries []*ledger.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToEntryResponse(e)
	}
	return responses
}

// resolveAmount maps the credit-xor-debit pair of a request onto the
// typed amount the domain expects.
func resolveAmount(credit, debit *decimal.Decimal) (ledger.EntryType, decimal.Decimal, error) {
	switch {
	case credit != nil && debit != nil:
		return "", decimal.Zero, shared.NewDomainError("INVALID_INPUT", "An entry cannot be both a credit and a debit")
	case credit != nil:
		return ledger.EntryTypeCredit, *credit, nil
	case debit != nil:
		return ledger.EntryTypeDebit, *debit, nil
	default:
		return "", decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Either credit or debit must be provided")
	}
}

// parseEntryDate parses a YYYY-MM-DD date string
func parseEntryDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_INPUT", "Entry date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}
