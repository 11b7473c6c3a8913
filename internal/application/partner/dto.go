package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/partner"
)

// CreateAccountRequest represents a request to create a new account
type CreateAccountRequest struct {
	Type  string `json:"type" binding:"required,oneof=CUSTOMER STORE"`
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
	Notes string `json:"notes" binding:"max=1000"`
}

// UpdateAccountRequest represents a request to update an account
type UpdateAccountRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=30"`
	Notes string `json:"notes" binding:"max=1000"`
}

// ListAccountsRequest represents filter options for account lists
type ListAccountsRequest struct {
	Type     string `form:"type" binding:"omitempty,oneof=CUSTOMER STORE"`
	Search   string `form:"search" binding:"max=200"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountEntry represents one ledger row when an account is fetched
// with its chain
type AccountEntry struct {
	ID           uuid.UUID        `json:"id"`
	Seq          int64            `json:"seq"`
	Type         string           `json:"type"`
	Credit       *decimal.Decimal `json:"credit,omitempty"`
	Debit        *decimal.Decimal `json:"debit,omitempty"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
	EntryDate    time.Time        `json:"entry_date"`
	Details      string           `json:"details,omitempty"`
}

// AccountDetailResponse represents an account with its ledger chain
type AccountDetailResponse struct {
	AccountResponse
	Entries []AccountEntry `json:"entries,omitempty"`
}

// ToAccountResponse converts a domain Account to AccountResponse
func ToAccountResponse(a *partner.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Type:      a.Type.String(),
		Name:      a.Name,
		Phone:     a.Phone,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain Accounts to AccountResponses
func ToAccountResponses(accounts []partner.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// ToAccountEntry converts a domain ledger.Entry to AccountEntry
func ToAccountEntry(e *ledger.Entry) AccountEntry {
	entry := AccountEntry{
		ID:           e.ID,
		Seq:          e.Seq,
		Type:         e.Type.String(),
		TotalBalance: e.TotalBalance,
		EntryDate:    e.EntryDate,
		Details:      e.Details,
	}
	amount := e.Amount
	if e.IsCredit() {
		entry.Credit = &amount
	} else {
		entry.Debit = &amount
	}
	return entry
}
