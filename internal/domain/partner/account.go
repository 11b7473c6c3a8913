package partner

import (
	"regexp"
	"strings"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// AccountType represents the kind of party an account belongs to
type AccountType string

const (
	// AccountTypeCustomer is a retail customer who owes or has prepaid money
	AccountTypeCustomer AccountType = "CUSTOMER"
	// AccountTypeStore is a supplier store the shop trades with
	AccountTypeStore AccountType = "STORE"
)

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// IsValid returns true if the account type is valid
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCustomer, AccountTypeStore:
		return true
	}
	return false
}

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{4,30}$`)

// Account represents a party that owns a running-balance ledger.
// It is the aggregate root for account operations; ledger entries
// reference it by ID and live in the ledger context.
type Account struct {
	shared.BaseAggregateRoot
	Type  AccountType
	Name  string
	Phone string
	Notes string
}

// NewAccount creates a new account with required fields
func NewAccount(accountType AccountType, name, phone string) (*Account, error) {
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Account type must be CUSTOMER or STORE")
	}
	if err := validateAccountName(name); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	account := &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              accountType,
		Name:              strings.TrimSpace(name),
		Phone:             phone,
	}

	account.AddDomainEvent(NewAccountCreatedEvent(account))

	return account, nil
}

// NewCustomerAccount creates a new customer account
func NewCustomerAccount(name, phone string) (*Account, error) {
	return NewAccount(AccountTypeCustomer, name, phone)
}

// NewStoreAccount creates a new store account
func NewStoreAccount(name, phone string) (*Account, error) {
	return NewAccount(AccountTypeStore, name, phone)
}

// Update updates the account's basic information
func (a *Account) Update(name, phone, notes string) error {
	if err := validateAccountName(name); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	a.Name = strings.TrimSpace(name)
	a.Phone = phone
	a.Notes = notes
	a.Touch()
	a.IncrementVersion()

	a.AddDomainEvent(NewAccountUpdatedEvent(a))

	return nil
}

// WithNotes sets the free-text notes
func (a *Account) WithNotes(notes string) *Account {
	a.Notes = notes
	return a
}

// IsCustomer returns true for customer accounts
func (a *Account) IsCustomer() bool {
	return a.Type == AccountTypeCustomer
}

// IsStore returns true for store accounts
func (a *Account) IsStore() bool {
	return a.Type == AccountTypeStore
}

func validateAccountName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
