package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/partner"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// AccountService handles account CRUD operations
type AccountService struct {
	accountRepo partner.AccountRepository
	entryRepo   ledger.EntryRepository
	eventBus    shared.EventPublisher
}

// NewAccountService creates a new AccountService. The event bus is optional.
func NewAccountService(
	accountRepo partner.AccountRepository,
	entryRepo ledger.EntryRepository,
	eventBus shared.EventPublisher,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		eventBus:    eventBus,
	}
}

// Create creates a new account
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	account, err := partner.NewAccount(partner.AccountType(req.Type), req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		account.WithNotes(req.Notes)
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, account)

	response := ToAccountResponse(account)
	return &response, nil
}

// Update updates an account's basic information
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, req UpdateAccountRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := account.Update(req.Name, req.Phone, req.Notes); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, account)

	response := ToAccountResponse(account)
	return &response, nil
}

// Delete deletes an account together with its ledger entries. The
// entries are removed first so the account delete cannot trip over the
// foreign key; the schema also cascades as a backstop.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.entryRepo.DeleteByAccountID(ctx, id); err != nil {
		return err
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	account.AddDomainEvent(partner.NewAccountDeletedEvent(account))
	s.publish(ctx, account)

	return nil
}

// GetByID retrieves an account, optionally with its ledger chain
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID, withEntries bool) (*AccountDetailResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &AccountDetailResponse{AccountResponse: ToAccountResponse(account)}

	if withEntries {
		chain, err := s.entryRepo.FindByAccountID(ctx, id)
		if err != nil {
			return nil, err
		}
		detail.Entries = make([]AccountEntry, len(chain))
		for i, e := range chain {
			detail.Entries[i] = ToAccountEntry(e)
		}
	}

	return detail, nil
}

// List retrieves accounts, optionally filtered by type
func (s *AccountService) List(ctx context.Context, req ListAccountsRequest) ([]AccountResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Search != "" {
		filter.Search = req.Search
	}

	var accounts []partner.Account
	var err error
	if req.Type != "" {
		filter.Filters["type"] = req.Type
		accounts, err = s.accountRepo.FindByType(ctx, partner.AccountType(req.Type), filter)
	} else {
		accounts, err = s.accountRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.accountRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToAccountResponses(accounts), total, nil
}

func (s *AccountService) publish(ctx context.Context, account *partner.Account) {
	if s.eventBus == nil {
		return
	}
	events := account.GetDomainEvents()
	account.ClearDomainEvents()
	_ = s.eventBus.Publish(ctx, events...)
}
