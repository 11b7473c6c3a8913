package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/partner"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// EntryService handles ledger entry operations. Every mutation runs
// inside a TransactionScope holding the per-account lock, and either
// commits with consistent running balances or rolls back entirely.
type EntryService struct {
	scope       TransactionScope
	entryRepo   ledger.EntryRepository
	accountRepo partner.AccountRepository
	eventBus    shared.EventPublisher
}

// NewEntryService creates a new EntryService. The event bus is optional.
func NewEntryService(
	scope TransactionScope,
	entryRepo ledger.EntryRepository,
	accountRepo partner.AccountRepository,
	eventBus shared.EventPublisher,
) *EntryService {
	return &EntryService{
		scope:       scope,
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		eventBus:    eventBus,
	}
}

// Create records a new entry at the end of the account's chain. The
// balance snapshot is taken from the latest entry under the account
// lock, so concurrent creates cannot read the same prior balance.
func (s *EntryService) Create(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	entryType, amount, err := resolveAmount(req.Credit, req.Debit)
	if err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(req.AccountID, entryType, amount)
	if err != nil {
		return nil, err
	}
	if req.EntryDate != "" {
		date, err := parseEntryDate(req.EntryDate)
		if err != nil {
			return nil, err
		}
		entry.WithEntryDate(date)
	}
	if req.Details != "" {
		entry.WithDetails(req.Details)
	}
	if req.ReceiptID != nil {
		entry.WithReceiptID(*req.ReceiptID)
	}

	err = s.scope.Execute(ctx, req.AccountID, func(repos TransactionalRepositories) error {
		exists, err := repos.AccountRepo().Exists(ctx, req.AccountID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.ErrNotFound
		}

		prior := decimal.Zero
		latest, err := repos.EntryRepo().GetLatestByAccountID(ctx, req.AccountID)
		if err != nil {
			return err
		}
		if latest != nil {
			prior = latest.TotalBalance
		}

		next := prior.Add(entry.SignedAmount())
		if next.IsNegative() {
			return shared.ErrInsufficientBalance
		}
		entry.TotalBalance = next

		return repos.EntryRepo().Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ledger.NewEntryRecordedEvent(entry))

	response := ToEntryResponse(entry)
	return &response, nil
}

// Update revises an entry and rewrites the account's running balances
// from scratch in the same transaction. Any entry in the chain may be
// revised, not only the latest one.
func (s *EntryService) Update(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	// Resolve the account outside the transaction to know which lock to take.
	existing, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	accountID := existing.AccountID

	if req.Credit != nil && req.Debit != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "An entry cannot be both a credit and a debit")
	}

	var updated *ledger.Entry
	var chainLen int
	var balance decimal.Decimal

	err = s.scope.Execute(ctx, accountID, func(repos TransactionalRepositories) error {
		entry, err := repos.EntryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Credit != nil || req.Debit != nil {
			entryType, amount, err := resolveAmount(req.Credit, req.Debit)
			if err != nil {
				return err
			}
			if err := entry.Revise(entryType, amount); err != nil {
				return err
			}
		}
		if req.EntryDate != "" {
			date, err := parseEntryDate(req.EntryDate)
			if err != nil {
				return err
			}
			entry.WithEntryDate(date)
		}
		if req.Details != nil {
			entry.WithDetails(*req.Details)
		}
		if req.ReceiptID != nil {
			entry.WithReceiptID(*req.ReceiptID)
		}

		if err := repos.EntryRepo().Update(ctx, entry); err != nil {
			return err
		}

		chain, err := repos.EntryRepo().FindByAccountID(ctx, entry.AccountID)
		if err != nil {
			return err
		}
		if err := ledger.Recompute(chain); err != nil {
			return err
		}
		if err := repos.EntryRepo().UpdateBalances(ctx, chain); err != nil {
			return err
		}

		chainLen = len(chain)
		balance = ledger.ChainBalance(chain)
		for _, e := range chain {
			if e.ID == id {
				updated = e
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ledger.NewBalanceRecomputedEvent(accountID, chainLen, balance))

	response := ToEntryResponse(updated)
	return &response, nil
}

// Delete removes an entry and rewrites the remaining chain as if the
// entry had never been recorded.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	accountID := existing.AccountID

	var chainLen int
	var balance decimal.Decimal

	err = s.scope.Execute(ctx, accountID, func(repos TransactionalRepositories) error {
		if err := repos.EntryRepo().Delete(ctx, id); err != nil {
			return err
		}

		chain, err := repos.EntryRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			return err
		}
		if err := ledger.Recompute(chain); err != nil {
			return err
		}
		if err := repos.EntryRepo().UpdateBalances(ctx, chain); err != nil {
			return err
		}

		chainLen = len(chain)
		balance = ledger.ChainBalance(chain)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, ledger.NewBalanceRecomputedEvent(accountID, chainLen, balance))

	return nil
}

// GetByID retrieves a single entry
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// ListByAccount retrieves a filtered page of an account's entries in
// chain order
func (s *EntryService) ListByAccount(ctx context.Context, accountID uuid.UUID, filter EntryListFilter) (shared.Paginated[EntryResponse], error) {
	var empty shared.Paginated[EntryResponse]

	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return empty, err
	}
	if !exists {
		return empty, shared.ErrNotFound
	}

	domainFilter := ledger.EntryFilter{
		AccountID: &accountID,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}
	if filter.Type != "" {
		entryType := ledger.EntryType(filter.Type)
		domainFilter.Type = &entryType
	}
	if filter.ReceiptID != "" {
		if receiptID, err := uuid.Parse(filter.ReceiptID); err == nil {
			domainFilter.ReceiptID = &receiptID
		}
	}
	if filter.DateFrom != "" {
		if t, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			domainFilter.DateFrom = &t
		}
	}
	if filter.DateTo != "" {
		if t, err := time.Parse("2006-01-02", filter.DateTo); err == nil {
			// include the end date
			t = t.Add(24 * time.Hour)
			domainFilter.DateTo = &t
		}
	}
	if domainFilter.Page <= 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize <= 0 {
		domainFilter.PageSize = 20
	}

	page, err := s.entryRepo.List(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	return shared.NewPaginated(ToEntryResponses(page.Items), page.Total, page.Page, page.PageSize), nil
}

// CurrentBalance returns the account's balance as of its latest entry
func (s *EntryService) CurrentBalance(ctx context.Context, accountID uuid.UUID) (*BalanceResponse, error) {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.ErrNotFound
	}

	balance := decimal.Zero
	latest, err := s.entryRepo.GetLatestByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		balance = latest.TotalBalance
	}

	return &BalanceResponse{AccountID: accountID, Balance: balance}, nil
}

func (s *EntryService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventBus == nil {
		return
	}
	// Mutations are already committed; event delivery is best effort.
	_ = s.eventBus.Publish(ctx, events...)
}
