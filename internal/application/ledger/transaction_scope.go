package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories a
// ledger mutation touches. Execute serializes writers per account: the
// implementation takes an account-scoped lock before running fn, so two
// mutations of the same account never interleave, while different
// accounts proceed in parallel.
type TransactionScope interface {
	// Execute runs fn within a database transaction holding the lock
	// for accountID. If fn returns an error the transaction is rolled
	// back, otherwise it is committed.
	Execute(ctx context.Context, accountID uuid.UUID, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped
// to the current transaction.
type TransactionalRepositories interface {
	// EntryRepo returns the ledger entry repository scoped to the current transaction
	EntryRepo() ledger.EntryRepository
	// AccountRepo returns the account repository scoped to the current transaction
	AccountRepo() partner.AccountRepository
}

// NoOpTransactionScope runs mutations without a real transaction or
// lock. Useful for tests and single-writer setups.
type NoOpTransactionScope struct {
	entryRepo   ledger.EntryRepository
	accountRepo partner.AccountRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(entryRepo ledger.EntryRepository, accountRepo partner.AccountRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, _ uuid.UUID, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// EntryRepo returns the ledger entry repository.
func (s *NoOpTransactionScope) EntryRepo() ledger.EntryRepository {
	return s.entryRepo
}

// AccountRepo returns the account repository.
func (s *NoOpTransactionScope) AccountRepo() partner.AccountRepository {
	return s.accountRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
