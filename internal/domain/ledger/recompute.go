package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// Recompute rewrites the running balances of a single account's chain
// in place. Entries must be given in Seq order; the first balance is
// computed from zero. The result depends only on the ordered entries,
// never on the balances previously stored on them.
//
// A debit that would drive the running balance negative fails the whole
// recompute with shared.ErrInsufficientBalance, so callers can apply it
// atomically or not at all.
func Recompute(entries []*Entry) error {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.SignedAmount())
		if balance.IsNegative() {
			return shared.ErrInsufficientBalance
		}
	}

	balance = decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.SignedAmount())
		e.TotalBalance = balance
	}
	return nil
}

// ChainBalance returns the final balance of a Seq-ordered chain without
// mutating it. An empty chain has a zero balance.
func ChainBalance(entries []*Entry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.SignedAmount())
	}
	return balance
}
