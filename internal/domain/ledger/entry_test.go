package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbooks/backend/internal/domain/shared"
)

func TestNewEntry(t *testing.T) {
	accountID := uuid.New()

	t.Run("creates credit entry", func(t *testing.T) {
		entry, err := NewEntry(accountID, EntryTypeCredit, decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, accountID, entry.AccountID)
		assert.Equal(t, EntryTypeCredit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(100)))
		assert.True(t, entry.TotalBalance.IsZero())
		assert.True(t, entry.IsCredit())
		assert.False(t, entry.IsDebit())
	})

	t.Run("creates debit entry", func(t *testing.T) {
		entry, err := NewEntry(accountID, EntryTypeDebit, decimal.NewFromInt(30))
		require.NoError(t, err)

		assert.True(t, entry.IsDebit())
		assert.True(t, entry.SignedAmount().Equal(decimal.NewFromInt(-30)))
	})

	t.Run("rejects nil account", func(t *testing.T) {
		_, err := NewEntry(uuid.Nil, EntryTypeCredit, decimal.NewFromInt(100))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ACCOUNT", domainErr.Code)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		_, err := NewEntry(accountID, EntryType("TRANSFER"), decimal.NewFromInt(100))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ENTRY_TYPE", domainErr.Code)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewEntry(accountID, EntryTypeCredit, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewEntry(accountID, EntryTypeDebit, decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestEntryType(t *testing.T) {
	t.Run("valid types", func(t *testing.T) {
		assert.True(t, EntryTypeCredit.IsValid())
		assert.True(t, EntryTypeDebit.IsValid())
	})

	t.Run("invalid type", func(t *testing.T) {
		assert.False(t, EntryType("").IsValid())
		assert.False(t, EntryType("credit").IsValid())
	})
}

func TestEntryBuilders(t *testing.T) {
	entry, err := NewEntry(uuid.New(), EntryTypeCredit, decimal.NewFromInt(50))
	require.NoError(t, err)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	receiptID := uuid.New()
	entry.WithEntryDate(date).WithDetails("opening balance").WithReceiptID(receiptID)

	assert.Equal(t, date, entry.EntryDate)
	assert.Equal(t, "opening balance", entry.Details)
	require.NotNil(t, entry.ReceiptID)
	assert.Equal(t, receiptID, *entry.ReceiptID)
}

func TestEntryRevise(t *testing.T) {
	t.Run("replaces type and amount", func(t *testing.T) {
		entry, err := NewEntry(uuid.New(), EntryTypeCredit, decimal.NewFromInt(100))
		require.NoError(t, err)

		err = entry.Revise(EntryTypeDebit, decimal.NewFromInt(40))
		require.NoError(t, err)

		assert.Equal(t, EntryTypeDebit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects invalid revision", func(t *testing.T) {
		entry, err := NewEntry(uuid.New(), EntryTypeCredit, decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.Error(t, entry.Revise(EntryTypeCredit, decimal.Zero))
		assert.Error(t, entry.Revise(EntryType("bad"), decimal.NewFromInt(10)))

		// failed revision leaves the entry untouched
		assert.Equal(t, EntryTypeCredit, entry.Type)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(100)))
	})
}
