package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// LedgerEntryModel is the persistence model for the ledger Entry entity.
// Seq is a database-assigned sequence that orders the account's chain;
// it must never be set by application code on insert.
type LedgerEntryModel struct {
	BaseModel
	Seq          int64            `gorm:"autoIncrement;uniqueIndex"`
	AccountID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_ledger_entries_account_seq,priority:1"`
	Type         ledger.EntryType `gorm:"type:varchar(10);not null"`
	Amount       decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalBalance decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	EntryDate    time.Time        `gorm:"not null;index"`
	Details      string           `gorm:"type:text"`
	ReceiptID    *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the persistence model to a domain Entry entity.
func (m *LedgerEntryModel) ToDomain() *ledger.Entry {
	return &ledger.Entry{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Seq:          m.Seq,
		AccountID:    m.AccountID,
		Type:         m.Type,
		Amount:       m.Amount,
		TotalBalance: m.TotalBalance,
		EntryDate:    m.EntryDate,
		Details:      m.Details,
		ReceiptID:    m.ReceiptID,
	}
}

// FromDomain populates the persistence model from a domain Entry entity.
func (m *LedgerEntryModel) FromDomain(e *ledger.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Seq = e.Seq
	m.AccountID = e.AccountID
	m.Type = e.Type
	m.Amount = e.Amount
	m.TotalBalance = e.TotalBalance
	m.EntryDate = e.EntryDate
	m.Details = e.Details
	m.ReceiptID = e.ReceiptID
}

// LedgerEntryModelFromDomain creates a new persistence model from a domain Entry entity.
func LedgerEntryModelFromDomain(e *ledger.Entry) *LedgerEntryModel {
	m := &LedgerEntryModel{}
	m.FromDomain(e)
	return m
}
