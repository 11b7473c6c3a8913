package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/partner"
	"github.com/shopbooks/backend/internal/domain/report"
)

// GormFinanceReportRepository implements FinanceReportRepository using GORM
type GormFinanceReportRepository struct {
	db *gorm.DB
}

// NewGormFinanceReportRepository creates a new GormFinanceReportRepository
func NewGormFinanceReportRepository(db *gorm.DB) *GormFinanceReportRepository {
	return &GormFinanceReportRepository{db: db}
}

// Summarize sums ledger credits and debits per account type over the
// inclusive [start, end] entry-date range
func (r *GormFinanceReportRepository) Summarize(ctx context.Context, start, end time.Time) (*report.FinanceReport, error) {
	result := &report.FinanceReport{
		PeriodStart:    start,
		PeriodEnd:      end,
		CustomerCredit: decimal.Zero,
		CustomerDebit:  decimal.Zero,
		StoreCredit:    decimal.Zero,
		StoreDebit:     decimal.Zero,
	}

	var rows []struct {
		AccountType string
		EntryType   string
		Total       decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Table("ledger_entries le").
		Select("a.type AS account_type, le.type AS entry_type, COALESCE(SUM(le.amount), 0) AS total").
		Joins("JOIN accounts a ON a.id = le.account_id").
		Where("le.entry_date BETWEEN ? AND ?", start, end).
		Group("a.type, le.type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		switch {
		case row.AccountType == string(partner.AccountTypeCustomer) && row.EntryType == string(ledger.EntryTypeCredit):
			result.CustomerCredit = row.Total
		case row.AccountType == string(partner.AccountTypeCustomer) && row.EntryType == string(ledger.EntryTypeDebit):
			result.CustomerDebit = row.Total
		case row.AccountType == string(partner.AccountTypeStore) && row.EntryType == string(ledger.EntryTypeCredit):
			result.StoreCredit = row.Total
		case row.AccountType == string(partner.AccountTypeStore) && row.EntryType == string(ledger.EntryTypeDebit):
			result.StoreDebit = row.Total
		}
	}

	return result, nil
}

// Ensure GormFinanceReportRepository implements FinanceReportRepository
var _ report.FinanceReportRepository = (*GormFinanceReportRepository)(nil)
