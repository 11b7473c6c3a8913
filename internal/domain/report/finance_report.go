package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FinanceReport is a read model summing ledger activity over a period,
// split by account type
type FinanceReport struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	CustomerCredit decimal.Decimal `json:"customer_credit"`
	CustomerDebit  decimal.Decimal `json:"customer_debit"`
	StoreCredit    decimal.Decimal `json:"store_credit"`
	StoreDebit     decimal.Decimal `json:"store_debit"`
}

// NetCustomer returns customer credit minus customer debit
func (r *FinanceReport) NetCustomer() decimal.Decimal {
	return r.CustomerCredit.Sub(r.CustomerDebit)
}

// NetStore returns store credit minus store debit
func (r *FinanceReport) NetStore() decimal.Decimal {
	return r.StoreCredit.Sub(r.StoreDebit)
}

// FinanceReportRepository defines the read-side query interface for
// finance reports
type FinanceReportRepository interface {
	// Summarize sums credits and debits per account type over the
	// inclusive [start, end] entry-date range
	Summarize(ctx context.Context, start, end time.Time) (*FinanceReport, error)
}
