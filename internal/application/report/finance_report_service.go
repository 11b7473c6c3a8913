package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/report"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// FinanceReportRequest represents the query for a finance report
type FinanceReportRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date"` // defaults to today
}

// FinanceReportResponse represents a finance report in API responses
type FinanceReportResponse struct {
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	CustomerCredit decimal.Decimal `json:"customer_credit"`
	CustomerDebit  decimal.Decimal `json:"customer_debit"`
	CustomerNet    decimal.Decimal `json:"customer_net"`
	StoreCredit    decimal.Decimal `json:"store_credit"`
	StoreDebit     decimal.Decimal `json:"store_debit"`
	StoreNet       decimal.Decimal `json:"store_net"`
}

// FinanceReportService produces period summaries of ledger activity
type FinanceReportService struct {
	reportRepo report.FinanceReportRepository
}

// NewFinanceReportService creates a new FinanceReportService
func NewFinanceReportService(reportRepo report.FinanceReportRepository) *FinanceReportService {
	return &FinanceReportService{reportRepo: reportRepo}
}

// Summarize sums credits and debits per account type over a date range
func (s *FinanceReportService) Summarize(ctx context.Context, req FinanceReportRequest) (*FinanceReportResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Start date must be formatted as YYYY-MM-DD")
	}

	end := time.Now()
	if req.EndDate != "" {
		if end, err = time.Parse("2006-01-02", req.EndDate); err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "End date must be formatted as YYYY-MM-DD")
		}
	}
	// include the whole end day
	end = end.Truncate(24 * time.Hour).Add(24*time.Hour - time.Nanosecond)

	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "End date must not be before start date")
	}

	summary, err := s.reportRepo.Summarize(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &FinanceReportResponse{
		PeriodStart:    summary.PeriodStart,
		PeriodEnd:      summary.PeriodEnd,
		CustomerCredit: summary.CustomerCredit,
		CustomerDebit:  summary.CustomerDebit,
		CustomerNet:    summary.NetCustomer(),
		StoreCredit:    summary.StoreCredit,
		StoreDebit:     summary.StoreDebit,
		StoreNet:       summary.NetStore(),
	}, nil
}
