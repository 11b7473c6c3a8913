package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopbooks/backend/internal/domain/ledger"
	"github.com/shopbooks/backend/internal/domain/shared"
	"github.com/shopbooks/backend/internal/infrastructure/persistence/models"
)

// GormLedgerEntryRepository implements EntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// Create persists a new entry. Seq is left to the database sequence so
// insertion order is the chain order; the assigned value is written back
// onto the domain entry.
func (r *GormLedgerEntryRepository) Create(ctx context.Context, entry *ledger.Entry) error {
	model := models.LedgerEntryModelFromDomain(entry)
	model.Seq = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	entry.Seq = model.Seq
	return nil
}

// FindByID finds an entry by its ID
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists the mutable fields and balance of an entry
func (r *GormLedgerEntryRepository) Update(ctx context.Context, entry *ledger.Entry) error {
	model := models.LedgerEntryModelFromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"type":          model.Type,
			"amount":        model.Amount,
			"total_balance": model.TotalBalance,
			"entry_date":    model.EntryDate,
			"details":       model.Details,
			"receipt_id":    model.ReceiptID,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an entry
func (r *GormLedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByAccountID removes all entries of an account
func (r *GormLedgerEntryRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.LedgerEntryModel{}, "account_id = ?", accountID).Error
}

// FindByAccountID returns all entries of an account ordered by seq
func (r *GormLedgerEntryRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*ledger.Entry, error) {
	var entryModels []models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("seq ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*ledger.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries, nil
}

// GetLatestByAccountID returns the entry with the highest seq for the
// account, or nil when the account has no entries
func (r *GormLedgerEntryRepository) GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*ledger.Entry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("seq DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// UpdateBalances persists recomputed running balances in bulk
func (r *GormLedgerEntryRepository) UpdateBalances(ctx context.Context, entries []*ledger.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, entry := range entries {
		if err := r.db.WithContext(ctx).
			Model(&models.LedgerEntryModel{}).
			Where("id = ?", entry.ID).
			Update("total_balance", entry.TotalBalance).Error; err != nil {
			return err
		}
	}
	return nil
}

// List returns a filtered page of entries ordered by seq
func (r *GormLedgerEntryRepository) List(ctx context.Context, filter ledger.EntryFilter) (shared.Paginated[*ledger.Entry], error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := r.applyEntryFilter(r.db.WithContext(ctx).Model(&models.LedgerEntryModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*ledger.Entry]{}, err
	}

	var entryModels []models.LedgerEntryModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("seq ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&entryModels).Error; err != nil {
		return shared.Paginated[*ledger.Entry]{}, err
	}

	entries := make([]*ledger.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return shared.NewPaginated(entries, total, page, pageSize), nil
}

// applyEntryFilter applies filter options to the query
func (r *GormLedgerEntryRepository) applyEntryFilter(query *gorm.DB, filter ledger.EntryFilter) *gorm.DB {
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.ReceiptID != nil {
		query = query.Where("receipt_id = ?", *filter.ReceiptID)
	}
	if filter.DateFrom != nil {
		query = query.Where("entry_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("entry_date < ?", *filter.DateTo)
	}
	return query
}

// Ensure GormLedgerEntryRepository implements EntryRepository
var _ ledger.EntryRepository = (*GormLedgerEntryRepository)(nil)
