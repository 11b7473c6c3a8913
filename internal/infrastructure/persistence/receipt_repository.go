package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopbooks/backend/internal/domain/receipt"
	"github.com/shopbooks/backend/internal/domain/shared"
	"github.com/shopbooks/backend/internal/infrastructure/persistence/models"
)

// GormReceiptRepository implements ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// FindByID finds a receipt with its items
func (r *GormReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a receipt by its unique number
func (r *GormReceiptRepository) FindByNumber(ctx context.Context, number string) (*receipt.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a filtered page of receipts with their items
func (r *GormReceiptRepository) List(ctx context.Context, filter receipt.ReceiptFilter) (shared.Paginated[*receipt.Receipt], error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := r.applyReceiptFilter(r.db.WithContext(ctx).Model(&models.ReceiptModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*receipt.Receipt]{}, err
	}

	var receiptModels []models.ReceiptModel
	offset := (page - 1) * pageSize
	if err := query.
		Preload("Items").
		Order("date DESC, number DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&receiptModels).Error; err != nil {
		return shared.Paginated[*receipt.Receipt]{}, err
	}

	receipts := make([]*receipt.Receipt, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToDomain()
	}
	return shared.NewPaginated(receipts, total, page, pageSize), nil
}

// Save creates or updates a receipt and its items atomically. Items no
// longer present on the aggregate are removed.
func (r *GormReceiptRepository) Save(ctx context.Context, rcpt *receipt.Receipt) error {
	model := models.ReceiptModelFromDomain(rcpt)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		keptIDs := make([]uuid.UUID, len(model.Items))
		for i := range model.Items {
			keptIDs[i] = model.Items[i].ID
		}

		del := tx.Where("receipt_id = ?", model.ID)
		if len(keptIDs) > 0 {
			del = del.Where("id NOT IN ?", keptIDs)
		}
		if err := del.Delete(&models.ReceiptItemModel{}).Error; err != nil {
			return err
		}

		for i := range model.Items {
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a receipt and its items
func (r *GormReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receipt_id = ?", id).
			Delete(&models.ReceiptItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ReceiptModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ExistsByNumber checks whether a receipt number is taken
func (r *GormReceiptRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReceiptModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyReceiptFilter applies filter options to the query
func (r *GormReceiptRepository) applyReceiptFilter(query *gorm.DB, filter receipt.ReceiptFilter) *gorm.DB {
	if filter.CustomerName != nil {
		query = query.Where("customer_name LIKE ?", "%"+*filter.CustomerName+"%")
	}
	if filter.Phone != nil {
		query = query.Where("phone = ?", *filter.Phone)
	}
	if filter.Number != nil {
		query = query.Where("number = ?", *filter.Number)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", *filter.DateTo)
	}
	return query
}

// Ensure GormReceiptRepository implements ReceiptRepository
var _ receipt.ReceiptRepository = (*GormReceiptRepository)(nil)
