package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/receipt"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// ReceiptModel is the persistence model for the Receipt aggregate.
type ReceiptModel struct {
	AggregateModel
	Number       string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName string             `gorm:"type:varchar(200);not null;index"`
	Phone        string             `gorm:"type:varchar(50);index"`
	Kind         receipt.Kind       `gorm:"type:varchar(10);not null"`
	Date         time.Time          `gorm:"not null;index"`
	TotalPrice   decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Items        []ReceiptItemModel `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ReceiptItemModel is the persistence model for a receipt line item.
type ReceiptItemModel struct {
	BaseModel
	ReceiptID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ReceiptItemModel) TableName() string {
	return "receipt_items"
}

// ToDomain converts the persistence model to a domain Receipt aggregate.
func (m *ReceiptModel) ToDomain() *receipt.Receipt {
	items := make([]receipt.Item, len(m.Items))
	for i := range m.Items {
		items[i] = *m.Items[i].ToDomainItem()
	}

	return &receipt.Receipt{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Number:       m.Number,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Kind:         m.Kind,
		Date:         m.Date,
		TotalPrice:   m.TotalPrice,
		Items:        items,
	}
}

// FromDomain populates the persistence model from a domain Receipt aggregate.
func (m *ReceiptModel) FromDomain(r *receipt.Receipt) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.Number = r.Number
	m.CustomerName = r.CustomerName
	m.Phone = r.Phone
	m.Kind = r.Kind
	m.Date = r.Date
	m.TotalPrice = r.TotalPrice

	m.Items = make([]ReceiptItemModel, len(r.Items))
	for i := range r.Items {
		m.Items[i].FromDomainItem(&r.Items[i])
	}
}

// ReceiptModelFromDomain creates a new persistence model from a domain Receipt aggregate.
func ReceiptModelFromDomain(r *receipt.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomain(r)
	return m
}

// ToDomainItem converts the persistence model to a domain Item entity.
func (m *ReceiptItemModel) ToDomainItem() *receipt.Item {
	return &receipt.Item{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ReceiptID:   m.ReceiptID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}

// FromDomainItem populates the persistence model from a domain Item entity.
func (m *ReceiptItemModel) FromDomainItem(i *receipt.Item) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.ReceiptID = i.ReceiptID
	m.Description = i.Description
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
}
