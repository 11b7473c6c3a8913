package models

import (
	"github.com/shopbooks/backend/internal/domain/partner"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// AccountModel is the persistence model for the Account domain entity.
type AccountModel struct {
	AggregateModel
	Type  partner.AccountType `gorm:"type:varchar(20);not null;index"`
	Name  string              `gorm:"type:varchar(200);not null;index"`
	Phone string              `gorm:"type:varchar(50);index"`
	Notes string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *partner.Account {
	return &partner.Account{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Type:  m.Type,
		Name:  m.Name,
		Phone: m.Phone,
		Notes: m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *partner.Account) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Type = a.Type
	m.Name = a.Name
	m.Phone = a.Phone
	m.Notes = a.Notes
}

// AccountModelFromDomain creates a new persistence model from a domain Account entity.
func AccountModelFromDomain(a *partner.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}
