package receipt

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// Kind represents how a receipt was settled
type Kind string

const (
	// KindCash represents an immediately settled sale
	KindCash Kind = "CASH"
	// KindCredit represents a sale recorded against the customer's ledger
	KindCredit Kind = "CREDIT"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the receipt kind is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindCash, KindCredit:
		return true
	}
	return false
}

// Item represents one line of a receipt
type Item struct {
	shared.BaseEntity
	ReceiptID   uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// NewItem creates a new receipt line item
func NewItem(description string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item unit price cannot be negative")
	}

	return &Item{
		BaseEntity:  shared.NewBaseEntity(),
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// LineTotal returns quantity times unit price
func (i *Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Receipt represents a sales receipt with its line items.
// TotalPrice is taken from the caller as written on the paper receipt;
// it is intentionally not reconciled against the line items.
type Receipt struct {
	shared.BaseAggregateRoot
	Number       string
	CustomerName string
	Phone        string
	Kind         Kind
	Date         time.Time
	TotalPrice   decimal.Decimal
	Items        []Item
}

// NewReceipt creates a new receipt with required fields
func NewReceipt(number, customerName string, kind Kind, totalPrice decimal.Decimal) (*Receipt, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Receipt number cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Receipt kind must be CASH or CREDIT")
	}
	if totalPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Total price cannot be negative")
	}

	receipt := &Receipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            strings.TrimSpace(number),
		CustomerName:      strings.TrimSpace(customerName),
		Kind:              kind,
		Date:              time.Now(),
		TotalPrice:        totalPrice,
		Items:             make([]Item, 0),
	}

	receipt.AddDomainEvent(NewReceiptCreatedEvent(receipt))

	return receipt, nil
}

// WithPhone sets the customer phone
func (r *Receipt) WithPhone(phone string) *Receipt {
	r.Phone = phone
	return r
}

// WithDate sets the receipt date
func (r *Receipt) WithDate(date time.Time) *Receipt {
	r.Date = date
	return r
}

// AddItem appends a line item to the receipt
func (r *Receipt) AddItem(description string, quantity int, unitPrice decimal.Decimal) error {
	item, err := NewItem(description, quantity, unitPrice)
	if err != nil {
		return err
	}
	item.ReceiptID = r.ID
	r.Items = append(r.Items, *item)
	return nil
}

// UpsertItem updates an existing line item in place or appends a new
// one when no item with the given ID exists
func (r *Receipt) UpsertItem(id uuid.UUID, description string, quantity int, unitPrice decimal.Decimal) error {
	if id != uuid.Nil {
		for idx := range r.Items {
			if r.Items[idx].ID == id {
				if strings.TrimSpace(description) == "" {
					return shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
				}
				if quantity <= 0 {
					return shared.NewDomainError("INVALID_ITEM", "Item quantity must be positive")
				}
				if unitPrice.IsNegative() {
					return shared.NewDomainError("INVALID_ITEM", "Item unit price cannot be negative")
				}
				r.Items[idx].Description = strings.TrimSpace(description)
				r.Items[idx].Quantity = quantity
				r.Items[idx].UnitPrice = unitPrice
				r.Items[idx].Touch()
				return nil
			}
		}
	}
	return r.AddItem(description, quantity, unitPrice)
}

// RemoveItem deletes a line item by ID
func (r *Receipt) RemoveItem(id uuid.UUID) error {
	for idx := range r.Items {
		if r.Items[idx].ID == id {
			r.Items = append(r.Items[:idx], r.Items[idx+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Update updates the receipt header fields
func (r *Receipt) Update(number, customerName, phone string, kind Kind, date time.Time, totalPrice decimal.Decimal) error {
	if strings.TrimSpace(number) == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Receipt number cannot be empty")
	}
	if strings.TrimSpace(customerName) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_KIND", "Receipt kind must be CASH or CREDIT")
	}
	if totalPrice.IsNegative() {
		return shared.NewDomainError("INVALID_TOTAL", "Total price cannot be negative")
	}

	r.Number = strings.TrimSpace(number)
	r.CustomerName = strings.TrimSpace(customerName)
	r.Phone = phone
	r.Kind = kind
	r.Date = date
	r.TotalPrice = totalPrice
	r.Touch()
	r.IncrementVersion()

	r.AddDomainEvent(NewReceiptUpdatedEvent(r))

	return nil
}

// ItemsTotal returns the sum of line totals. Kept for display; it is
// allowed to differ from TotalPrice.
func (r *Receipt) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for idx := range r.Items {
		total = total.Add(r.Items[idx].LineTotal())
	}
	return total
}
