package receipt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopbooks/backend/internal/domain/receipt"
)

// ReceiptItemRequest represents one line item in a create/update request.
// On update, an ID targets an existing item; without one a new item is
// appended.
type ReceiptItemRequest struct {
	ID          *uuid.UUID      `json:"id"`
	Description string          `json:"description" binding:"required,min=1,max=300"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateReceiptRequest represents a request to create a receipt with
// its items
type CreateReceiptRequest struct {
	Number       string               `json:"number" binding:"required,min=1,max=50"`
	CustomerName string               `json:"customer_name" binding:"required,min=1,max=200"`
	Phone        string               `json:"phone" binding:"max=30"`
	Kind         string               `json:"kind" binding:"required,oneof=CASH CREDIT"`
	Date         string               `json:"date"` // YYYY-MM-DD, defaults to today
	TotalPrice   decimal.Decimal      `json:"total_price"`
	Items        []ReceiptItemRequest `json:"items" binding:"dive"`
}

// UpdateReceiptRequest represents a request to update a receipt header
// and upsert its items
type UpdateReceiptRequest struct {
	Number        string               `json:"number" binding:"required,min=1,max=50"`
	CustomerName  string               `json:"customer_name" binding:"required,min=1,max=200"`
	Phone         string               `json:"phone" binding:"max=30"`
	Kind          string               `json:"kind" binding:"required,oneof=CASH CREDIT"`
	Date          string               `json:"date"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	Items         []ReceiptItemRequest `json:"items" binding:"dive"`
	RemoveItemIDs []uuid.UUID          `json:"remove_item_ids"`
}

// ReceiptListFilter represents filter options for receipt lists
type ReceiptListFilter struct {
	CustomerName string `form:"customer_name" binding:"max=200"`
	Phone        string `form:"phone" binding:"max=30"`
	Number       string `form:"number" binding:"max=50"`
	Kind         string `form:"kind" binding:"omitempty,oneof=CASH CREDIT"`
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ReceiptItemResponse represents a receipt line item in API responses
type ReceiptItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID           uuid.UUID             `json:"id"`
	Number       string                `json:"number"`
	CustomerName string                `json:"customer_name"`
	Phone        string                `json:"phone,omitempty"`
	Kind         string                `json:"kind"`
	Date         time.Time             `json:"date"`
	TotalPrice   decimal.Decimal       `json:"total_price"`
	ItemsTotal   decimal.Decimal       `json:"items_total"`
	Items        []ReceiptItemResponse `json:"items"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToReceiptItemResponse converts a domain Item to ReceiptItemResponse
func ToReceiptItemResponse(item *receipt.Item) ReceiptItemResponse {
	return ReceiptItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		LineTotal:   item.LineTotal(),
	}
}

// ToReceiptResponse converts a domain Receipt to ReceiptResponse
func ToReceiptResponse(r *receipt.Receipt) ReceiptResponse {
	items := make([]ReceiptItemResponse, len(r.Items))
	for i := range r.Items {
		items[i] = ToReceiptItemResponse(&r.Items[i])
	}
	return ReceiptResponse{
		ID:           r.ID,
		Number:       r.Number,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Kind:         r.Kind.String(),
		Date:         r.Date,
		TotalPrice:   r.TotalPrice,
		ItemsTotal:   r.ItemsTotal(),
		Items:        items,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToReceiptResponses converts a slice of domain Receipts to ReceiptResponses
func ToReceiptResponses(receipts []*receipt.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = ToReceiptResponse(r)
	}
	return responses
}
