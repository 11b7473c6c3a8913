package receipt

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopbooks/backend/internal/domain/receipt"
	"github.com/shopbooks/backend/internal/domain/shared"
)

// ReceiptService handles receipt operations
type ReceiptService struct {
	receiptRepo receipt.ReceiptRepository
	eventBus    shared.EventPublisher
}

// NewReceiptService creates a new ReceiptService. The event bus is optional.
func NewReceiptService(receiptRepo receipt.ReceiptRepository, eventBus shared.EventPublisher) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		eventBus:    eventBus,
	}
}

// Create creates a receipt with its items in one save
func (s *ReceiptService) Create(ctx context.Context, req CreateReceiptRequest) (*ReceiptResponse, error) {
	taken, err := s.receiptRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.ErrAlreadyExists
	}

	r, err := receipt.NewReceipt(req.Number, req.CustomerName, receipt.Kind(req.Kind), req.TotalPrice)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		r.WithPhone(req.Phone)
	}
	if req.Date != "" {
		date, err := parseReceiptDate(req.Date)
		if err != nil {
			return nil, err
		}
		r.WithDate(date)
	}
	for _, item := range req.Items {
		if err := r.AddItem(item.Description, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.receiptRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, r)

	response := ToReceiptResponse(r)
	return &response, nil
}

// Update updates the receipt header and upserts its items. Items named
// in RemoveItemIDs are dropped; items carrying an unknown or no ID are
// appended.
func (s *ReceiptService) Update(ctx context.Context, id uuid.UUID, req UpdateReceiptRequest) (*ReceiptResponse, error) {
	r, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != r.Number {
		taken, err := s.receiptRepo.ExistsByNumber(ctx, req.Number)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.ErrAlreadyExists
		}
	}

	date := r.Date
	if req.Date != "" {
		if date, err = parseReceiptDate(req.Date); err != nil {
			return nil, err
		}
	}
	if err := r.Update(req.Number, req.CustomerName, req.Phone, receipt.Kind(req.Kind), date, req.TotalPrice); err != nil {
		return nil, err
	}

	for _, removeID := range req.RemoveItemIDs {
		if err := r.RemoveItem(removeID); err != nil {
			return nil, err
		}
	}
	for _, item := range req.Items {
		itemID := uuid.Nil
		if item.ID != nil {
			itemID = *item.ID
		}
		if err := r.UpsertItem(itemID, item.Description, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.receiptRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, r)

	response := ToReceiptResponse(r)
	return &response, nil
}

// Delete deletes a receipt with its items
func (s *ReceiptService) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.receiptRepo.Delete(ctx, id); err != nil {
		return err
	}

	r.AddDomainEvent(receipt.NewReceiptDeletedEvent(r))
	s.publish(ctx, r)

	return nil
}

// GetByID retrieves a receipt with its items
func (s *ReceiptService) GetByID(ctx context.Context, id uuid.UUID) (*ReceiptResponse, error) {
	r, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToReceiptResponse(r)
	return &response, nil
}

// GetItems retrieves only the line items of a receipt
func (s *ReceiptService) GetItems(ctx context.Context, id uuid.UUID) ([]ReceiptItemResponse, error) {
	r, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]ReceiptItemResponse, len(r.Items))
	for i := range r.Items {
		items[i] = ToReceiptItemResponse(&r.Items[i])
	}
	return items, nil
}

// List retrieves a filtered page of receipts
func (s *ReceiptService) List(ctx context.Context, filter ReceiptListFilter) (shared.Paginated[ReceiptResponse], error) {
	var empty shared.Paginated[ReceiptResponse]

	domainFilter := receipt.ReceiptFilter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.CustomerName != "" {
		domainFilter.CustomerName = &filter.CustomerName
	}
	if filter.Phone != "" {
		domainFilter.Phone = &filter.Phone
	}
	if filter.Number != "" {
		domainFilter.Number = &filter.Number
	}
	if filter.Kind != "" {
		kind := receipt.Kind(filter.Kind)
		domainFilter.Kind = &kind
	}
	if filter.DateFrom != "" {
		if t, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			domainFilter.DateFrom = &t
		}
	}
	if filter.DateTo != "" {
		if t, err := time.Parse("2006-01-02", filter.DateTo); err == nil {
			// include the end date
			t = t.Add(24 * time.Hour)
			domainFilter.DateTo = &t
		}
	}
	if domainFilter.Page <= 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize <= 0 {
		domainFilter.PageSize = 20
	}

	page, err := s.receiptRepo.List(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	return shared.NewPaginated(ToReceiptResponses(page.Items), page.Total, page.Page, page.PageSize), nil
}

func (s *ReceiptService) publish(ctx context.Context, r *receipt.Receipt) {
	if s.eventBus == nil {
		return
	}
	events := r.GetDomainEvents()
	r.ClearDomainEvents()
	_ = s.eventBus.Publish(ctx, events...)
}

func parseReceiptDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_INPUT", "Date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}
