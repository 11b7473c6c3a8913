package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopbooks/backend/internal/domain/shared"
)

// LoggingHandler writes every published domain event to the application
// log. Registered as a wildcard handler.
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a new logging event handler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

// Handle logs the event
func (h *LoggingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice so the handler receives all events
func (h *LoggingHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*LoggingHandler)(nil)
