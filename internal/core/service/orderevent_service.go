package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/api/metrics"
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderID, status string, ts time.Time) error
}

type orderEventService struct {
	orders    ports.OrderRepository
	eventRepo ports.OrderEventRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewOrderEventService returns an OrderEventService implementation.
func NewOrderEventService(
	orders ports.OrderRepository,
	eventRepo ports.OrderEventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.OrderEventService {
	return &orderEventService{
		orders:    orders,
		eventRepo: eventRepo,
		dedup:     dedup,
		log:       log,
	}
}

// Process validates, deduplicates, and persists a single order status event.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderEventInput) error {
	start := time.Now()
	newStatus := domain.OrderStatus(in.Status)

	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", in.OrderID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("order_id", in.OrderID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Find the order.
	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("order_not_found").Inc()
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Validate state machine transition.
	if !order.Status.CanTransitionTo(newStatus) {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.OrderID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("order_id", in.OrderID).Msg("failed to set dedup key")
	}

	// 5. Atomically update order status + history.
	if err := s.eventRepo.UpdateOrderStatus(ctx, in.OrderID, newStatus, in.Timestamp, in.Source, in.Notes); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("process event: update status: %w", err)
	}

	// 6. Insert into audit trail (non-fatal on failure).
	auditEvent := &domain.OrderEvent{
		OrderID:   in.OrderID,
		Status:    newStatus,
		Timestamp: in.Timestamp,
		Source:    in.Source,
		Notes:     in.Notes,
	}
	if err := s.eventRepo.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Str("order_id", in.OrderID).Msg("failed to insert audit event")
	}

	metrics.EventsProcessedTotal.WithLabelValues(in.Status, in.Source).Inc()
	metrics.EventProcessingDuration.WithLabelValues(in.Status).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("order_id", in.OrderID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("order event processed")

	return nil
}
