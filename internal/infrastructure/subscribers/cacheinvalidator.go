package subscribers

import (
	"context"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/logger"
)

// TicketCacheInvalidator is the slice of the cache the invalidator needs.
type TicketCacheInvalidator interface {
	InvalidateDetail(ctx context.Context, ticketID uint) error
	InvalidateLists(ctx context.Context) error
	InvalidateStats(ctx context.Context) error
}

// CacheInvalidator drops stale read-through cache entries after ticket
// writes. Invalidation failures are logged only; stale entries age out
// through their TTLs.
type CacheInvalidator struct {
	cache  TicketCacheInvalidator
	logger logger.Interface
}

func NewCacheInvalidator(cache TicketCacheInvalidator, logger logger.Interface) *CacheInvalidator {
	return &CacheInvalidator{
		cache:  cache,
		logger: logger,
	}
}

// EventTypes lists every event the invalidator subscribes to.
func (s *CacheInvalidator) EventTypes() []string {
	return []string{
		ticket.EventTicketCreated,
		ticket.EventTicketUpdated,
		ticket.EventTicketAssigned,
		ticket.EventTicketStatusChanged,
		ticket.EventTicketClosed,
		ticket.EventTicketReopened,
		ticket.EventTicketRated,
		ticket.EventMessageAdded,
		ticket.EventMessageEdited,
		ticket.EventReactionAdded,
		ticket.EventAttachmentAdded,
		ticket.EventBulkOperationCompleted,
	}
}

func (s *CacheInvalidator) CanHandle(eventType string) bool {
	for _, t := range s.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (s *CacheInvalidator) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	for _, ticketID := range s.affectedTickets(event) {
		if err := s.cache.InvalidateDetail(ctx, ticketID); err != nil {
			s.logger.Warnw("failed to invalidate ticket detail cache",
				"ticket_id", ticketID,
				"event_type", event.GetEventType(),
				"error", err,
			)
		}
	}

	if err := s.cache.InvalidateLists(ctx); err != nil {
		s.logger.Warnw("failed to invalidate ticket list caches",
			"event_type", event.GetEventType(),
			"error", err,
		)
	}

	if err := s.cache.InvalidateStats(ctx); err != nil {
		s.logger.Warnw("failed to invalidate ticket stats caches",
			"event_type", event.GetEventType(),
			"error", err,
		)
	}

	return nil
}

func (s *CacheInvalidator) affectedTickets(event events.DomainEvent) []uint {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return []uint{e.TicketID}
	case ticket.TicketUpdatedEvent:
		return []uint{e.TicketID}
	case ticket.TicketAssignedEvent:
		return []uint{e.TicketID}
	case ticket.TicketStatusChangedEvent:
		return []uint{e.TicketID}
	case ticket.TicketClosedEvent:
		return []uint{e.TicketID}
	case ticket.TicketReopenedEvent:
		return []uint{e.TicketID}
	case ticket.TicketRatedEvent:
		return []uint{e.TicketID}
	case ticket.MessageAddedEvent:
		return []uint{e.TicketID}
	case ticket.MessageEditedEvent:
		return []uint{e.TicketID}
	case ticket.ReactionAddedEvent:
		return []uint{e.TicketID}
	case ticket.AttachmentAddedEvent:
		return []uint{e.TicketID}
	case ticket.BulkOperationCompletedEvent:
		return e.TicketIDs
	default:
		return nil
	}
}
