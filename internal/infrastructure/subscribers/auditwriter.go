package subscribers

import (
	"context"
	"fmt"
	"strconv"

	"alumnet/internal/domain/shared/events"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/shared/logger"
)

// AuditWriter turns ticket domain events into append-only audit trail
// rows. It runs on the dispatcher goroutine, so a failed write is logged
// and dropped rather than failing the originating operation.
type AuditWriter struct {
	auditRepo ticket.AuditLogRepository
	logger    logger.Interface
}

func NewAuditWriter(auditRepo ticket.AuditLogRepository, logger logger.Interface) *AuditWriter {
	return &AuditWriter{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// EventTypes lists every event the writer subscribes to.
func (w *AuditWriter) EventTypes() []string {
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

func (w *AuditWriter) CanHandle(eventType string) bool {
	for _, t := range w.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (w *AuditWriter) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	entries, err := w.entriesFor(event)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := w.auditRepo.Save(ctx, entry); err != nil {
			w.logger.Errorw("failed to write audit entry",
				"event_type", event.GetEventType(),
				"ticket_id", entry.TicketID(),
				"error", err,
			)
			return err
		}
	}

	return nil
}

func (w *AuditWriter) entriesFor(event events.DomainEvent) ([]*ticket.AuditEntry, error) {
	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.CreatorID, vo.AuditTicketCreated,
			fmt.Sprintf("ticket %s created", e.Number))
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{
			"number":      e.Number,
			"priority":    e.Priority,
			"category_id": e.CategoryID,
		})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketUpdatedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.OwnerID, vo.AuditTicketUpdated,
			"ticket details updated")
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{"changed_fields": e.ChangedFields})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketAssignedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.AssignedBy, vo.AuditTicketAssigned,
			"ticket assigned")
		if err != nil {
			return nil, err
		}
		oldValue := ""
		if e.PreviousAssigneeID != nil {
			oldValue = strconv.FormatUint(uint64(*e.PreviousAssigneeID), 10)
		}
		entry.WithFieldChange("assignee_id", oldValue, strconv.FormatUint(uint64(e.AssigneeID), 10))
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketStatusChangedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.ChangedBy, vo.AuditStatusChanged,
			fmt.Sprintf("status changed from %s to %s", e.OldStatus, e.NewStatus))
		if err != nil {
			return nil, err
		}
		entry.WithFieldChange("status", e.OldStatus, e.NewStatus)
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketClosedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.ClosedBy, vo.AuditTicketClosed,
			"ticket closed")
		if err != nil {
			return nil, err
		}
		if e.ResolutionNote != "" {
			entry.WithMetadata(map[string]interface{}{"resolution_note": e.ResolutionNote})
		}
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketReopenedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.OwnerID, vo.AuditTicketReopened,
			"ticket reopened")
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{
			"reason":       e.Reason,
			"reopen_count": e.ReopenCount,
		})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.TicketRatedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.OwnerID, vo.AuditTicketRated,
			fmt.Sprintf("satisfaction rated %d/5", e.Rating))
		if err != nil {
			return nil, err
		}
		return []*ticket.AuditEntry{entry}, nil

	case ticket.MessageAddedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.SenderID, vo.AuditMessageAdded,
			"message added")
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{
			"message_id":       e.MessageID,
			"is_from_admin":    e.IsFromAdmin,
			"is_internal_note": e.IsInternalNote,
		})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.MessageEditedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.EditorID, vo.AuditMessageEdited,
			"message edited")
		if err != nil {
			return nil, err
		}
		metadata := map[string]interface{}{"message_id": e.MessageID}
		if e.Reason != "" {
			metadata["reason"] = e.Reason
		}
		entry.WithMetadata(metadata)
		return []*ticket.AuditEntry{entry}, nil

	case ticket.ReactionAddedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.UserID, vo.AuditReactionAdded,
			fmt.Sprintf("reaction %s added", e.ReactionType))
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{"message_id": e.MessageID})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.AttachmentAddedEvent:
		entry, err := ticket.NewAuditEntry(e.TicketID, &e.UploaderID, vo.AuditAttachmentAdded,
			fmt.Sprintf("attachment %s uploaded", e.FileName))
		if err != nil {
			return nil, err
		}
		entry.WithMetadata(map[string]interface{}{
			"attachment_id": e.AttachmentID,
			"file_size":     e.FileSize,
		})
		return []*ticket.AuditEntry{entry}, nil

	case ticket.BulkOperationCompletedEvent:
		// One trail row per affected ticket so each ticket's history
		// shows the bulk change that touched it.
		entries := make([]*ticket.AuditEntry, 0, len(e.TicketIDs))
		for _, ticketID := range e.TicketIDs {
			entry, err := ticket.NewAuditEntry(ticketID, &e.InitiatorID, vo.AuditBulkOperation,
				fmt.Sprintf("bulk %s operation applied", e.OperationType))
			if err != nil {
				return nil, err
			}
			entry.WithMetadata(map[string]interface{}{
				"operation_id":   e.OperationID,
				"operation_type": e.OperationType,
			})
			entries = append(entries, entry)
		}
		return entries, nil

	default:
		w.logger.Warnw("audit writer received unexpected event", "event_type", event.GetEventType())
		return nil, nil
	}
}
