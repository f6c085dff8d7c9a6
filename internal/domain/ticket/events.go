package ticket

import (
	"strconv"
	"time"

	"alumnet/internal/domain/shared/events"
)

// Event type names consumed by subscribers (audit writer, cache
// invalidator).
const (
	EventTicketCreated          = "ticket.created"
	EventTicketUpdated          = "ticket.updated"
	EventTicketAssigned         = "ticket.assigned"
	EventTicketStatusChanged    = "ticket.status_changed"
	EventTicketClosed           = "ticket.closed"
	EventTicketReopened         = "ticket.reopened"
	EventTicketRated            = "ticket.rated"
	EventMessageAdded           = "ticket.message_added"
	EventMessageEdited          = "ticket.message_edited"
	EventReactionAdded          = "ticket.reaction_added"
	EventAttachmentAdded        = "ticket.attachment_added"
	EventBulkOperationCompleted = "ticket.bulk_completed"
)

func newBaseEvent(eventType string, ticketID uint) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(ticketID), 10),
		EventType:   eventType,
		OccurredAt:  time.Now(),
	}
}

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID   uint
	Number     string
	Subject    string
	CreatorID  uint
	AssigneeID *uint
	Priority   string
	CategoryID uint
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:  newBaseEvent(EventTicketCreated, t.ID()),
		TicketID:   t.ID(),
		Number:     t.Number(),
		Subject:    t.Subject(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		Priority:   t.Priority().String(),
		CategoryID: t.CategoryID(),
	}
}

type TicketUpdatedEvent struct {
	events.BaseEvent
	TicketID      uint
	OwnerID       uint
	ChangedFields []string
}

func NewTicketUpdatedEvent(t *Ticket, changedFields []string) TicketUpdatedEvent {
	return TicketUpdatedEvent{
		BaseEvent:     newBaseEvent(EventTicketUpdated, t.ID()),
		TicketID:      t.ID(),
		OwnerID:       t.CreatorID(),
		ChangedFields: changedFields,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID           uint
	OwnerID            uint
	PreviousAssigneeID *uint
	AssigneeID         uint
	AssignedBy         uint
}

func NewTicketAssignedEvent(t *Ticket, previousAssigneeID *uint, assigneeID, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:          newBaseEvent(EventTicketAssigned, t.ID()),
		TicketID:           t.ID(),
		OwnerID:            t.CreatorID(),
		PreviousAssigneeID: previousAssigneeID,
		AssigneeID:         assigneeID,
		AssignedBy:         assignedBy,
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID   uint
	OwnerID    uint
	AssigneeID *uint
	OldStatus  string
	NewStatus  string
	ChangedBy  uint
}

func NewTicketStatusChangedEvent(t *Ticket, oldStatus string, changedBy uint) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent:  newBaseEvent(EventTicketStatusChanged, t.ID()),
		TicketID:   t.ID(),
		OwnerID:    t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		OldStatus:  oldStatus,
		NewStatus:  t.Status().String(),
		ChangedBy:  changedBy,
	}
}

type TicketClosedEvent struct {
	events.BaseEvent
	TicketID       uint
	OwnerID        uint
	AssigneeID     *uint
	ClosedBy       uint
	ResolutionNote string
}

func NewTicketClosedEvent(t *Ticket, closedBy uint) TicketClosedEvent {
	return TicketClosedEvent{
		BaseEvent:      newBaseEvent(EventTicketClosed, t.ID()),
		TicketID:       t.ID(),
		OwnerID:        t.CreatorID(),
		AssigneeID:     t.AssigneeID(),
		ClosedBy:       closedBy,
		ResolutionNote: t.ResolutionNote(),
	}
}

type TicketReopenedEvent struct {
	events.BaseEvent
	TicketID    uint
	OwnerID     uint
	AssigneeID  *uint
	Reason      string
	ReopenCount int
}

func NewTicketReopenedEvent(t *Ticket, reason string) TicketReopenedEvent {
	return TicketReopenedEvent{
		BaseEvent:   newBaseEvent(EventTicketReopened, t.ID()),
		TicketID:    t.ID(),
		OwnerID:     t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Reason:      reason,
		ReopenCount: t.ReopenCount(),
	}
}

type TicketRatedEvent struct {
	events.BaseEvent
	TicketID uint
	OwnerID  uint
	Rating   int
}

func NewTicketRatedEvent(t *Ticket, rating int) TicketRatedEvent {
	return TicketRatedEvent{
		BaseEvent: newBaseEvent(EventTicketRated, t.ID()),
		TicketID:  t.ID(),
		OwnerID:   t.CreatorID(),
		Rating:    rating,
	}
}

type MessageAddedEvent struct {
	events.BaseEvent
	TicketID       uint
	OwnerID        uint
	AssigneeID     *uint
	MessageID      uint
	SenderID       uint
	IsFromAdmin    bool
	IsInternalNote bool
	StatusBumped   bool
	NewStatus      string
}

func NewMessageAddedEvent(t *Ticket, m *Message, statusBumped bool) MessageAddedEvent {
	return MessageAddedEvent{
		BaseEvent:      newBaseEvent(EventMessageAdded, t.ID()),
		TicketID:       t.ID(),
		OwnerID:        t.CreatorID(),
		AssigneeID:     t.AssigneeID(),
		MessageID:      m.ID(),
		SenderID:       m.SenderID(),
		IsFromAdmin:    m.IsFromAdmin(),
		IsInternalNote: m.IsInternalNote(),
		StatusBumped:   statusBumped,
		NewStatus:      t.Status().String(),
	}
}

type MessageEditedEvent struct {
	events.BaseEvent
	TicketID  uint
	OwnerID   uint
	MessageID uint
	EditorID  uint
	Reason    string
}

func NewMessageEditedEvent(t *Ticket, m *Message, editorID uint, reason string) MessageEditedEvent {
	return MessageEditedEvent{
		BaseEvent: newBaseEvent(EventMessageEdited, t.ID()),
		TicketID:  t.ID(),
		OwnerID:   t.CreatorID(),
		MessageID: m.ID(),
		EditorID:  editorID,
		Reason:    reason,
	}
}

type ReactionAddedEvent struct {
	events.BaseEvent
	TicketID     uint
	OwnerID      uint
	MessageID    uint
	UserID       uint
	ReactionType string
}

func NewReactionAddedEvent(t *Ticket, r *MessageReaction) ReactionAddedEvent {
	return ReactionAddedEvent{
		BaseEvent:    newBaseEvent(EventReactionAdded, t.ID()),
		TicketID:     t.ID(),
		OwnerID:      t.CreatorID(),
		MessageID:    r.MessageID(),
		UserID:       r.UserID(),
		ReactionType: r.ReactionType().String(),
	}
}

type AttachmentAddedEvent struct {
	events.BaseEvent
	TicketID     uint
	OwnerID      uint
	AttachmentID uint
	UploaderID   uint
	FileName     string
	FileSize     int64
}

func NewAttachmentAddedEvent(t *Ticket, a *Attachment) AttachmentAddedEvent {
	return AttachmentAddedEvent{
		BaseEvent:    newBaseEvent(EventAttachmentAdded, t.ID()),
		TicketID:     t.ID(),
		OwnerID:      t.CreatorID(),
		AttachmentID: a.ID(),
		UploaderID:   a.UploaderID(),
		FileName:     a.OriginalName(),
		FileSize:     a.FileSize(),
	}
}

type BulkOperationCompletedEvent struct {
	events.BaseEvent
	OperationID   uint
	OperationType string
	InitiatorID   uint
	TicketIDs     []uint
	Succeeded     int
	Failed        int
}

func NewBulkOperationCompletedEvent(op *BulkOperation) BulkOperationCompletedEvent {
	return BulkOperationCompletedEvent{
		BaseEvent:     newBaseEvent(EventBulkOperationCompleted, op.ID()),
		OperationID:   op.ID(),
		OperationType: op.OperationType().String(),
		InitiatorID:   op.InitiatorID(),
		TicketIDs:     op.TicketIDs(),
		Succeeded:     op.SucceededCount(),
		Failed:        op.FailedCount(),
	}
}
