package ticket

import (
	"context"
	"time"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// TicketFilter describes a ticket list query. CreatorID scopes to an
// owner's tickets; AssigneeID to an admin's queue. Search is a
// case-insensitive substring match over subject, ticket number, and
// description. SortByPriority orders by priority weight descending before
// lastActivity descending (admin lists).
type TicketFilter struct {
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	CategoryID     *uint
	CreatorID      *uint
	AssigneeID     *uint
	Search         string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	SortByPriority bool
	Page           int
	PageSize       int
}

// TicketStats aggregates dashboard counts by status bucket.
type TicketStats struct {
	Total          int64
	OpenLike       int64
	ClosedLike     int64
	ByStatus       map[vo.TicketStatus]int64
	UrgentOpenLike int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	// GetOwnedByID loads a ticket only if ownerID owns it. A foreign
	// ticket is indistinguishable from an absent one.
	GetOwnedByID(ctx context.Context, ticketID, ownerID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountStats(ctx context.Context, filter TicketFilter) (*TicketStats, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	Update(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, messageID uint) (*Message, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	// MarkAdminMessagesRead stamps readAt on all unread admin messages of
	// a ticket, used when the owner views their ticket.
	MarkAdminMessagesRead(ctx context.Context, ticketID uint, at time.Time) error
	SaveEdit(ctx context.Context, edit *MessageEdit) error
	GetEditsByMessageID(ctx context.Context, messageID uint) ([]*MessageEdit, error)
}

type ReactionRepository interface {
	Save(ctx context.Context, r *MessageReaction) error
	// Find returns the reaction matching the unique (message, user, type)
	// triple, or nil when absent.
	Find(ctx context.Context, messageID, userID uint, reactionType vo.ReactionType) (*MessageReaction, error)
	Delete(ctx context.Context, reactionID uint) error
	GetByMessageID(ctx context.Context, messageID uint) ([]*MessageReaction, error)
}

type DraftRepository interface {
	// Upsert saves the draft, replacing any existing draft for the same
	// (ticket, user) pair.
	Upsert(ctx context.Context, d *MessageDraft) error
	Get(ctx context.Context, ticketID, userID uint) (*MessageDraft, error)
	// Delete removes the draft; deleting an absent draft is not an error.
	Delete(ctx context.Context, ticketID, userID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	GetByMessageID(ctx context.Context, messageID uint) ([]*Attachment, error)
	SaveMetadata(ctx context.Context, m *FileMetadata) error
	GetMetadata(ctx context.Context, attachmentID uint) (*FileMetadata, error)
	// TouchDownload atomically increments the download counter and stamps
	// last access.
	TouchDownload(ctx context.Context, attachmentID uint, at time.Time) error
}

type AuditLogRepository interface {
	Save(ctx context.Context, e *AuditEntry) error
	GetByTicketID(ctx context.Context, ticketID uint, page, pageSize int) ([]*AuditEntry, int64, error)
}

type BulkOperationRepository interface {
	Save(ctx context.Context, op *BulkOperation) error
	Update(ctx context.Context, op *BulkOperation) error
	GetByID(ctx context.Context, operationID uint) (*BulkOperation, error)
	ListByInitiator(ctx context.Context, initiatorID uint, page, pageSize int) ([]*BulkOperation, int64, error)
}

type SavedFilterRepository interface {
	Save(ctx context.Context, f *SavedFilter) error
	Update(ctx context.Context, f *SavedFilter) error
	Delete(ctx context.Context, filterID, ownerID uint) error
	GetByID(ctx context.Context, filterID, ownerID uint) (*SavedFilter, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*SavedFilter, error)
	// ClearDefault unsets the default flag on all of the owner's filters,
	// called before marking a new one default.
	ClearDefault(ctx context.Context, ownerID uint) error
}
