package ticket

import (
	"fmt"
	"time"

	vo "alumnet/internal/domain/ticket/valueobjects"
)

// AuditEntry is one append-only record in a ticket's audit trail. A nil
// performer means the action was taken by the system itself. Entries are
// never updated or deleted.
type AuditEntry struct {
	id          uint
	ticketID    uint
	performerID *uint
	action      vo.AuditAction
	description string
	fieldName   string
	oldValue    string
	newValue    string
	metadata    map[string]interface{}
	createdAt   time.Time
}

func NewAuditEntry(
	ticketID uint,
	performerID *uint,
	action vo.AuditAction,
	description string,
) (*AuditEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &AuditEntry{
		ticketID:    ticketID,
		performerID: performerID,
		action:      action,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

// WithFieldChange attaches the changed field and its old/new values.
func (e *AuditEntry) WithFieldChange(fieldName, oldValue, newValue string) *AuditEntry {
	e.fieldName = fieldName
	e.oldValue = oldValue
	e.newValue = newValue
	return e
}

// WithMetadata attaches a free-form metadata blob.
func (e *AuditEntry) WithMetadata(metadata map[string]interface{}) *AuditEntry {
	e.metadata = metadata
	return e
}

func ReconstructAuditEntry(
	id uint,
	ticketID uint,
	performerID *uint,
	action vo.AuditAction,
	description string,
	fieldName, oldValue, newValue string,
	metadata map[string]interface{},
	createdAt time.Time,
) (*AuditEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}

	return &AuditEntry{
		id:          id,
		ticketID:    ticketID,
		performerID: performerID,
		action:      action,
		description: description,
		fieldName:   fieldName,
		oldValue:    oldValue,
		newValue:    newValue,
		metadata:    metadata,
		createdAt:   createdAt,
	}, nil
}

func (e *AuditEntry) ID() uint                { return e.id }
func (e *AuditEntry) TicketID() uint          { return e.ticketID }
func (e *AuditEntry) PerformerID() *uint      { return e.performerID }
func (e *AuditEntry) Action() vo.AuditAction  { return e.action }
func (e *AuditEntry) Description() string     { return e.description }
func (e *AuditEntry) FieldName() string       { return e.fieldName }
func (e *AuditEntry) OldValue() string        { return e.oldValue }
func (e *AuditEntry) NewValue() string        { return e.newValue }
func (e *AuditEntry) CreatedAt() time.Time    { return e.createdAt }

func (e *AuditEntry) Metadata() map[string]interface{} {
	if e.metadata == nil {
		return nil
	}
	metaCopy := make(map[string]interface{}, len(e.metadata))
	for k, v := range e.metadata {
		metaCopy[k] = v
	}
	return metaCopy
}

func (e *AuditEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("audit entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit entry ID cannot be zero")
	}
	e.id = id
	return nil
}
