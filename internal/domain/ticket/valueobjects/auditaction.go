package valueobjects

// AuditAction names the action recorded in a ticket's audit trail.
type AuditAction string

const (
	AuditTicketCreated   AuditAction = "TICKET_CREATED"
	AuditTicketUpdated   AuditAction = "TICKET_UPDATED"
	AuditStatusChanged   AuditAction = "STATUS_CHANGED"
	AuditTicketAssigned  AuditAction = "TICKET_ASSIGNED"
	AuditTicketClosed    AuditAction = "TICKET_CLOSED"
	AuditTicketReopened  AuditAction = "TICKET_REOPENED"
	AuditTicketRated     AuditAction = "TICKET_RATED"
	AuditMessageAdded    AuditAction = "MESSAGE_ADDED"
	AuditMessageEdited   AuditAction = "MESSAGE_EDITED"
	AuditReactionAdded   AuditAction = "REACTION_ADDED"
	AuditBulkOperation   AuditAction = "BULK_OPERATION"
	AuditAttachmentAdded AuditAction = "ATTACHMENT_ADDED"
)

func (a AuditAction) String() string {
	return string(a)
}
