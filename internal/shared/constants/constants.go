package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Ticket numbering
	TicketNumberPrefix = "TKT"

	// Resolution note minimum length after trimming
	MinResolutionNoteLength = 5

	// Non-admin message edit window
	MessageEditWindowHours = 24

	// Database table names
	TableTickets          = "support_tickets"
	TableTicketMessages   = "ticket_messages"
	TableMessageEdits     = "ticket_message_edits"
	TableMessageReactions = "ticket_message_reactions"
	TableMessageDrafts    = "ticket_message_drafts"
	TableAttachments      = "ticket_attachments"
	TableFileMetadata     = "ticket_file_metadata"
	TableAuditLogs        = "ticket_audit_logs"
	TableBulkOperations   = "ticket_bulk_operations"
	TableSavedFilters     = "ticket_saved_filters"
	TableTicketSequences  = "ticket_sequences"

	// Platform tables the ticket core reads but never writes
	TableTicketCategories = "ticket_categories"
	TableUsers            = "users"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
