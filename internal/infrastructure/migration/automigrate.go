package migration

import (
	"alumnet/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the tables owned by the ticket core. The
// users and ticket_categories tables belong to the platform schema and
// are never migrated from here.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.TicketSequenceModel{},
		&models.MessageModel{},
		&models.MessageEditModel{},
		&models.MessageReactionModel{},
		&models.MessageDraftModel{},
		&models.AttachmentModel{},
		&models.FileMetadataModel{},
		&models.AuditLogModel{},
		&models.BulkOperationModel{},
		&models.SavedFilterModel{},
	}
}
