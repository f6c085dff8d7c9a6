package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, subject string, priority vo.Priority, creatorID uint, number string) *ticket.Ticket {
	tk, err := ticket.NewTicket(subject, "Replacement card never arrived", 1, priority, creatorID)
	require.NoError(t, err)
	require.NoError(t, tk.SetNumber(number))
	return tk
}

func createTestMessage(t *testing.T, ticketID, senderID uint, body string, fromAdmin bool) *ticket.Message {
	m, err := ticket.NewMessage(ticketID, senderID, body, vo.ContentTypePlainText, "", fromAdmin, false)
	require.NoError(t, err)
	return m
}
