package models

import (
	"time"

	"gorm.io/datatypes"

	"alumnet/internal/shared/constants"
)

// AuditLogModel is append-only; rows are never updated or deleted.
type AuditLogModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    uint   `gorm:"not null;index"`
	PerformerID *uint  `gorm:"index"`
	Action      string `gorm:"size:50;not null;index"`
	Description string `gorm:"size:500"`
	FieldName   string `gorm:"size:100"`
	OldValue    string `gorm:"type:text"`
	NewValue    string `gorm:"type:text"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
