package models

import (
	"time"

	"gorm.io/datatypes"

	"alumnet/internal/shared/constants"
)

type BulkOperationModel struct {
	ID            uint           `gorm:"primarykey"`
	OperationType string         `gorm:"size:30;not null"`
	InitiatorID   uint           `gorm:"not null;index"`
	TicketIDs     datatypes.JSON `gorm:"not null"`
	Results       datatypes.JSON
	Status        string `gorm:"size:20;not null;index"`
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

func (BulkOperationModel) TableName() string {
	return constants.TableBulkOperations
}
