package models

import (
	"time"

	"alumnet/internal/shared/constants"
)

// TicketModel is the persistence shape of a support ticket. Relationships
// are resolved by the repositories; no GORM associations.
type TicketModel struct {
	ID                 uint   `gorm:"primarykey"`
	Number             string `gorm:"uniqueIndex;size:50;not null"`
	Subject            string `gorm:"size:200;not null"`
	Description        string `gorm:"type:text;not null"`
	CategoryID         uint   `gorm:"not null;index"`
	Priority           string `gorm:"size:20;not null;index"`
	Status             string `gorm:"size:30;not null;index"`
	CreatorID          uint   `gorm:"not null;index"`
	AssigneeID         *uint  `gorm:"index"`
	AssignedAt         *time.Time
	LastActivity       time.Time `gorm:"not null;index"`
	ReopenCount        int       `gorm:"not null;default:0"`
	ResolvedAt         *time.Time
	ResolvedBy         *uint
	ResolutionNote     string `gorm:"type:text"`
	SatisfactionRating *int
	SatisfactionNote   string `gorm:"type:text"`
	RatedAt            *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketSequenceModel backs the year scoped ticket number counter. One
// row per calendar year, bumped inside the allocation transaction.
type TicketSequenceModel struct {
	Year      int   `gorm:"primarykey;autoIncrement:false"`
	LastValue int64 `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (TicketSequenceModel) TableName() string {
	return constants.TableTicketSequences
}
