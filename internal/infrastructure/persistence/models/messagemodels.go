package models

import (
	"time"

	"alumnet/internal/shared/constants"
)

type MessageModel struct {
	ID               uint   `gorm:"primarykey"`
	TicketID         uint   `gorm:"not null;index"`
	SenderID         uint   `gorm:"not null;index"`
	Body             string `gorm:"type:text;not null"`
	ContentType      string `gorm:"size:20;not null"`
	FormattedContent string `gorm:"type:text"`
	IsFromAdmin      bool   `gorm:"not null;default:false"`
	IsInternalNote   bool   `gorm:"not null;default:false;index"`
	IsSystem         bool   `gorm:"not null;default:false"`
	IsEdited         bool   `gorm:"not null;default:false"`
	EditedAt         *time.Time
	ReadAt           *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

func (MessageModel) TableName() string {
	return constants.TableTicketMessages
}

// MessageEditModel is one pre-edit snapshot. Rows are append-only.
type MessageEditModel struct {
	ID                uint   `gorm:"primarykey"`
	MessageID         uint   `gorm:"not null;index"`
	EditorID          uint   `gorm:"not null"`
	PreviousBody      string `gorm:"type:text;not null"`
	PreviousFormatted string `gorm:"type:text"`
	Reason            string `gorm:"size:500"`
	CreatedAt         time.Time
}

func (MessageEditModel) TableName() string {
	return constants.TableMessageEdits
}

// MessageReactionModel enforces the one-reaction-per-triple rule with a
// composite unique index.
type MessageReactionModel struct {
	ID           uint   `gorm:"primarykey"`
	MessageID    uint   `gorm:"not null;uniqueIndex:idx_reaction_triple"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_reaction_triple"`
	ReactionType string `gorm:"size:20;not null;uniqueIndex:idx_reaction_triple"`
	CreatedAt    time.Time
}

func (MessageReactionModel) TableName() string {
	return constants.TableMessageReactions
}

// MessageDraftModel holds at most one draft per (ticket, user) pair.
type MessageDraftModel struct {
	ID          uint   `gorm:"primarykey"`
	TicketID    uint   `gorm:"not null;uniqueIndex:idx_draft_ticket_user"`
	UserID      uint   `gorm:"not null;uniqueIndex:idx_draft_ticket_user"`
	Body        string `gorm:"type:text;not null"`
	ContentType string `gorm:"size:20;not null"`
	UpdatedAt   time.Time
}

func (MessageDraftModel) TableName() string {
	return constants.TableMessageDrafts
}
