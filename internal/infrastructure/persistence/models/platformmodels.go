package models

import (
	"time"

	"alumnet/internal/shared/constants"
)

// TicketCategoryModel mirrors the platform's category table. The ticket
// core reads it through CategoryDirectory and never writes it.
type TicketCategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:100;not null"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TicketCategoryModel) TableName() string {
	return constants.TableTicketCategories
}

// PlatformUserModel is the read-only slice of the platform user table the
// ticket core needs for role checks and profile expansion.
type PlatformUserModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null"`
	Role      string `gorm:"size:30;not null;index"`
	Status    string `gorm:"size:20;not null;index"`
	AvatarURL string `gorm:"size:500"`
}

func (PlatformUserModel) TableName() string {
	return constants.TableUsers
}
