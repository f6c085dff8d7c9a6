package models

import (
	"time"

	"gorm.io/datatypes"

	"alumnet/internal/shared/constants"
)

type SavedFilterModel struct {
	ID        uint           `gorm:"primarykey"`
	OwnerID   uint           `gorm:"not null;index"`
	Name      string         `gorm:"size:100;not null"`
	Config    datatypes.JSON `gorm:"not null"`
	IsDefault bool           `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SavedFilterModel) TableName() string {
	return constants.TableSavedFilters
}
