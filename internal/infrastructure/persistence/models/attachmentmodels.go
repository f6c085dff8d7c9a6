package models

import (
	"time"

	"alumnet/internal/shared/constants"
)

type AttachmentModel struct {
	ID           uint   `gorm:"primarykey"`
	TicketID     uint   `gorm:"not null;index"`
	MessageID    *uint  `gorm:"index"`
	FileName     string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255;not null"`
	FileSize     int64  `gorm:"not null"`
	MimeType     string `gorm:"size:100"`
	StoragePath  string `gorm:"size:500;not null"`
	UploaderID   uint   `gorm:"not null;index"`
	CreatedAt    time.Time
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

type FileMetadataModel struct {
	ID            uint   `gorm:"primarykey"`
	AttachmentID  uint   `gorm:"not null;uniqueIndex"`
	Checksum      string `gorm:"size:64;not null;index"`
	IsImage       bool   `gorm:"not null;default:false"`
	Width         int    `gorm:"default:0"`
	Height        int    `gorm:"default:0"`
	ThumbnailPath string `gorm:"size:500"`
	DownloadCount int64  `gorm:"not null;default:0"`
	LastAccessed  *time.Time
	CreatedAt     time.Time
}

func (FileMetadataModel) TableName() string {
	return constants.TableFileMetadata
}
