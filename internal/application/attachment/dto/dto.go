package dto

import (
	"time"

	"alumnet/internal/domain/ticket"
)

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	MessageID    *uint     `json:"message_id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	UploaderID   uint      `json:"uploader_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type FileMetadataDTO struct {
	AttachmentID  uint       `json:"attachment_id"`
	Checksum      string     `json:"checksum"`
	IsImage       bool       `json:"is_image"`
	Width         int        `json:"width,omitempty"`
	Height        int        `json:"height,omitempty"`
	ThumbnailPath string     `json:"thumbnail_path,omitempty"`
	DownloadCount int64      `json:"download_count"`
	LastAccessed  *time.Time `json:"last_accessed"`
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		MessageID:    a.MessageID(),
		FileName:     a.FileName(),
		OriginalName: a.OriginalName(),
		FileSize:     a.FileSize(),
		MimeType:     a.MimeType(),
		UploaderID:   a.UploaderID(),
		CreatedAt:    a.CreatedAt(),
	}
}

func ToAttachmentDTOs(attachments []*ticket.Attachment) []AttachmentDTO {
	items := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, ToAttachmentDTO(a))
	}
	return items
}

func ToFileMetadataDTO(m *ticket.FileMetadata) *FileMetadataDTO {
	if m == nil {
		return nil
	}
	return &FileMetadataDTO{
		AttachmentID:  m.AttachmentID(),
		Checksum:      m.Checksum(),
		IsImage:       m.IsImage(),
		Width:         m.Width(),
		Height:        m.Height(),
		ThumbnailPath: m.ThumbnailPath(),
		DownloadCount: m.DownloadCount(),
		LastAccessed:  m.LastAccessed(),
	}
}
