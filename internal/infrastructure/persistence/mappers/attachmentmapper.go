package mappers

import (
	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/models"
)

type AttachmentMapper interface {
	ToModel(a *ticket.Attachment) *models.AttachmentModel
	ToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
	MetadataToModel(meta *ticket.FileMetadata) *models.FileMetadataModel
	MetadataToDomain(model *models.FileMetadataModel) (*ticket.FileMetadata, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (m *AttachmentMapperImpl) ToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		MessageID:    a.MessageID(),
		FileName:     a.FileName(),
		OriginalName: a.OriginalName(),
		FileSize:     a.FileSize(),
		MimeType:     a.MimeType(),
		StoragePath:  a.StoragePath(),
		UploaderID:   a.UploaderID(),
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *AttachmentMapperImpl) ToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.MessageID,
		model.FileName,
		model.OriginalName,
		model.FileSize,
		model.MimeType,
		model.StoragePath,
		model.UploaderID,
		model.CreatedAt,
	)
}

func (m *AttachmentMapperImpl) MetadataToModel(meta *ticket.FileMetadata) *models.FileMetadataModel {
	return &models.FileMetadataModel{
		ID:            meta.ID(),
		AttachmentID:  meta.AttachmentID(),
		Checksum:      meta.Checksum(),
		IsImage:       meta.IsImage(),
		Width:         meta.Width(),
		Height:        meta.Height(),
		ThumbnailPath: meta.ThumbnailPath(),
		DownloadCount: meta.DownloadCount(),
		LastAccessed:  meta.LastAccessed(),
		CreatedAt:     meta.CreatedAt(),
	}
}

func (m *AttachmentMapperImpl) MetadataToDomain(model *models.FileMetadataModel) (*ticket.FileMetadata, error) {
	return ticket.ReconstructFileMetadata(
		model.ID,
		model.AttachmentID,
		model.Checksum,
		model.IsImage,
		model.Width,
		model.Height,
		model.ThumbnailPath,
		model.DownloadCount,
		model.LastAccessed,
		model.CreatedAt,
	)
}
