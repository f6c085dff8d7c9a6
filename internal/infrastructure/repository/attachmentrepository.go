package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/mappers"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *AttachmentRepository) GetByMessageID(ctx context.Context, messageID uint) ([]*ticket.Attachment, error) {
	return r.list(ctx, "message_id = ?", messageID)
}

func (r *AttachmentRepository) list(ctx context.Context, cond string, arg uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where(cond, arg).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.ToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}

func (r *AttachmentRepository) SaveMetadata(ctx context.Context, meta *ticket.FileMetadata) error {
	model := r.mapper.MetadataToModel(meta)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save file metadata: %w", err)
	}

	return meta.SetID(model.ID)
}

func (r *AttachmentRepository) GetMetadata(ctx context.Context, attachmentID uint) (*ticket.FileMetadata, error) {
	var model models.FileMetadataModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("attachment_id = ?", attachmentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load file metadata: %w", err)
	}

	return r.mapper.MetadataToDomain(&model)
}

// TouchDownload increments the counter in SQL so concurrent downloads
// never lose updates.
func (r *AttachmentRepository) TouchDownload(ctx context.Context, attachmentID uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FileMetadataModel{}).
		Where("attachment_id = ?", attachmentID).
		Updates(map[string]interface{}{
			"download_count": gorm.Expr("download_count + 1"),
			"last_accessed":  at,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to record download: %w", result.Error)
	}

	return nil
}
