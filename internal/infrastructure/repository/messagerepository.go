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

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	model := r.mapper.ToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return msg.SetID(model.ID)
}

func (r *MessageRepository) Update(ctx context.Context, msg *ticket.Message) error {
	model := r.mapper.ToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MessageModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update message: %w", result.Error)
	}

	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, messageID uint) (*ticket.Message, error) {
	var model models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MessageRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	var messageModels []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	messages := make([]*ticket.Message, len(messageModels))
	for i := range messageModels {
		msg, err := r.mapper.ToDomain(&messageModels[i])
		if err != nil {
			return nil, err
		}
		messages[i] = msg
	}

	return messages, nil
}

func (r *MessageRepository) MarkAdminMessagesRead(ctx context.Context, ticketID uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MessageModel{}).
		Where("ticket_id = ? AND is_from_admin = ? AND read_at IS NULL", ticketID, true).
		Update("read_at", at)

	if result.Error != nil {
		return fmt.Errorf("failed to mark admin messages read: %w", result.Error)
	}

	return nil
}

func (r *MessageRepository) SaveEdit(ctx context.Context, edit *ticket.MessageEdit) error {
	model := r.mapper.EditToModel(edit)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message edit: %w", err)
	}

	return edit.SetID(model.ID)
}

func (r *MessageRepository) GetEditsByMessageID(ctx context.Context, messageID uint) ([]*ticket.MessageEdit, error) {
	var editModels []models.MessageEditModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("message_id = ?", messageID).
		Order("created_at DESC").
		Find(&editModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load message edits: %w", err)
	}

	edits := make([]*ticket.MessageEdit, len(editModels))
	for i := range editModels {
		edit, err := r.mapper.EditToDomain(&editModels[i])
		if err != nil {
			return nil, err
		}
		edits[i] = edit
	}

	return edits, nil
}
