package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/mappers"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/db"
)

type DraftRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

// Upsert relies on the (ticket_id, user_id) unique index so concurrent
// saves collapse into one row.
func (r *DraftRepository) Upsert(ctx context.Context, d *ticket.MessageDraft) error {
	model := r.mapper.DraftToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticket_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "content_type", "updated_at"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}

	return nil
}

func (r *DraftRepository) Get(ctx context.Context, ticketID, userID uint) (*ticket.MessageDraft, error) {
	var model models.MessageDraftModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	return r.mapper.DraftToDomain(&model)
}

func (r *DraftRepository) Delete(ctx context.Context, ticketID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		Delete(&models.MessageDraftModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
