package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/mappers"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/db"
)

type ReactionRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *ReactionRepository) Save(ctx context.Context, reaction *ticket.MessageReaction) error {
	model := r.mapper.ReactionToModel(reaction)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reaction: %w", err)
	}

	return reaction.SetID(model.ID)
}

func (r *ReactionRepository) Find(ctx context.Context, messageID, userID uint, reactionType vo.ReactionType) (*ticket.MessageReaction, error) {
	var model models.MessageReactionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("message_id = ? AND user_id = ? AND reaction_type = ?", messageID, userID, reactionType.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reaction: %w", err)
	}

	return r.mapper.ReactionToDomain(&model)
}

func (r *ReactionRepository) Delete(ctx context.Context, reactionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MessageReactionModel{}, reactionID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reaction: %w", result.Error)
	}

	return nil
}

func (r *ReactionRepository) GetByMessageID(ctx context.Context, messageID uint) ([]*ticket.MessageReaction, error) {
	var reactionModels []models.MessageReactionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("message_id = ?", messageID).
		Order("created_at ASC").
		Find(&reactionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load reactions: %w", err)
	}

	reactions := make([]*ticket.MessageReaction, len(reactionModels))
	for i := range reactionModels {
		reaction, err := r.mapper.ReactionToDomain(&reactionModels[i])
		if err != nil {
			return nil, err
		}
		reactions[i] = reaction
	}

	return reactions, nil
}
