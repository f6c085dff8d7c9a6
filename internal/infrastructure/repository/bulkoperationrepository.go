package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/mappers"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/db"
)

type BulkOperationRepository struct {
	db     *gorm.DB
	mapper mappers.BulkOperationMapper
}

func NewBulkOperationRepository(db *gorm.DB) *BulkOperationRepository {
	return &BulkOperationRepository{
		db:     db,
		mapper: mappers.NewBulkOperationMapper(),
	}
}

func (r *BulkOperationRepository) Save(ctx context.Context, op *ticket.BulkOperation) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save bulk operation: %w", err)
	}

	return op.SetID(model.ID)
}

func (r *BulkOperationRepository) Update(ctx context.Context, op *ticket.BulkOperation) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BulkOperationModel{}).
		Where("id = ?", model.ID).
		Select("results", "status", "completed_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update bulk operation: %w", result.Error)
	}

	return nil
}

func (r *BulkOperationRepository) GetByID(ctx context.Context, operationID uint) (*ticket.BulkOperation, error) {
	var model models.BulkOperationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, operationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find bulk operation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BulkOperationRepository) ListByInitiator(ctx context.Context, initiatorID uint, page, pageSize int) ([]*ticket.BulkOperation, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BulkOperationModel{}).Where("initiator_id = ?", initiatorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bulk operations: %w", err)
	}

	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var operationModels []models.BulkOperationModel
	if err := query.Order("created_at DESC").Find(&operationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bulk operations: %w", err)
	}

	operations := make([]*ticket.BulkOperation, len(operationModels))
	for i := range operationModels {
		op, err := r.mapper.ToDomain(&operationModels[i])
		if err != nil {
			return nil, 0, err
		}
		operations[i] = op
	}

	return operations, total, nil
}
