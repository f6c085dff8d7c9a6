package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/mappers"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/db"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Save(ctx context.Context, e *ticket.AuditEntry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *AuditLogRepository) GetByTicketID(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.AuditEntry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AuditLogModel{}).Where("ticket_id = ?", ticketID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var entryModels []models.AuditLogModel
	if err := query.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load audit entries: %w", err)
	}

	entries := make([]*ticket.AuditEntry, len(entryModels))
	for i := range entryModels {
		entry, err := r.mapper.ToDomain(&entryModels[i])
		if err != nil {
			return nil, 0, err
		}
		entries[i] = entry
	}

	return entries, total, nil
}
