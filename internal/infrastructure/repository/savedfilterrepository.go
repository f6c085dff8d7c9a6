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

type SavedFilterRepository struct {
	db     *gorm.DB
	mapper mappers.SavedFilterMapper
}

func NewSavedFilterRepository(db *gorm.DB) *SavedFilterRepository {
	return &SavedFilterRepository{
		db:     db,
		mapper: mappers.NewSavedFilterMapper(),
	}
}

func (r *SavedFilterRepository) Save(ctx context.Context, f *ticket.SavedFilter) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save filter: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *SavedFilterRepository) Update(ctx context.Context, f *ticket.SavedFilter) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Owner scoped so a filter can never be rewritten across users.
	result := tx.
		Model(&models.SavedFilterModel{}).
		Where("id = ? AND owner_id = ?", model.ID, model.OwnerID).
		Select("name", "config", "is_default", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update filter: %w", result.Error)
	}

	return nil
}

func (r *SavedFilterRepository) Delete(ctx context.Context, filterID, ownerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND owner_id = ?", filterID, ownerID).
		Delete(&models.SavedFilterModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete filter: %w", result.Error)
	}

	return nil
}

func (r *SavedFilterRepository) GetByID(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error) {
	var model models.SavedFilterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", filterID, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load filter: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SavedFilterRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.SavedFilter, error) {
	var filterModels []models.SavedFilterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("is_default DESC, name ASC").
		Find(&filterModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list filters: %w", err)
	}

	filters := make([]*ticket.SavedFilter, len(filterModels))
	for i := range filterModels {
		f, err := r.mapper.ToDomain(&filterModels[i])
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}

	return filters, nil
}

func (r *SavedFilterRepository) ClearDefault(ctx context.Context, ownerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.SavedFilterModel{}).
		Where("owner_id = ? AND is_default = ?", ownerID, true).
		Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to clear default filter: %w", err)
	}

	return nil
}
