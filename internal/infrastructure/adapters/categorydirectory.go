package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/models"
)

// GormCategoryDirectory answers category lookups from the platform's
// category table. Read-only; category management lives elsewhere.
type GormCategoryDirectory struct {
	db *gorm.DB
}

func NewGormCategoryDirectory(db *gorm.DB) *GormCategoryDirectory {
	return &GormCategoryDirectory{db: db}
}

func (d *GormCategoryDirectory) GetByID(ctx context.Context, categoryID uint) (*ticket.Category, error) {
	var model models.TicketCategoryModel
	if err := d.db.WithContext(ctx).First(&model, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	return &ticket.Category{
		ID:       model.ID,
		Name:     model.Name,
		IsActive: model.IsActive,
	}, nil
}

func (d *GormCategoryDirectory) ListActive(ctx context.Context) ([]*ticket.Category, error) {
	var categoryModels []models.TicketCategoryModel
	if err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*ticket.Category, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = &ticket.Category{
			ID:       model.ID,
			Name:     model.Name,
			IsActive: model.IsActive,
		}
	}

	return categories, nil
}
