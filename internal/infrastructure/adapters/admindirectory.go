package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/models"
	"alumnet/internal/shared/authorization"
)

const userStatusActive = "active"

// GormAdminDirectory answers role and profile questions from the platform
// user table. The ticket core never writes these rows.
type GormAdminDirectory struct {
	db *gorm.DB
}

func NewGormAdminDirectory(db *gorm.DB) *GormAdminDirectory {
	return &GormAdminDirectory{db: db}
}

func (d *GormAdminDirectory) IsActiveSuperAdmin(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).
		Model(&models.PlatformUserModel{}).
		Where("id = ? AND role = ? AND status = ?",
			userID, authorization.RoleSuperAdmin.String(), userStatusActive).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}

	return count > 0, nil
}

func (d *GormAdminDirectory) ListAvailableAdmins(ctx context.Context) ([]*ticket.AdminProfile, error) {
	var userModels []models.PlatformUserModel
	if err := d.db.WithContext(ctx).
		Where("role = ? AND status = ?", authorization.RoleSuperAdmin.String(), userStatusActive).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	admins := make([]*ticket.AdminProfile, len(userModels))
	for i, model := range userModels {
		admins[i] = &ticket.AdminProfile{
			ID:        model.ID,
			Name:      model.Name,
			Email:     model.Email,
			AvatarURL: model.AvatarURL,
		}
	}

	return admins, nil
}

func (d *GormAdminDirectory) GetUserProfile(ctx context.Context, userID uint) (*ticket.UserProfile, error) {
	var model models.PlatformUserModel
	if err := d.db.WithContext(ctx).First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	return &ticket.UserProfile{
		ID:        model.ID,
		Name:      model.Name,
		AvatarURL: model.AvatarURL,
	}, nil
}
