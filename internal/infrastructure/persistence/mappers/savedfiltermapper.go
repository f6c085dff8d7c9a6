package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/infrastructure/persistence/models"
)

type SavedFilterMapper interface {
	ToModel(f *ticket.SavedFilter) (*models.SavedFilterModel, error)
	ToDomain(model *models.SavedFilterModel) (*ticket.SavedFilter, error)
}

type SavedFilterMapperImpl struct{}

func NewSavedFilterMapper() SavedFilterMapper {
	return &SavedFilterMapperImpl{}
}

func (m *SavedFilterMapperImpl) ToModel(f *ticket.SavedFilter) (*models.SavedFilterModel, error) {
	config, err := json.Marshal(f.Config())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filter config: %w", err)
	}

	return &models.SavedFilterModel{
		ID:        f.ID(),
		OwnerID:   f.OwnerID(),
		Name:      f.Name(),
		Config:    datatypes.JSON(config),
		IsDefault: f.IsDefault(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}, nil
}

func (m *SavedFilterMapperImpl) ToDomain(model *models.SavedFilterModel) (*ticket.SavedFilter, error) {
	var config ticket.FilterConfig
	if len(model.Config) > 0 {
		if err := json.Unmarshal(model.Config, &config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal filter config (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructSavedFilter(
		model.ID,
		model.OwnerID,
		model.Name,
		config,
		model.IsDefault,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
