package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/models"
)

type AuditLogMapper interface {
	ToModel(e *ticket.AuditEntry) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*ticket.AuditEntry, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(e *ticket.AuditEntry) (*models.AuditLogModel, error) {
	model := &models.AuditLogModel{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		PerformerID: e.PerformerID(),
		Action:      e.Action().String(),
		Description: e.Description(),
		FieldName:   e.FieldName(),
		OldValue:    e.OldValue(),
		NewValue:    e.NewValue(),
		CreatedAt:   e.CreatedAt(),
	}

	if meta := e.Metadata(); meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
		model.Metadata = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*ticket.AuditEntry, error) {
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit metadata (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructAuditEntry(
		model.ID,
		model.TicketID,
		model.PerformerID,
		vo.AuditAction(model.Action),
		model.Description,
		model.FieldName,
		model.OldValue,
		model.NewValue,
		metadata,
		model.CreatedAt,
	)
}
