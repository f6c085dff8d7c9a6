package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	"alumnet/internal/infrastructure/persistence/models"
)

type BulkOperationMapper interface {
	ToModel(op *ticket.BulkOperation) (*models.BulkOperationModel, error)
	ToDomain(model *models.BulkOperationModel) (*ticket.BulkOperation, error)
}

type BulkOperationMapperImpl struct{}

func NewBulkOperationMapper() BulkOperationMapper {
	return &BulkOperationMapperImpl{}
}

func (m *BulkOperationMapperImpl) ToModel(op *ticket.BulkOperation) (*models.BulkOperationModel, error) {
	ticketIDs, err := json.Marshal(op.TicketIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bulk ticket IDs: %w", err)
	}

	model := &models.BulkOperationModel{
		ID:            op.ID(),
		OperationType: op.OperationType().String(),
		InitiatorID:   op.InitiatorID(),
		TicketIDs:     datatypes.JSON(ticketIDs),
		Status:        op.Status().String(),
		CreatedAt:     op.CreatedAt(),
		CompletedAt:   op.CompletedAt(),
	}

	if results := op.Results(); len(results) > 0 {
		raw, err := json.Marshal(results)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal bulk results: %w", err)
		}
		model.Results = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *BulkOperationMapperImpl) ToDomain(model *models.BulkOperationModel) (*ticket.BulkOperation, error) {
	operationType, err := vo.NewBulkOperationType(model.OperationType)
	if err != nil {
		return nil, fmt.Errorf("invalid operation type on bulk operation %d: %w", model.ID, err)
	}

	var ticketIDs []uint
	if len(model.TicketIDs) > 0 {
		if err := json.Unmarshal(model.TicketIDs, &ticketIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bulk ticket IDs (id=%d): %w", model.ID, err)
		}
	}

	var results []ticket.BulkItemResult
	if len(model.Results) > 0 {
		if err := json.Unmarshal(model.Results, &results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bulk results (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructBulkOperation(
		model.ID,
		operationType,
		model.InitiatorID,
		ticketIDs,
		results,
		vo.BulkOperationStatus(model.Status),
		model.CreatedAt,
		model.CompletedAt,
	)
}
