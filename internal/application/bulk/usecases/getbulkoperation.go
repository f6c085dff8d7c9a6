package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/bulk/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type GetBulkOperationQuery struct {
	OperationID uint
}

type ListBulkOperationsQuery struct {
	InitiatorID uint
	Page        int
	PageSize    int
}

type ListBulkOperationsResult struct {
	Items      []dto.BulkOperationDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// GetBulkOperationUseCase is the polling endpoint behind an accepted bulk
// request: status plus per-item results once they exist.
type GetBulkOperationUseCase struct {
	bulkRepo ticket.BulkOperationRepository
	logger   logger.Interface
}

func NewGetBulkOperationUseCase(bulkRepo ticket.BulkOperationRepository, logger logger.Interface) *GetBulkOperationUseCase {
	return &GetBulkOperationUseCase{bulkRepo: bulkRepo, logger: logger}
}

func (uc *GetBulkOperationUseCase) Execute(ctx context.Context, query GetBulkOperationQuery) (*dto.BulkOperationDTO, error) {
	op, err := uc.bulkRepo.GetByID(ctx, query.OperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bulk operation: %w", err)
	}
	if op == nil {
		return nil, apperrors.NewNotFoundError("bulk operation not found")
	}

	return dto.ToBulkOperationDTO(op, true), nil
}

// ListBulkOperationsUseCase pages through an admin's bulk operation
// history, newest first.
type ListBulkOperationsUseCase struct {
	bulkRepo ticket.BulkOperationRepository
	logger   logger.Interface
}

func NewListBulkOperationsUseCase(bulkRepo ticket.BulkOperationRepository, logger logger.Interface) *ListBulkOperationsUseCase {
	return &ListBulkOperationsUseCase{bulkRepo: bulkRepo, logger: logger}
}

func (uc *ListBulkOperationsUseCase) Execute(ctx context.Context, query ListBulkOperationsQuery) (*ListBulkOperationsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	ops, total, err := uc.bulkRepo.ListByInitiator(ctx, query.InitiatorID, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list bulk operations", "initiator_id", query.InitiatorID, "error", err)
		return nil, fmt.Errorf("failed to list bulk operations: %w", err)
	}

	return &ListBulkOperationsResult{
		Items:      dto.ToBulkOperationDTOs(ops),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
