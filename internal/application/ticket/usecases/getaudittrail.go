package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type GetAuditTrailQuery struct {
	TicketID uint
	Page     int
	PageSize int
}

type GetAuditTrailResult struct {
	Items      []dto.AuditEntryDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// GetAuditTrailUseCase pages through a ticket's audit log, newest first.
// Admin only; routing enforces the role.
type GetAuditTrailUseCase struct {
	ticketRepo ticket.TicketRepository
	auditRepo  ticket.AuditLogRepository
	logger     logger.Interface
}

func NewGetAuditTrailUseCase(
	ticketRepo ticket.TicketRepository,
	auditRepo ticket.AuditLogRepository,
	logger logger.Interface,
) *GetAuditTrailUseCase {
	return &GetAuditTrailUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

func (uc *GetAuditTrailUseCase) Execute(ctx context.Context, query GetAuditTrailQuery) (*GetAuditTrailResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	entries, total, err := uc.auditRepo.GetByTicketID(ctx, query.TicketID, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to load audit trail", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}

	return &GetAuditTrailResult{
		Items:      dto.ToAuditEntryDTOs(entries),
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	}, nil
}
