package usecases

import (
	"context"
	"fmt"

	"alumnet/internal/application/ticket/dto"
	"alumnet/internal/domain/ticket"
	vo "alumnet/internal/domain/ticket/valueobjects"
	apperrors "alumnet/internal/shared/errors"
	"alumnet/internal/shared/logger"
	"alumnet/internal/shared/utils"
)

type ListTicketsQuery struct {
	OwnerID  uint
	Status   string
	Priority string
	Search   string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Items      []dto.TicketListItemDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListTicketsUseCase serves a member's own ticket list, newest activity
// first.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	cache      TicketCache
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	cache TicketCache,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		CreatorID: &query.OwnerID,
		Search:    query.Search,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	scopeKey := fmt.Sprintf("user:%d", query.OwnerID)
	hash := filterHash(filter)

	if cached, err := uc.cache.GetList(ctx, scopeKey, hash); err == nil && cached != nil {
		return uc.result(cached, pagination), nil
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", query.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	list := &CachedTicketList{
		Items: dto.ToTicketListItemDTOs(tickets),
		Total: total,
	}

	if cacheErr := uc.cache.SetList(ctx, scopeKey, hash, list, false); cacheErr != nil {
		uc.logger.Warnw("failed to cache ticket list", "owner_id", query.OwnerID, "error", cacheErr)
	}

	return uc.result(list, pagination), nil
}

func (uc *ListTicketsUseCase) result(list *CachedTicketList, pagination utils.Pagination) *ListTicketsResult {
	return &ListTicketsResult{
		Items:      list.Items,
		Total:      list.Total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(list.Total, pagination.PageSize),
	}
}
